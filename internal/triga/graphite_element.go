package triga

import (
	"fmt"

	"github.com/netl-modeling/gotriga/internal/validate"
)

// GraphiteElement is a dummy element: an aluminum cladding tube around a
// solid graphite cylinder, with the same envelope as a fuel element so it
// loads into the same grid positions.
type GraphiteElement struct {
	Cladding        Cladding     `json:"cladding"`
	Meat            GraphiteMeat `json:"graphite_meat"`
	UpperEndFitting EndFitting   `json:"upper_end_fitting"`
	LowerEndFitting EndFitting   `json:"lower_end_fitting"`
}

// GraphiteElementConfig carries the parts of a dummy element under
// construction.
type GraphiteElementConfig struct {
	Cladding        Cladding
	Meat            GraphiteMeat
	UpperEndFitting EndFitting
	LowerEndFitting EndFitting
}

// NewGraphiteElement validates the parts and checks that the graphite
// interior fits the cladding bore.
func NewGraphiteElement(cfg GraphiteElementConfig) (GraphiteElement, error) {
	parts := []interface{ Validate() error }{
		cfg.Cladding, cfg.Meat, cfg.UpperEndFitting, cfg.LowerEndFitting,
	}
	for _, p := range parts {
		if err := p.Validate(); err != nil {
			return GraphiteElement{}, err
		}
	}
	if cfg.Meat.Radius > cfg.Cladding.InnerRadius()+geomTol {
		return GraphiteElement{}, fmt.Errorf("graphite element: meat radius %g exceeds cladding bore %g: %w",
			cfg.Meat.Radius, cfg.Cladding.InnerRadius(), validate.ErrInconsistentGeometry)
	}
	return GraphiteElement{
		Cladding:        cfg.Cladding,
		Meat:            cfg.Meat,
		UpperEndFitting: cfg.UpperEndFitting,
		LowerEndFitting: cfg.LowerEndFitting,
	}, nil
}

// Kind implements Element.
func (e GraphiteElement) Kind() ElementKind { return KindGraphiteElement }

// Length is the overall element length including both end fittings.
func (e GraphiteElement) Length() float64 {
	return e.LowerEndFitting.Length + e.Meat.Length + e.UpperEndFitting.Length
}
