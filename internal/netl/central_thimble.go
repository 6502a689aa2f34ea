package netl

import (
	"github.com/netl-modeling/gotriga/internal/material"
	"github.com/netl-modeling/gotriga/internal/triga"
	"github.com/netl-modeling/gotriga/internal/validate"
)

// CentralThimble is the experiment tube through the A-ring center
// position, an open aluminum tube running the full modeled pool height.
type CentralThimble struct {
	InnerRadius float64           `json:"inner_radius_cm"`
	OuterRadius float64           `json:"outer_radius_cm"`
	Length      float64           `json:"length_cm"`
	Material    material.Material `json:"material"`
}

// NewCentralThimble builds a validated central thimble.
func NewCentralThimble(innerRadius, outerRadius, length float64, mat material.Material) (CentralThimble, error) {
	t := CentralThimble{InnerRadius: innerRadius, OuterRadius: outerRadius, Length: length, Material: mat}
	if err := t.validate(); err != nil {
		return CentralThimble{}, err
	}
	return t, nil
}

func (t CentralThimble) validate() error {
	if err := validate.OrderedRadii("central thimble", t.InnerRadius, t.OuterRadius); err != nil {
		return err
	}
	return validate.Positive("central thimble", "length", t.Length)
}

// Kind implements triga.Element.
func (t CentralThimble) Kind() triga.ElementKind { return triga.KindCentralThimble }
