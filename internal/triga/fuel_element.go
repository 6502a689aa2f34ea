package triga

import (
	"fmt"
	"math"

	"github.com/netl-modeling/gotriga/internal/validate"
)

// geomTol absorbs float rounding when reference dimensions that agree on
// paper are compared after separate unit conversions.
const geomTol = 1e-9

// FuelElement is a standard TRIGA fuel element: a stainless cladding tube
// holding, bottom to top, the lower graphite reflector, the molybdenum
// support disc, the fuel meat around its zirconium filler rod, the upper
// graphite reflector, and an air gap, with end fittings on both ends.
type FuelElement struct {
	Cladding        Cladding          `json:"cladding"`
	Meat            FuelMeat          `json:"fuel_meat"`
	ZirconiumRod    ZirconiumRod      `json:"zirconium_rod"`
	UpperReflector  GraphiteReflector `json:"upper_reflector"`
	LowerReflector  GraphiteReflector `json:"lower_reflector"`
	MolybdenumDisc  MolybdenumDisc    `json:"molybdenum_disc"`
	UpperAirGap     AirGap            `json:"upper_air_gap"`
	UpperEndFitting EndFitting        `json:"upper_end_fitting"`
	LowerEndFitting EndFitting        `json:"lower_end_fitting"`
}

// FuelElementConfig carries the parts of a fuel element under construction.
// Start from DefaultFuelElementConfig and adjust fields, then pass the
// result to NewFuelElement.
type FuelElementConfig struct {
	Cladding        Cladding
	Meat            FuelMeat
	ZirconiumRod    ZirconiumRod
	UpperReflector  GraphiteReflector
	LowerReflector  GraphiteReflector
	MolybdenumDisc  MolybdenumDisc
	UpperAirGap     AirGap
	UpperEndFitting EndFitting
	LowerEndFitting EndFitting
}

// NewFuelElement validates the parts and their fit against each other. The
// radial stack must nest: everything inside the cladding bore, and the
// zirconium rod exactly filling the fuel meat's inner bore.
func NewFuelElement(cfg FuelElementConfig) (FuelElement, error) {
	parts := []interface{ Validate() error }{
		cfg.Cladding, cfg.Meat, cfg.ZirconiumRod,
		cfg.UpperReflector, cfg.LowerReflector, cfg.MolybdenumDisc,
		cfg.UpperAirGap, cfg.UpperEndFitting, cfg.LowerEndFitting,
	}
	for _, p := range parts {
		if err := p.Validate(); err != nil {
			return FuelElement{}, err
		}
	}

	bore := cfg.Cladding.InnerRadius()
	if cfg.Meat.OuterRadius > bore+geomTol {
		return FuelElement{}, fmt.Errorf("fuel element: fuel meat outer radius %g exceeds cladding bore %g: %w",
			cfg.Meat.OuterRadius, bore, validate.ErrInconsistentGeometry)
	}
	if math.Abs(cfg.ZirconiumRod.Radius-cfg.Meat.InnerRadius) > geomTol {
		return FuelElement{}, fmt.Errorf("fuel element: zirconium rod radius %g must match fuel meat inner radius %g: %w",
			cfg.ZirconiumRod.Radius, cfg.Meat.InnerRadius, validate.ErrInconsistentGeometry)
	}
	if cfg.UpperReflector.Radius > bore+geomTol || cfg.LowerReflector.Radius > bore+geomTol {
		return FuelElement{}, fmt.Errorf("fuel element: graphite reflector radius exceeds cladding bore %g: %w",
			bore, validate.ErrInconsistentGeometry)
	}
	if cfg.MolybdenumDisc.Radius > bore+geomTol {
		return FuelElement{}, fmt.Errorf("fuel element: molybdenum disc radius %g exceeds cladding bore %g: %w",
			cfg.MolybdenumDisc.Radius, bore, validate.ErrInconsistentGeometry)
	}

	return FuelElement{
		Cladding:        cfg.Cladding,
		Meat:            cfg.Meat,
		ZirconiumRod:    cfg.ZirconiumRod,
		UpperReflector:  cfg.UpperReflector,
		LowerReflector:  cfg.LowerReflector,
		MolybdenumDisc:  cfg.MolybdenumDisc,
		UpperAirGap:     cfg.UpperAirGap,
		UpperEndFitting: cfg.UpperEndFitting,
		LowerEndFitting: cfg.LowerEndFitting,
	}, nil
}

// Kind implements Element.
func (e FuelElement) Kind() ElementKind { return KindFuelElement }

// InteriorLength is the clad span between the end fittings: lower
// reflector, support disc, fuel meat, upper reflector, and air gap.
// Derived on every call, never cached.
func (e FuelElement) InteriorLength() float64 {
	return e.LowerReflector.Thickness +
		e.MolybdenumDisc.Thickness +
		e.Meat.Length +
		e.UpperReflector.Thickness +
		e.UpperAirGap.Length
}

// Length is the overall element length including both end fittings.
func (e FuelElement) Length() float64 {
	return e.LowerEndFitting.Length + e.InteriorLength() + e.UpperEndFitting.Length
}
