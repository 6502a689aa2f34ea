package netl

import (
	"github.com/netl-modeling/gotriga/internal/material"
	"github.com/netl-modeling/gotriga/internal/validate"
)

// GridPlate is one of the two aluminum plates that locate the elements:
// the upper plate the elements are loaded through and the lower plate
// their end fittings seat in. Penetration radii differ between the fuel
// positions and the enlarged control rod positions.
type GridPlate struct {
	Thickness                   float64 `json:"thickness_cm"`
	FuelPenetrationRadius       float64 `json:"fuel_penetration_radius_cm"`
	ControlRodPenetrationRadius float64 `json:"control_rod_penetration_radius_cm"`
	// DistanceFromMidplane is the signed distance from the core midplane
	// to the plate face nearer the core.
	DistanceFromMidplane float64           `json:"distance_from_midplane_cm"`
	Material             material.Material `json:"material"`
}

// NewGridPlate builds a validated grid plate.
func NewGridPlate(thickness, fuelPenetration, controlRodPenetration, distance float64, mat material.Material) (GridPlate, error) {
	p := GridPlate{
		Thickness:                   thickness,
		FuelPenetrationRadius:       fuelPenetration,
		ControlRodPenetrationRadius: controlRodPenetration,
		DistanceFromMidplane:        distance,
		Material:                    mat,
	}
	if err := p.validate(); err != nil {
		return GridPlate{}, err
	}
	return p, nil
}

func (p GridPlate) validate() error {
	if err := validate.Positive("grid plate", "thickness", p.Thickness); err != nil {
		return err
	}
	if err := validate.Positive("grid plate", "fuel penetration radius", p.FuelPenetrationRadius); err != nil {
		return err
	}
	// The distance from the midplane is a signed offset, not a dimension,
	// so it carries no check.
	return validate.Positive("grid plate", "control rod penetration radius", p.ControlRodPenetrationRadius)
}
