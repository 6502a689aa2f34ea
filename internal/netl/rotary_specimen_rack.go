package netl

import (
	"fmt"

	"github.com/netl-modeling/gotriga/internal/material"
	"github.com/netl-modeling/gotriga/internal/triga"
	"github.com/netl-modeling/gotriga/internal/validate"
)

// RotarySpecimenRack is the "lazy susan" irradiation facility: an
// air-filled annular cavity in the top of the graphite reflector holding
// a ring of aluminum specimen tubes.
type RotarySpecimenRack struct {
	OuterRadius float64 `json:"outer_radius_cm"`
	Height      float64 `json:"height_cm"`
	TubeCount   int     `json:"tube_count"`
	// TubeCircleRadius is the radius of the circle the tube centers sit
	// on.
	TubeCircleRadius float64           `json:"tube_circle_radius_cm"`
	Tube             triga.Cladding    `json:"tube"`
	Fill             material.Material `json:"fill"`
}

// NewRotarySpecimenRack builds a validated specimen rack. The tube ring
// must fit inside the cavity.
func NewRotarySpecimenRack(outerRadius, height float64, tubeCount int, tubeCircleRadius float64, tube triga.Cladding, fill material.Material) (RotarySpecimenRack, error) {
	r := RotarySpecimenRack{
		OuterRadius:      outerRadius,
		Height:           height,
		TubeCount:        tubeCount,
		TubeCircleRadius: tubeCircleRadius,
		Tube:             tube,
		Fill:             fill,
	}
	if err := r.validate(); err != nil {
		return RotarySpecimenRack{}, err
	}
	return r, nil
}

func (r RotarySpecimenRack) validate() error {
	if err := validate.Positive("rotary specimen rack", "outer radius", r.OuterRadius); err != nil {
		return err
	}
	if err := validate.Positive("rotary specimen rack", "height", r.Height); err != nil {
		return err
	}
	if err := validate.PositiveCount("rotary specimen rack", "tube count", r.TubeCount); err != nil {
		return err
	}
	if err := validate.Positive("rotary specimen rack", "tube circle radius", r.TubeCircleRadius); err != nil {
		return err
	}
	if err := r.Tube.Validate(); err != nil {
		return err
	}
	if r.TubeCircleRadius+r.Tube.OuterRadius > r.OuterRadius+geomTol {
		return fmt.Errorf("rotary specimen rack: tube ring radius %g overruns cavity radius %g: %w",
			r.TubeCircleRadius+r.Tube.OuterRadius, r.OuterRadius, validate.ErrInconsistentGeometry)
	}
	return nil
}
