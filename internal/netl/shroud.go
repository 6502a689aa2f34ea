package netl

import (
	"fmt"

	"github.com/netl-modeling/gotriga/internal/material"
	"github.com/netl-modeling/gotriga/internal/validate"
)

// Shroud is the aluminum hexagonal shell around the core that ducts the
// natural-circulation coolant flow. It necks down from a large hexagonal
// section to a small one; widths are measured across flats.
type Shroud struct {
	Thickness        float64           `json:"thickness_cm"`
	Height           float64           `json:"height_cm"`
	LargeFlatToFlat  float64           `json:"large_flat_to_flat_cm"`
	SmallFlatToFlat  float64           `json:"small_flat_to_flat_cm"`
	Material         material.Material `json:"material"`
}

// NewShroud builds a validated shroud.
func NewShroud(thickness, height, largeFlatToFlat, smallFlatToFlat float64, mat material.Material) (Shroud, error) {
	s := Shroud{
		Thickness:       thickness,
		Height:          height,
		LargeFlatToFlat: largeFlatToFlat,
		SmallFlatToFlat: smallFlatToFlat,
		Material:        mat,
	}
	if err := s.validate(); err != nil {
		return Shroud{}, err
	}
	return s, nil
}

func (s Shroud) validate() error {
	if err := validate.Positive("shroud", "thickness", s.Thickness); err != nil {
		return err
	}
	if err := validate.Positive("shroud", "height", s.Height); err != nil {
		return err
	}
	if err := validate.Positive("shroud", "small flat-to-flat width", s.SmallFlatToFlat); err != nil {
		return err
	}
	if s.LargeFlatToFlat <= s.SmallFlatToFlat {
		return fmt.Errorf("shroud large flat-to-flat width %g must exceed small width %g: %w",
			s.LargeFlatToFlat, s.SmallFlatToFlat, validate.ErrInvalidDimension)
	}
	return nil
}
