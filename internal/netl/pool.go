package netl

import (
	"github.com/netl-modeling/gotriga/internal/material"
	"github.com/netl-modeling/gotriga/internal/validate"
)

// Pool is the modeled section of the reactor pool: a water cylinder
// centered on the core. The real pool extends far beyond; the model
// truncates it where it stops mattering to the core physics.
type Pool struct {
	Radius   float64           `json:"radius_cm"`
	Height   float64           `json:"height_cm"`
	Material material.Material `json:"material"`
}

// NewPool builds a validated pool section.
func NewPool(radius, height float64, mat material.Material) (Pool, error) {
	p := Pool{Radius: radius, Height: height, Material: mat}
	if err := p.validate(); err != nil {
		return Pool{}, err
	}
	return p, nil
}

func (p Pool) validate() error {
	if err := validate.Positive("pool", "radius", p.Radius); err != nil {
		return err
	}
	return validate.Positive("pool", "height", p.Height)
}
