package netl

import (
	"github.com/netl-modeling/gotriga/internal/material"
	"github.com/netl-modeling/gotriga/internal/validate"
)

// ReflectorCanister is the aluminum-canned graphite annulus around the
// core. VerticalOffset raises its centerline above the core midplane.
type ReflectorCanister struct {
	Radius         float64           `json:"radius_cm"`
	Height         float64           `json:"height_cm"`
	VerticalOffset float64           `json:"vertical_offset_cm"`
	Material       material.Material `json:"material"`
}

// NewReflectorCanister builds a validated reflector canister.
func NewReflectorCanister(radius, height, verticalOffset float64, mat material.Material) (ReflectorCanister, error) {
	c := ReflectorCanister{Radius: radius, Height: height, VerticalOffset: verticalOffset, Material: mat}
	if err := c.validate(); err != nil {
		return ReflectorCanister{}, err
	}
	return c, nil
}

func (c ReflectorCanister) validate() error {
	if err := validate.Positive("reflector canister", "radius", c.Radius); err != nil {
		return err
	}
	return validate.Positive("reflector canister", "height", c.Height)
}
