package netl

import (
	"math"

	"github.com/netl-modeling/gotriga/internal/material"
	"github.com/netl-modeling/gotriga/internal/validate"
)

// RotationDegrees orients a beam port axis. Entry [i][j] is the angle in
// degrees between new axis i and original axis j, the direction-angle
// convention the facility drawings use. The zero orientation (axes
// unchanged) is [[0,90,90],[90,0,90],[90,90,0]].
type RotationDegrees [3][3]float64

// IdentityRotation returns the no-rotation orientation.
func IdentityRotation() RotationDegrees {
	return RotationDegrees{
		{0, 90, 90},
		{90, 0, 90},
		{90, 90, 0},
	}
}

// DirectionCosines converts the angle matrix to the cosine matrix used
// for coordinate transforms.
func (r RotationDegrees) DirectionCosines() [3][3]float64 {
	var m [3][3]float64
	for i := range r {
		for j := range r[i] {
			m[i][j] = math.Cos(r[i][j] * math.Pi / 180)
		}
	}
	return m
}

// Plane is the surface A*x + B*y + C*z = D, used to terminate a beam port
// where it meets another structure.
type Plane struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
}

// YPlane returns the plane y = y0.
func YPlane(y0 float64) Plane {
	return Plane{B: 1, D: y0}
}

// Rotate applies an orientation to the plane normal; the offset D is
// unchanged.
func (p Plane) Rotate(r RotationDegrees) Plane {
	m := r.DirectionCosines()
	return Plane{
		A: m[0][0]*p.A + m[0][1]*p.B + m[0][2]*p.C,
		B: m[1][0]*p.A + m[1][1]*p.B + m[1][2]*p.C,
		C: m[2][0]*p.A + m[2][1]*p.B + m[2][2]*p.C,
		D: p.D,
	}
}

// BeamPort is one of the horizontal experiment penetrations through the
// pool and reflector: an aluminum tube located by a translation from the
// core center and an axis orientation. Termination, when set, caps the
// port where it meets the reflector or an adjoining port.
type BeamPort struct {
	Name        string            `json:"name"`
	InnerRadius float64           `json:"inner_radius_cm"`
	OuterRadius float64           `json:"outer_radius_cm"`
	Translation [3]float64        `json:"translation_cm"`
	Rotation    RotationDegrees   `json:"rotation_deg"`
	Termination *Plane            `json:"termination,omitempty"`
	Material    material.Material `json:"material"`
}

// BeamPortConfig carries the fields of a beam port under construction. A
// zero Rotation means the identity orientation.
type BeamPortConfig struct {
	Name        string
	InnerRadius float64
	OuterRadius float64
	Translation [3]float64
	Rotation    RotationDegrees
	Termination *Plane
	Material    material.Material
}

// NewBeamPort builds a validated beam port.
func NewBeamPort(cfg BeamPortConfig) (BeamPort, error) {
	p := BeamPort{
		Name:        cfg.Name,
		InnerRadius: cfg.InnerRadius,
		OuterRadius: cfg.OuterRadius,
		Translation: cfg.Translation,
		Rotation:    cfg.Rotation,
		Termination: cfg.Termination,
		Material:    cfg.Material,
	}
	if p.Rotation == (RotationDegrees{}) {
		p.Rotation = IdentityRotation()
	}
	if err := p.validate(); err != nil {
		return BeamPort{}, err
	}
	return p, nil
}

func (p BeamPort) validate() error {
	return validate.OrderedRadii("beam port "+p.Name, p.InnerRadius, p.OuterRadius)
}
