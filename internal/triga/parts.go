package triga

import (
	"github.com/netl-modeling/gotriga/internal/material"
	"github.com/netl-modeling/gotriga/internal/validate"
)

// The part records below are the building blocks every in-core element is
// assembled from. Each is a plain value with a constructor that rejects
// nonphysical dimensions; composite constructors re-run the part checks so
// a config filled in by struct literal gets the same scrutiny.

// Cladding is a thin-walled tube described by its outer radius and wall
// thickness, both in centimeters.
type Cladding struct {
	OuterRadius float64           `json:"outer_radius_cm"`
	Thickness   float64           `json:"thickness_cm"`
	Material    material.Material `json:"material"`
}

// NewCladding builds a validated cladding tube.
func NewCladding(outerRadius, thickness float64, mat material.Material) (Cladding, error) {
	c := Cladding{OuterRadius: outerRadius, Thickness: thickness, Material: mat}
	if err := c.Validate(); err != nil {
		return Cladding{}, err
	}
	return c, nil
}

// InnerRadius is the bore radius left inside the tube wall.
func (c Cladding) InnerRadius() float64 {
	return c.OuterRadius - c.Thickness
}

func (c Cladding) Validate() error {
	if err := validate.Positive("cladding", "outer radius", c.OuterRadius); err != nil {
		return err
	}
	if err := validate.Positive("cladding", "thickness", c.Thickness); err != nil {
		return err
	}
	return validate.Positive("cladding", "inner radius", c.InnerRadius())
}

// FuelMeat is the annular U-ZrH fuel region around the zirconium filler
// rod.
type FuelMeat struct {
	InnerRadius float64           `json:"inner_radius_cm"`
	OuterRadius float64           `json:"outer_radius_cm"`
	Length      float64           `json:"length_cm"`
	Material    material.Material `json:"material"`
}

// NewFuelMeat builds a validated fuel meat annulus.
func NewFuelMeat(innerRadius, outerRadius, length float64, mat material.Material) (FuelMeat, error) {
	m := FuelMeat{InnerRadius: innerRadius, OuterRadius: outerRadius, Length: length, Material: mat}
	if err := m.Validate(); err != nil {
		return FuelMeat{}, err
	}
	return m, nil
}

func (m FuelMeat) Validate() error {
	if err := validate.OrderedRadii("fuel meat", m.InnerRadius, m.OuterRadius); err != nil {
		return err
	}
	return validate.Positive("fuel meat", "length", m.Length)
}

// ZirconiumRod is the solid filler rod down the fuel meat centerline. Its
// length is always that of the fuel meat it fills, so only the radius is
// declared.
type ZirconiumRod struct {
	Radius   float64           `json:"radius_cm"`
	Material material.Material `json:"material"`
}

// NewZirconiumRod builds a validated filler rod.
func NewZirconiumRod(radius float64, mat material.Material) (ZirconiumRod, error) {
	r := ZirconiumRod{Radius: radius, Material: mat}
	if err := r.Validate(); err != nil {
		return ZirconiumRod{}, err
	}
	return r, nil
}

func (r ZirconiumRod) Validate() error {
	return validate.Positive("zirconium rod", "radius", r.Radius)
}

// GraphiteReflector is one of the axial graphite slugs above and below the
// fuel meat.
type GraphiteReflector struct {
	Radius    float64           `json:"radius_cm"`
	Thickness float64           `json:"thickness_cm"`
	Material  material.Material `json:"material"`
}

// NewGraphiteReflector builds a validated axial reflector slug.
func NewGraphiteReflector(radius, thickness float64, mat material.Material) (GraphiteReflector, error) {
	g := GraphiteReflector{Radius: radius, Thickness: thickness, Material: mat}
	if err := g.Validate(); err != nil {
		return GraphiteReflector{}, err
	}
	return g, nil
}

func (g GraphiteReflector) Validate() error {
	if err := validate.Positive("graphite reflector", "radius", g.Radius); err != nil {
		return err
	}
	return validate.Positive("graphite reflector", "thickness", g.Thickness)
}

// MolybdenumDisc is the thin support disc between the lower reflector and
// the fuel meat.
type MolybdenumDisc struct {
	Radius    float64           `json:"radius_cm"`
	Thickness float64           `json:"thickness_cm"`
	Material  material.Material `json:"material"`
}

// NewMolybdenumDisc builds a validated support disc.
func NewMolybdenumDisc(radius, thickness float64, mat material.Material) (MolybdenumDisc, error) {
	d := MolybdenumDisc{Radius: radius, Thickness: thickness, Material: mat}
	if err := d.Validate(); err != nil {
		return MolybdenumDisc{}, err
	}
	return d, nil
}

func (d MolybdenumDisc) Validate() error {
	if err := validate.Positive("molybdenum disc", "radius", d.Radius); err != nil {
		return err
	}
	return validate.Positive("molybdenum disc", "thickness", d.Thickness)
}

// AirGap is an axial void section inside a cladding tube.
type AirGap struct {
	Length   float64           `json:"length_cm"`
	Material material.Material `json:"material"`
}

// NewAirGap builds a validated gap section.
func NewAirGap(length float64, mat material.Material) (AirGap, error) {
	g := AirGap{Length: length, Material: mat}
	if err := g.Validate(); err != nil {
		return AirGap{}, err
	}
	return g, nil
}

func (g AirGap) Validate() error {
	return validate.Positive("air gap", "length", g.Length)
}

// EndFitting is the machined fitting at either end of an element that
// engages the grid plates.
type EndFitting struct {
	Length   float64           `json:"length_cm"`
	Material material.Material `json:"material"`
}

// NewEndFitting builds a validated end fitting.
func NewEndFitting(length float64, mat material.Material) (EndFitting, error) {
	f := EndFitting{Length: length, Material: mat}
	if err := f.Validate(); err != nil {
		return EndFitting{}, err
	}
	return f, nil
}

func (f EndFitting) Validate() error {
	return validate.Positive("end fitting", "length", f.Length)
}

// ElementPlug is a solid plug sealing a rod cladding tube.
type ElementPlug struct {
	Length   float64           `json:"length_cm"`
	Material material.Material `json:"material"`
}

// NewElementPlug builds a validated plug.
func NewElementPlug(length float64, mat material.Material) (ElementPlug, error) {
	p := ElementPlug{Length: length, Material: mat}
	if err := p.Validate(); err != nil {
		return ElementPlug{}, err
	}
	return p, nil
}

func (p ElementPlug) Validate() error {
	return validate.Positive("element plug", "length", p.Length)
}

// MagneformFitting is one of the swaged joints along a control rod.
type MagneformFitting struct {
	Length   float64           `json:"length_cm"`
	Material material.Material `json:"material"`
}

// NewMagneformFitting builds a validated magneform joint.
func NewMagneformFitting(length float64, mat material.Material) (MagneformFitting, error) {
	f := MagneformFitting{Length: length, Material: mat}
	if err := f.Validate(); err != nil {
		return MagneformFitting{}, err
	}
	return f, nil
}

func (f MagneformFitting) Validate() error {
	return validate.Positive("magneform fitting", "length", f.Length)
}

// Absorber is the neutron-absorbing section of a control rod.
type Absorber struct {
	Radius   float64           `json:"radius_cm"`
	Length   float64           `json:"length_cm"`
	Material material.Material `json:"material"`
}

// NewAbsorber builds a validated absorber section.
func NewAbsorber(radius, length float64, mat material.Material) (Absorber, error) {
	a := Absorber{Radius: radius, Length: length, Material: mat}
	if err := a.Validate(); err != nil {
		return Absorber{}, err
	}
	return a, nil
}

func (a Absorber) Validate() error {
	if err := validate.Positive("absorber", "radius", a.Radius); err != nil {
		return err
	}
	return validate.Positive("absorber", "length", a.Length)
}

// GraphiteMeat is the solid graphite interior of a dummy element.
type GraphiteMeat struct {
	Radius   float64           `json:"radius_cm"`
	Length   float64           `json:"length_cm"`
	Material material.Material `json:"material"`
}

// NewGraphiteMeat builds a validated dummy-element interior.
func NewGraphiteMeat(radius, length float64, mat material.Material) (GraphiteMeat, error) {
	m := GraphiteMeat{Radius: radius, Length: length, Material: mat}
	if err := m.Validate(); err != nil {
		return GraphiteMeat{}, err
	}
	return m, nil
}

func (m GraphiteMeat) Validate() error {
	if err := validate.Positive("graphite meat", "radius", m.Radius); err != nil {
		return err
	}
	return validate.Positive("graphite meat", "length", m.Length)
}
