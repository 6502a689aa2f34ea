package netl

import (
	"fmt"

	"github.com/netl-modeling/gotriga/internal/triga"
	"github.com/netl-modeling/gotriga/internal/validate"
)

// Reactor ties everything together: the core loading, the hardware in
// the five reserved positions, the grid plates, and the structures
// around the core out to the modeled pool boundary.
type Reactor struct {
	Core Core `json:"-"`

	CentralThimble CentralThimble         `json:"central_thimble"`
	TransientRod   TransientRod           `json:"transient_rod"`
	Shim1          FuelFollowerControlRod `json:"shim1"`
	Shim2          FuelFollowerControlRod `json:"shim2"`
	RegulatingRod  FuelFollowerControlRod `json:"regulating_rod"`

	UpperGridPlate GridPlate `json:"upper_grid_plate"`
	LowerGridPlate GridPlate `json:"lower_grid_plate"`

	Pool         Pool               `json:"pool"`
	Shroud       Shroud             `json:"shroud"`
	Reflector    ReflectorCanister  `json:"reflector"`
	SpecimenRack RotarySpecimenRack `json:"specimen_rack"`
	BeamPorts    []BeamPort         `json:"beam_ports"`
}

// ReactorConfig carries the components of a reactor under construction.
type ReactorConfig struct {
	Core           Core
	CentralThimble CentralThimble
	TransientRod   TransientRod
	Shim1          FuelFollowerControlRod
	Shim2          FuelFollowerControlRod
	RegulatingRod  FuelFollowerControlRod
	UpperGridPlate GridPlate
	LowerGridPlate GridPlate
	Pool           Pool
	Shroud         Shroud
	Reflector      ReflectorCanister
	SpecimenRack   RotarySpecimenRack
	BeamPorts      []BeamPort
}

// NewReactor re-validates every component, so a config assembled from
// struct literals gets the same checks as one built from constructors.
func NewReactor(cfg ReactorConfig) (Reactor, error) {
	r := Reactor{
		Core:           cfg.Core,
		CentralThimble: cfg.CentralThimble,
		TransientRod:   cfg.TransientRod,
		Shim1:          cfg.Shim1,
		Shim2:          cfg.Shim2,
		RegulatingRod:  cfg.RegulatingRod,
		UpperGridPlate: cfg.UpperGridPlate,
		LowerGridPlate: cfg.LowerGridPlate,
		Pool:           cfg.Pool,
		Shroud:         cfg.Shroud,
		Reflector:      cfg.Reflector,
		SpecimenRack:   cfg.SpecimenRack,
		BeamPorts:      append([]BeamPort(nil), cfg.BeamPorts...),
	}

	if err := validate.Positive("core", "lattice pitch", r.Core.pitch); err != nil {
		return Reactor{}, err
	}
	checks := []func() error{
		r.CentralThimble.validate,
		r.TransientRod.validate,
		r.Shim1.validate,
		r.Shim2.validate,
		r.RegulatingRod.validate,
		r.UpperGridPlate.validate,
		r.LowerGridPlate.validate,
		r.Pool.validate,
		r.Shroud.validate,
		r.Reflector.validate,
		r.SpecimenRack.validate,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return Reactor{}, err
		}
	}
	for _, port := range r.BeamPorts {
		if err := port.validate(); err != nil {
			return Reactor{}, err
		}
	}
	return r, nil
}

// ControlRods returns the four rods keyed by their reserved position.
func (r Reactor) ControlRods() map[string]triga.Element {
	return map[string]triga.Element{
		PositionTransientRod:  r.TransientRod,
		PositionShim1:         r.Shim1,
		PositionShim2:         r.Shim2,
		PositionRegulatingRod: r.RegulatingRod,
	}
}

// ElementAt resolves any lattice position: reserved positions map to the
// hardware installed there, everything else defers to the core loading.
func (r Reactor) ElementAt(label string) (triga.Element, error) {
	if _, _, err := parseLabel(label); err != nil {
		return nil, err
	}
	switch label {
	case PositionCentralThimble:
		return r.CentralThimble, nil
	case PositionTransientRod:
		return r.TransientRod, nil
	case PositionShim1:
		return r.Shim1, nil
	case PositionShim2:
		return r.Shim2, nil
	case PositionRegulatingRod:
		return r.RegulatingRod, nil
	}
	return r.Core.At(label)
}

// SetRodFractions repositions all four rods at once, returning a new
// reactor. Fractions outside [0, 1] are rejected.
func (r Reactor) SetRodFractions(transient, shim1, shim2, regulating float64) (Reactor, error) {
	for _, f := range []float64{transient, shim1, shim2, regulating} {
		if err := validate.Fraction("control rod", "fraction withdrawn", f); err != nil {
			return Reactor{}, err
		}
	}
	out := r
	out.TransientRod.FractionWithdrawn = transient
	out.Shim1.FractionWithdrawn = shim1
	out.Shim2.FractionWithdrawn = shim2
	out.RegulatingRod.FractionWithdrawn = regulating
	return out, nil
}

// Summary tallies the loaded core for reporting.
type Summary struct {
	FuelElements     int
	GraphiteElements int
	SourceHolders    int
	WaterHoles       int
	ReservedCount    int
}

// Summarize walks every lattice position and tallies what occupies it.
func (r Reactor) Summarize() Summary {
	var s Summary
	for _, label := range Positions() {
		if IsReserved(label) {
			s.ReservedCount++
			continue
		}
		elem, err := r.Core.At(label)
		if err != nil {
			// parseLabel accepted the label above; unreachable.
			panic(fmt.Sprintf("position %q: %v", label, err))
		}
		switch {
		case elem == nil:
			s.WaterHoles++
		case elem.Kind() == triga.KindFuelElement:
			s.FuelElements++
		case elem.Kind() == triga.KindGraphiteElement:
			s.GraphiteElements++
		case elem.Kind() == triga.KindSourceHolder:
			s.SourceHolders++
		}
	}
	return s
}
