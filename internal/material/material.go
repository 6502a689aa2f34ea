// Package material defines the nuclide-composition records that every
// geometric component in the data model references, plus a catalog of the
// standard NETL TRIGA materials with reference-sourced compositions.
package material

import (
	"fmt"

	"github.com/netl-modeling/gotriga/internal/validate"
)

// FractionKind says how a component fraction is expressed.
type FractionKind string

const (
	// AtomFraction marks fractions given per-atom.
	AtomFraction FractionKind = "ao"
	// WeightFraction marks fractions given per-mass.
	WeightFraction FractionKind = "wo"
)

// DensityUnit tags a material density with its unit.
type DensityUnit string

const (
	// GramsPerCubicCentimeter is the mass-density unit.
	GramsPerCubicCentimeter DensityUnit = "g/cm3"
	// AtomsPerBarnCentimeter is the number-density unit.
	AtomsPerBarnCentimeter DensityUnit = "atom/b-cm"
)

// Component is one nuclide (or natural element) entry in a material
// composition. Nuclide names follow the ZAID-style element-mass convention
// used by the transport codes, e.g. "U235", "Zr90", or plain "C" for a
// natural element.
type Component struct {
	Nuclide  string       `json:"nuclide"`
	Fraction float64      `json:"fraction"`
	Kind     FractionKind `json:"kind"`
}

// Material is an immutable composition record: a named set of nuclide
// fractions with a density, a temperature, and optionally the thermal
// scattering tables the moderating nuclides need.
type Material struct {
	Name        string      `json:"name"`
	Components  []Component `json:"components"`
	Density     float64     `json:"density"`
	DensityUnit DensityUnit `json:"density_unit"`
	Temperature float64     `json:"temperature_k"`
	// ScatteringTables lists the S(a,b) library identifiers, e.g.
	// "c_H_in_ZrH". Empty for materials with no bound moderator.
	ScatteringTables []string `json:"scattering_tables,omitempty"`
}

// New builds a validated material. Every component fraction must be
// positive, the density must be positive, and the temperature non-negative
// in Kelvin. The returned value owns its component slice; callers may not
// mutate it afterwards.
func New(name string, components []Component, density float64, opts ...Option) (Material, error) {
	m := Material{
		Name:        name,
		Components:  append([]Component(nil), components...),
		Density:     density,
		DensityUnit: GramsPerCubicCentimeter,
		Temperature: DefaultTemperature,
	}
	for _, opt := range opts {
		opt(&m)
	}

	if name == "" {
		return Material{}, fmt.Errorf("material name must be non-empty: %w", validate.ErrInvalidInput)
	}
	if len(m.Components) == 0 {
		return Material{}, fmt.Errorf("material %q must have at least one component: %w", name, validate.ErrInvalidInput)
	}
	for _, c := range m.Components {
		if c.Nuclide == "" {
			return Material{}, fmt.Errorf("material %q has a component with no nuclide: %w", name, validate.ErrInvalidInput)
		}
		if c.Fraction <= 0 {
			return Material{}, fmt.Errorf("material %q component %s fraction must be positive: %w",
				name, c.Nuclide, validate.ErrInvalidInput)
		}
		switch c.Kind {
		case AtomFraction, WeightFraction:
		default:
			return Material{}, fmt.Errorf("material %q component %s has unknown fraction kind %q: %w",
				name, c.Nuclide, c.Kind, validate.ErrInvalidInput)
		}
	}
	switch m.DensityUnit {
	case GramsPerCubicCentimeter, AtomsPerBarnCentimeter:
	default:
		return Material{}, fmt.Errorf("material %q has unknown density unit %q: %w",
			name, m.DensityUnit, validate.ErrInvalidInput)
	}
	if m.Density <= 0 {
		return Material{}, fmt.Errorf("material %q density must be positive: %w", name, validate.ErrInvalidInput)
	}
	if err := validate.Temperature("material "+name, m.Temperature); err != nil {
		return Material{}, err
	}
	return m, nil
}
