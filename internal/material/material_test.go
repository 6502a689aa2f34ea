package material

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netl-modeling/gotriga/internal/validate"
)

func TestNew(t *testing.T) {
	m, err := New("test", []Component{ao("H1", 0.6667), ao("O16", 0.3333)}, 1.0)
	require.NoError(t, err)
	assert.Equal(t, "test", m.Name)
	assert.Equal(t, GramsPerCubicCentimeter, m.DensityUnit)
	assert.Equal(t, DefaultTemperature, m.Temperature)
	assert.Len(t, m.Components, 2)
}

func TestNewOptions(t *testing.T) {
	m, err := New("test", []Component{ao("C", 1.0)}, 0.0858,
		WithTemperature(600.0),
		WithDensityUnit(AtomsPerBarnCentimeter),
		WithScatteringTables("c_Graphite"),
	)
	require.NoError(t, err)
	assert.Equal(t, 600.0, m.Temperature)
	assert.Equal(t, AtomsPerBarnCentimeter, m.DensityUnit)
	assert.Equal(t, []string{"c_Graphite"}, m.ScatteringTables)
}

func TestNewRejectsBadInput(t *testing.T) {
	valid := []Component{ao("C", 1.0)}

	cases := []struct {
		name string
		fn   func() (Material, error)
	}{
		{"empty name", func() (Material, error) {
			return New("", valid, 1.0)
		}},
		{"no components", func() (Material, error) {
			return New("test", nil, 1.0)
		}},
		{"empty nuclide", func() (Material, error) {
			return New("test", []Component{ao("", 1.0)}, 1.0)
		}},
		{"zero fraction", func() (Material, error) {
			return New("test", []Component{ao("C", 0)}, 1.0)
		}},
		{"negative fraction", func() (Material, error) {
			return New("test", []Component{ao("C", -0.5)}, 1.0)
		}},
		{"unknown fraction kind", func() (Material, error) {
			return New("test", []Component{{Nuclide: "C", Fraction: 1.0, Kind: "vo"}}, 1.0)
		}},
		{"zero density", func() (Material, error) {
			return New("test", valid, 0)
		}},
		{"unknown density unit", func() (Material, error) {
			return New("test", valid, 1.0, WithDensityUnit("kg/m3"))
		}},
		{"negative temperature", func() (Material, error) {
			return New("test", valid, 1.0, WithTemperature(-1))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.fn()
			require.Error(t, err)
			assert.True(t, errors.Is(err, validate.ErrInvalidInput))
		})
	}
}

func TestNewCopiesComponents(t *testing.T) {
	components := []Component{ao("C", 1.0)}
	m, err := New("test", components, 1.6)
	require.NoError(t, err)

	components[0].Fraction = 0.5
	assert.Equal(t, 1.0, m.Components[0].Fraction)
}

func TestCatalog(t *testing.T) {
	cases := []struct {
		name    string
		m       Material
		density float64
		unit    DensityUnit
	}{
		{"fresh fuel", FreshFuel(), 5.85, GramsPerCubicCentimeter},
		{"zirconium filler", ZirconiumFiller(), 0.0408, AtomsPerBarnCentimeter},
		{"stainless steel", StainlessSteel(), 0.0858, AtomsPerBarnCentimeter},
		{"graphite", Graphite(), 1.6, GramsPerCubicCentimeter},
		{"aluminum", Aluminum(), 2.7, GramsPerCubicCentimeter},
		{"air", Air(), 0.001225, GramsPerCubicCentimeter},
		{"water", Water(), 1.0, GramsPerCubicCentimeter},
		{"boron carbide", BoronCarbide(), 2.48, GramsPerCubicCentimeter},
		{"cadmium", Cadmium(), 8.65, GramsPerCubicCentimeter},
		{"molybdenum", Molybdenum(), 10.3, GramsPerCubicCentimeter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.m.Name)
			assert.Equal(t, tc.density, tc.m.Density)
			assert.Equal(t, tc.unit, tc.m.DensityUnit)
			assert.Equal(t, DefaultTemperature, tc.m.Temperature)
			assert.NotEmpty(t, tc.m.Components)
		})
	}
}

func TestCatalogOptions(t *testing.T) {
	// The fuel follower carries the same composition at a higher density.
	follower := FreshFuel(WithDensity(6.0124))
	assert.Equal(t, 6.0124, follower.Density)
	assert.Equal(t, FreshFuel().Components, follower.Components)

	hot := Water(WithTemperature(350.0))
	assert.Equal(t, 350.0, hot.Temperature)
}

func TestCatalogScatteringTables(t *testing.T) {
	assert.Equal(t, []string{"c_H_in_ZrH", "c_Zr_in_ZrH"}, FreshFuel().ScatteringTables)
	assert.Equal(t, []string{"c_Graphite"}, Graphite().ScatteringTables)
	assert.Equal(t, []string{"c_H_in_H2O"}, Water().ScatteringTables)
	assert.Empty(t, StainlessSteel().ScatteringTables)
}

func TestFreshFuelComposition(t *testing.T) {
	m := FreshFuel()
	byNuclide := map[string]Component{}
	for _, c := range m.Components {
		byNuclide[c.Nuclide] = c
	}
	assert.Equal(t, 0.0152, byNuclide["U235"].Fraction)
	assert.Equal(t, 0.061568, byNuclide["U238"].Fraction)
	assert.Equal(t, WeightFraction, byNuclide["U235"].Kind)

	// Weight fractions close on unity within the precision of the source
	// fabrication records.
	var sum float64
	for _, c := range m.Components {
		sum += c.Fraction
	}
	assert.InDelta(t, 1.0, sum, 0.002)
}
