package triga

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netl-modeling/gotriga/internal/units"
	"github.com/netl-modeling/gotriga/internal/validate"
)

func TestDefaultFuelElement(t *testing.T) {
	e := DefaultFuelElement()

	assert.Equal(t, KindFuelElement, e.Kind())
	assert.InDelta(t, 1.475*0.5*units.CmPerInch, e.Cladding.OuterRadius, 1e-12)
	assert.InDelta(t, 0.020*units.CmPerInch, e.Cladding.Thickness, 1e-12)
	assert.InDelta(t, 15.0*units.CmPerInch, e.Meat.Length, 1e-12)
	assert.Equal(t, "fresh fuel", e.Meat.Material.Name)
	assert.Equal(t, "stainless steel", e.Cladding.Material.Name)
	assert.Equal(t, "zirconium filler", e.ZirconiumRod.Material.Name)
	assert.Equal(t, "molybdenum", e.MolybdenumDisc.Material.Name)
	assert.Equal(t, 7.3552, e.UpperEndFitting.Length)
	assert.Equal(t, 7.6209, e.LowerEndFitting.Length)
}

func TestFuelElementInteriorLength(t *testing.T) {
	e := DefaultFuelElement()

	want := (3.72 + 0.031 + 15.0 + 2.56 + 0.5) * units.CmPerInch
	assert.InDelta(t, want, e.InteriorLength(), 1e-9)
	assert.InDelta(t, e.InteriorLength()+7.3552+7.6209, e.Length(), 1e-9)

	// Derived values track field changes.
	cfg := DefaultFuelElementConfig()
	cfg.UpperAirGap.Length *= 2
	grown, err := NewFuelElement(cfg)
	require.NoError(t, err)
	assert.InDelta(t, want+0.5*units.CmPerInch, grown.InteriorLength(), 1e-9)
}

func TestNewFuelElementRejectsMisfits(t *testing.T) {
	t.Run("meat wider than bore", func(t *testing.T) {
		cfg := DefaultFuelElementConfig()
		cfg.Meat.OuterRadius = cfg.Cladding.OuterRadius
		_, err := NewFuelElement(cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, validate.ErrInconsistentGeometry))
	})

	t.Run("rod does not fill meat bore", func(t *testing.T) {
		cfg := DefaultFuelElementConfig()
		cfg.ZirconiumRod.Radius = cfg.Meat.InnerRadius * 0.9
		_, err := NewFuelElement(cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, validate.ErrInconsistentGeometry))
	})

	t.Run("reflector wider than bore", func(t *testing.T) {
		cfg := DefaultFuelElementConfig()
		cfg.UpperReflector.Radius = cfg.Cladding.OuterRadius
		_, err := NewFuelElement(cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, validate.ErrInconsistentGeometry))
	})

	t.Run("invalid part dimension", func(t *testing.T) {
		cfg := DefaultFuelElementConfig()
		cfg.Meat.Length = -1
		_, err := NewFuelElement(cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, validate.ErrInvalidDimension))
	})
}

func TestDefaultGraphiteElement(t *testing.T) {
	e := DefaultGraphiteElement()

	assert.Equal(t, KindGraphiteElement, e.Kind())
	assert.Equal(t, "aluminum", e.Cladding.Material.Name)
	assert.Equal(t, "graphite", e.Meat.Material.Name)

	// The dummy element shares the fuel element envelope: same cladding
	// dimensions, meat radius equal to the fuel meat outer radius, meat
	// length equal to the fuel interior length.
	fuel := DefaultFuelElement()
	assert.Equal(t, fuel.Cladding.OuterRadius, e.Cladding.OuterRadius)
	assert.Equal(t, fuel.Meat.OuterRadius, e.Meat.Radius)
	assert.InDelta(t, fuel.InteriorLength(), e.Meat.Length, 1e-9)
	assert.InDelta(t, fuel.Length(), e.Length(), 1e-9)
}

func TestDefaultConfigRoundTrip(t *testing.T) {
	fuel, err := NewFuelElement(DefaultFuelElementConfig())
	require.NoError(t, err)
	assert.Equal(t, DefaultFuelElement(), fuel)

	dummy, err := NewGraphiteElement(DefaultGraphiteElementConfig())
	require.NoError(t, err)
	assert.Equal(t, DefaultGraphiteElement(), dummy)
}

func TestNewGraphiteElementRejectsMisfit(t *testing.T) {
	cfg := DefaultGraphiteElementConfig()
	cfg.Meat.Radius = cfg.Cladding.OuterRadius
	_, err := NewGraphiteElement(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, validate.ErrInconsistentGeometry))
}
