package netl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netl-modeling/gotriga/internal/material"
	"github.com/netl-modeling/gotriga/internal/units"
	"github.com/netl-modeling/gotriga/internal/validate"
)

func TestReferenceConstants(t *testing.T) {
	assert.InDelta(t, 1.714*2.54, LatticePitch, 1e-12)
	assert.InDelta(t, 12.75*2.54, UpperGridPlateDistance, 1e-12)
	assert.InDelta(t, 13.06*2.54, LowerGridPlateDistance, 1e-12)
	assert.InDelta(t, 524.0/960.0, DefaultRodFractionWithdrawn, 1e-15)
}

func TestDefaultCentralThimble(t *testing.T) {
	ct := DefaultCentralThimble()
	assert.InDelta(t, 1.33*0.5*units.CmPerInch, ct.InnerRadius, 1e-12)
	assert.InDelta(t, 1.5*0.5*units.CmPerInch, ct.OuterRadius, 1e-12)
	// The thimble runs the full modeled pool height.
	assert.Equal(t, PoolHeight, ct.Length)
	assert.Equal(t, "aluminum", ct.Material.Name)
}

func TestDefaultGridPlates(t *testing.T) {
	upper := DefaultUpperGridPlate()
	lower := DefaultLowerGridPlate()

	assert.InDelta(t, 0.62*units.CmPerInch, upper.Thickness, 1e-12)
	assert.InDelta(t, 1.25*units.CmPerInch, lower.Thickness, 1e-12)
	assert.InDelta(t, 1.505*0.5*units.CmPerInch, upper.FuelPenetrationRadius, 1e-12)
	assert.InDelta(t, 1.25*0.5*units.CmPerInch, lower.FuelPenetrationRadius, 1e-12)

	// Both plates share the enlarged control rod penetration.
	assert.Equal(t, upper.ControlRodPenetrationRadius, lower.ControlRodPenetrationRadius)

	// The lower plate sits farther from the midplane than the upper.
	assert.Greater(t, lower.DistanceFromMidplane, upper.DistanceFromMidplane)
}

func TestGridPlateDistanceIsSigned(t *testing.T) {
	// A plate below the midplane carries a negative distance.
	plate, err := NewGridPlate(1.0, 1.0, 1.0, -5.0, material.Aluminum())
	require.NoError(t, err)
	assert.Equal(t, -5.0, plate.DistanceFromMidplane)

	_, err = NewGridPlate(0, 1.0, 1.0, -5.0, material.Aluminum())
	require.Error(t, err)
	assert.True(t, errors.Is(err, validate.ErrInvalidDimension))
}

func TestDefaultShroud(t *testing.T) {
	s := DefaultShroud()
	assert.Greater(t, s.LargeFlatToFlat, s.SmallFlatToFlat)
	assert.Equal(t, "aluminum", s.Material.Name)

	_, err := NewShroud(s.Thickness, s.Height, s.SmallFlatToFlat, s.LargeFlatToFlat, s.Material)
	require.Error(t, err)
	assert.True(t, errors.Is(err, validate.ErrInvalidDimension))
}

func TestDefaultReflectorAndRack(t *testing.T) {
	canister := DefaultReflectorCanister()
	assert.Equal(t, "graphite", canister.Material.Name)
	assert.InDelta(t, 21.0*units.CmPerInch, canister.Radius, 1e-12)

	rack := DefaultRotarySpecimenRack()
	assert.Equal(t, 40, rack.TubeCount)
	assert.Equal(t, "air", rack.Fill.Name)
	assert.Equal(t, "aluminum", rack.Tube.Material.Name)

	// The tube ring fits inside the cavity, which fits inside the
	// reflector.
	assert.Less(t, rack.TubeCircleRadius+rack.Tube.OuterRadius, rack.OuterRadius)
	assert.Less(t, rack.OuterRadius, canister.Radius)
}

func TestDefaultSourceHolder(t *testing.T) {
	h := DefaultSourceHolder()

	// The holder spans from its standoff above the lower plate up
	// through the upper plate.
	want := UpperGridPlateDistance + LowerGridPlateDistance - 1.1934 + UpperGridPlateThickness
	assert.InDelta(t, want, h.Length, 1e-9)
	assert.Equal(t, 1.1934, h.DistanceAboveLowerGridPlate)
	assert.Zero(t, h.CoreCenterlineOffset)
	assert.Less(t, h.CavityRadius, h.BodyRadius)
	assert.Equal(t, "aluminum", h.Body.Name)
	assert.Equal(t, "air", h.Cavity.Name)
}

func TestSourceHolderValidation(t *testing.T) {
	t.Run("negative standoff", func(t *testing.T) {
		cfg := sourceHolderConfig()
		cfg.DistanceAboveLowerGridPlate = -0.5
		_, err := NewSourceHolder(cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, validate.ErrInvalidDimension))
	})

	t.Run("cavity wider than body", func(t *testing.T) {
		cfg := sourceHolderConfig()
		cfg.CavityRadius = cfg.BodyRadius
		_, err := NewSourceHolder(cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, validate.ErrInconsistentGeometry))
	})

	t.Run("cavity overruns body", func(t *testing.T) {
		cfg := sourceHolderConfig()
		cfg.CavityOffset = cfg.Length
		_, err := NewSourceHolder(cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, validate.ErrInconsistentGeometry))
	})

	t.Run("signed centerline offset", func(t *testing.T) {
		cfg := sourceHolderConfig()
		cfg.CoreCenterlineOffset = -1.1934
		h, err := NewSourceHolder(cfg)
		require.NoError(t, err)
		assert.Equal(t, -1.1934, h.CoreCenterlineOffset)
	})
}

func sourceHolderConfig() SourceHolderConfig {
	h := DefaultSourceHolder()
	return SourceHolderConfig{
		BodyRadius:                  h.BodyRadius,
		Length:                      h.Length,
		CavityRadius:                h.CavityRadius,
		CavityLength:                h.CavityLength,
		CavityOffset:                h.CavityOffset,
		CoreCenterlineOffset:        h.CoreCenterlineOffset,
		DistanceAboveLowerGridPlate: h.DistanceAboveLowerGridPlate,
		Body:                        h.Body,
		Cavity:                      h.Cavity,
	}
}
