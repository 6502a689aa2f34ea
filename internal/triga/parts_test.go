package triga

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netl-modeling/gotriga/internal/material"
	"github.com/netl-modeling/gotriga/internal/validate"
)

func TestNewCladding(t *testing.T) {
	c, err := NewCladding(1.87325, 0.0508, material.StainlessSteel())
	require.NoError(t, err)
	assert.InDelta(t, 1.82245, c.InnerRadius(), 1e-9)

	_, err = NewCladding(0, 0.0508, material.StainlessSteel())
	assert.True(t, errors.Is(err, validate.ErrInvalidDimension))

	_, err = NewCladding(1.87325, 0, material.StainlessSteel())
	assert.True(t, errors.Is(err, validate.ErrInvalidDimension))

	// Wall thicker than the tube radius leaves no bore.
	_, err = NewCladding(0.05, 0.06, material.StainlessSteel())
	assert.True(t, errors.Is(err, validate.ErrInvalidDimension))
}

func TestNewFuelMeat(t *testing.T) {
	_, err := NewFuelMeat(0.3175, 1.82245, 38.1, material.FreshFuel())
	require.NoError(t, err)

	_, err = NewFuelMeat(1.82245, 0.3175, 38.1, material.FreshFuel())
	assert.True(t, errors.Is(err, validate.ErrInvalidDimension))

	_, err = NewFuelMeat(0.3175, 1.82245, 0, material.FreshFuel())
	assert.True(t, errors.Is(err, validate.ErrInvalidDimension))
}

func TestPartConstructorsRejectNonPositive(t *testing.T) {
	air := material.Air()
	steel := material.StainlessSteel()

	cases := []struct {
		name string
		fn   func() error
	}{
		{"zirconium rod", func() error { _, err := NewZirconiumRod(0, steel); return err }},
		{"graphite reflector radius", func() error { _, err := NewGraphiteReflector(0, 6.5, steel); return err }},
		{"graphite reflector thickness", func() error { _, err := NewGraphiteReflector(1.8, -1, steel); return err }},
		{"molybdenum disc", func() error { _, err := NewMolybdenumDisc(1.8, 0, steel); return err }},
		{"air gap", func() error { _, err := NewAirGap(0, air); return err }},
		{"end fitting", func() error { _, err := NewEndFitting(-1, steel); return err }},
		{"element plug", func() error { _, err := NewElementPlug(0, steel); return err }},
		{"magneform fitting", func() error { _, err := NewMagneformFitting(0, steel); return err }},
		{"absorber radius", func() error { _, err := NewAbsorber(0, 38.1, steel); return err }},
		{"absorber length", func() error { _, err := NewAbsorber(1.5, 0, steel); return err }},
		{"graphite meat", func() error { _, err := NewGraphiteMeat(1.8, 0, steel); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fn()
			require.Error(t, err)
			assert.True(t, errors.Is(err, validate.ErrInvalidDimension))
		})
	}
}
