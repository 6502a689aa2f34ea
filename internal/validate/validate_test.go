package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositive(t *testing.T) {
	assert.NoError(t, Positive("cladding", "thickness", 0.0508))

	err := Positive("cladding", "thickness", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
	assert.Contains(t, err.Error(), "cladding thickness")

	assert.Error(t, Positive("cladding", "thickness", -1.0))
}

func TestPositiveCount(t *testing.T) {
	assert.NoError(t, PositiveCount("rotary specimen rack", "tube count", 40))

	err := PositiveCount("rotary specimen rack", "tube count", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
}

func TestNonNegative(t *testing.T) {
	assert.NoError(t, NonNegative("source holder", "grid plate distance", 0))
	assert.NoError(t, NonNegative("source holder", "grid plate distance", 1.1934))

	err := NonNegative("source holder", "grid plate distance", -0.1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
}

func TestOrderedRadii(t *testing.T) {
	assert.NoError(t, OrderedRadii("central thimble", 1.6891, 1.905))

	err := OrderedRadii("central thimble", 1.905, 1.905)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
	assert.Contains(t, err.Error(), "outer radius")

	err = OrderedRadii("central thimble", 0, 1.905)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
}

func TestTemperature(t *testing.T) {
	assert.NoError(t, Temperature("fresh fuel", 293.6))
	assert.NoError(t, Temperature("fresh fuel", 0))

	err := Temperature("fresh fuel", -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestFraction(t *testing.T) {
	assert.NoError(t, Fraction("transient rod", "fraction withdrawn", 0))
	assert.NoError(t, Fraction("transient rod", "fraction withdrawn", 1))
	assert.NoError(t, Fraction("transient rod", "fraction withdrawn", 524.0/960.0))

	for _, bad := range []float64{-0.01, 1.01} {
		err := Fraction("transient rod", "fraction withdrawn", bad)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}
}
