package netl

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netl-modeling/gotriga/internal/validate"
)

func TestRotationDirectionCosines(t *testing.T) {
	m := IdentityRotation().DirectionCosines()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, m[i][j], 1e-12)
		}
	}
}

func TestPlaneRotate(t *testing.T) {
	// Rotating y = -12.621 into the BP2 frame tilts the normal into the
	// x-y plane.
	p := YPlane(-12.621).Rotate(RotationDegrees{
		{20, 125, 90},
		{100, 20, 90},
		{90, 90, 0},
	})
	assert.InDelta(t, math.Cos(125*math.Pi/180), p.A, 1e-12)
	assert.InDelta(t, math.Cos(20*math.Pi/180), p.B, 1e-12)
	assert.InDelta(t, 0, p.C, 1e-12)
	assert.Equal(t, -12.621, p.D)

	// The identity orientation leaves the plane alone.
	q := YPlane(5).Rotate(IdentityRotation())
	assert.InDelta(t, 0, q.A, 1e-12)
	assert.InDelta(t, 1, q.B, 1e-12)
	assert.Equal(t, 5.0, q.D)
}

func TestNewBeamPortDefaultsRotation(t *testing.T) {
	p, err := NewBeamPort(BeamPortConfig{
		Name:        "test",
		InnerRadius: 7.0,
		OuterRadius: 16.0,
	})
	require.NoError(t, err)
	assert.Equal(t, IdentityRotation(), p.Rotation)
	assert.Nil(t, p.Termination)
}

func TestNewBeamPortRejectsBadRadii(t *testing.T) {
	_, err := NewBeamPort(BeamPortConfig{Name: "test", InnerRadius: 16.0, OuterRadius: 7.0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, validate.ErrInvalidDimension))
}

func TestDefaultBeamPorts(t *testing.T) {
	ports := DefaultBeamPorts()
	require.Len(t, ports, 4)

	names := make([]string, 0, 4)
	for _, p := range ports {
		names = append(names, p.Name)
		assert.Greater(t, p.OuterRadius, p.InnerRadius, "port %s", p.Name)
		assert.Equal(t, "aluminum", p.Material.Name, "port %s", p.Name)
		// All ports sit below the core midplane.
		assert.Equal(t, -6.985, p.Translation[2], "port %s", p.Name)
	}
	assert.Equal(t, []string{"BP1/5", "BP2", "BP3", "BP4"}, names)

	// The piercing port has no termination; the others stop at the
	// reflector or an adjoining port.
	assert.Nil(t, ports[0].Termination)
	require.NotNil(t, ports[1].Termination)
	require.NotNil(t, ports[2].Termination)
	require.NotNil(t, ports[3].Termination)

	assert.Equal(t, YPlane(26.43188), *ports[2].Termination)
	assert.InDelta(t, 0.866025403784, ports[3].Termination.A, 1e-12)
	assert.InDelta(t, 0.5, ports[3].Termination.B, 1e-12)
}
