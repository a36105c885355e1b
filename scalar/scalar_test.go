package scalar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEpsilonPerScalarType(t *testing.T) {
	assert.Equal(t, float32(1e-6), Epsilon[float32]())
	assert.Equal(t, 1e-12, Epsilon[float64]())
}

func TestEqualWithin(t *testing.T) {
	assert.True(t, EqualWithin(1.0, 1.0+1e-13, 1e-12))
	assert.False(t, EqualWithin(1.0, 1.1, 1e-12))
	assert.True(t, Equal(2.0, 2.0))
}

func TestDegreeRadianRoundTrip(t *testing.T) {
	assert.InDelta(t, math.Pi/2, ToRadians(90.0), 1e-12)
	assert.InDelta(t, 270.0, ToDegrees(3*math.Pi/2), 1e-12)
	assert.InDelta(t, 123.0, ToDegrees(ToRadians(123.0)), 1e-12)
}

func TestClampAndSign(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(3.0, -1, 1))
	assert.Equal(t, -1.0, Clamp(-3.0, -1, 1))
	assert.Equal(t, 0.5, Clamp(0.5, -1, 1))
	assert.Equal(t, 1.0, Sign(42.0))
	assert.Equal(t, -1.0, Sign(-0.1))
	assert.Equal(t, 0.0, Sign(0.0))
}

func TestTrigWrappers(t *testing.T) {
	assert.InDelta(t, 1.0, Sin[float64](math.Pi/2), 1e-12)
	assert.InDelta(t, -1.0, Cos[float64](math.Pi), 1e-12)
	assert.InDelta(t, 5.0, Hypot(3.0, 4.0), 1e-12)
	assert.InDelta(t, math.Pi/4, Atan2(1.0, 1.0), 1e-12)
}
