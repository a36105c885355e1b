package gmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngleConversion(t *testing.T) {

	assert.InDelta(t, math.Pi, Degrees(180.0).Radians(), 1e-12)
	assert.InDelta(t, 90.0, Radians(math.Pi/2).Degrees(), 1e-12)
	assert.InDelta(t, 45.0, Degrees(45.0).Degrees(), 1e-12)
	assert.InDelta(t, 0.5, Radians(0.5).Radians(), 1e-12)

}

func TestAngleUnitsInterchangeable(t *testing.T) {

	// The constructors don't care which unit an angle arrives in.
	fromDegrees := NewRot3AngleY(Degrees(90.0))
	fromRadians := NewRot3AngleY(Radians(math.Pi / 2))
	assert.True(t, fromDegrees.ApproxEqual(fromRadians))

}

func TestAngleString(t *testing.T) {

	assert.Equal(t, "90 rad", Radians(90.0).String())
	assert.Equal(t, "90°", Degrees(90.0).String())

}
