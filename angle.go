package gmath

import (
	"strconv"

	"github.com/solarlune/gmath/scalar"
)

// Angle is an angular measurement. The rotation constructors accept any Angle, so callers can work
// in whichever unit reads best at the call site (see Radians and Degrees).
type Angle[S scalar.Float] interface {
	// Radians returns the angle measured in radians.
	Radians() S
	// Degrees returns the angle measured in degrees.
	Degrees() S
}

// Rad is an angle measured in radians.
type Rad[S scalar.Float] struct {
	Value S
}

// Radians returns a new Rad angle of the provided radian value.
func Radians[S scalar.Float](value S) Rad[S] {
	return Rad[S]{Value: value}
}

func (rad Rad[S]) Radians() S {
	return rad.Value
}

func (rad Rad[S]) Degrees() S {
	return scalar.ToDegrees(rad.Value)
}

func (rad Rad[S]) String() string {
	return strconv.FormatFloat(float64(rad.Value), 'g', -1, 64) + " rad"
}

// Deg is an angle measured in degrees.
type Deg[S scalar.Float] struct {
	Value S
}

// Degrees returns a new Deg angle of the provided degree value.
func Degrees[S scalar.Float](value S) Deg[S] {
	return Deg[S]{Value: value}
}

func (deg Deg[S]) Radians() S {
	return scalar.ToRadians(deg.Value)
}

func (deg Deg[S]) Degrees() S {
	return deg.Value
}

func (deg Deg[S]) String() string {
	return strconv.FormatFloat(float64(deg.Value), 'g', -1, 64) + "°"
}
