// Package scalar generalizes the built-in math package over the floating-point type used by the rest of gmath.
// Every type in gmath takes a scalar type parameter (float32 for GPU-adjacent work, float64 for simulation-grade
// precision), so the trigonometry and comparison helpers here do the same rather than forcing a conversion
// round-trip through float64 at every call site.
package scalar

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is the constraint satisfied by the scalar types gmath can be instantiated with.
type Float = constraints.Float

// Sin returns the sine of the radian argument x.
func Sin[S Float](x S) S {
	return S(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[S Float](x S) S {
	return S(math.Cos(float64(x)))
}

// Tan returns the tangent of the radian argument x.
func Tan[S Float](x S) S {
	return S(math.Tan(float64(x)))
}

// Acos returns the arccosine, in radians, of x.
func Acos[S Float](x S) S {
	return S(math.Acos(float64(x)))
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to determine the quadrant of the result.
func Atan2[S Float](y, x S) S {
	return S(math.Atan2(float64(y), float64(x)))
}

// Sqrt returns the square root of x.
func Sqrt[S Float](x S) S {
	return S(math.Sqrt(float64(x)))
}

// Hypot returns Sqrt(p*p + q*q), avoiding unnecessary overflow and underflow.
func Hypot[S Float](p, q S) S {
	return S(math.Hypot(float64(p), float64(q)))
}

// Abs returns the absolute value of x.
func Abs[S Float](x S) S {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the minimum value out of two provided values.
func Min[S Float](x, y S) S {
	if x < y {
		return x
	}
	return y
}

// Max returns the maximum value out of two provided values.
func Max[S Float](x, y S) S {
	if x > y {
		return x
	}
	return y
}

// Clamp clamps a value to the minimum and maximum values provided.
func Clamp[S Float](value, min, max S) S {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// Sign returns the sign of the value given. If it's greater than 0, it returns 1. If less than 0, it returns -1. Otherwise, it returns 0.
func Sign[S Float](x S) S {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

// ToRadians is a helper function to easily convert degrees to radians (which is what the rotation-oriented functions in gmath use).
func ToRadians[S Float](degrees S) S {
	return S(math.Pi) * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees[S Float](radians S) S {
	return radians / S(math.Pi) * 180
}

// Epsilon returns the default comparison tolerance for the scalar type S - 1e-6 for float32-sized scalars
// and 1e-12 for float64-sized ones. The approximate-equality functions across gmath default to this value.
func Epsilon[S Float]() S {
	if unsafe.Sizeof(S(0)) == 4 {
		return 1e-6
	}
	return 1e-12
}

// EqualWithin reports whether a and b are within eps of each other.
func EqualWithin[S Float](a, b, eps S) bool {
	return Abs(a-b) <= eps
}

// Equal reports whether a and b are within the default tolerance (see Epsilon) of each other.
func Equal[S Float](a, b S) bool {
	return EqualWithin(a, b, Epsilon[S]())
}
