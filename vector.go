package gmath

import (
	"strconv"
	"strings"

	"github.com/solarlune/gmath/scalar"
)

// Vec2 represents a 2D vector - a direction and magnitude, or a displacement between two points.
// Any Vec2 functions that modify the calling Vec2 return modified copies, meaning you can do method-chaining easily.
// Vectors seem to be most efficient when copied (so try not to store pointers to them if possible, as dereferencing
// pointers can be more inefficient than directly acting on data, and storing pointers moves variables to heap).
type Vec2[S scalar.Float] struct {
	X S // The X (1st) component of the vector
	Y S // The Y (2nd) component of the vector
}

// NewVec2 creates a new Vec2 with the specified x and y components.
func NewVec2[S scalar.Float](x, y S) Vec2[S] {
	return Vec2[S]{X: x, Y: y}
}

// Add returns a copy of the calling vector, added together with the other vector provided.
func (vec Vec2[S]) Add(other Vec2[S]) Vec2[S] {
	vec.X += other.X
	vec.Y += other.Y
	return vec
}

// Sub returns a copy of the calling vector, with the other vector subtracted from it.
func (vec Vec2[S]) Sub(other Vec2[S]) Vec2[S] {
	vec.X -= other.X
	vec.Y -= other.Y
	return vec
}

// Negate returns a copy of the calling vector with both components flipped.
func (vec Vec2[S]) Negate() Vec2[S] {
	vec.X = -vec.X
	vec.Y = -vec.Y
	return vec
}

// Scale returns a copy of the calling vector, scaled by the scalar provided.
func (vec Vec2[S]) Scale(scale S) Vec2[S] {
	vec.X *= scale
	vec.Y *= scale
	return vec
}

// Dot returns the dot product of the calling vector and the other vector provided.
func (vec Vec2[S]) Dot(other Vec2[S]) S {
	return vec.X*other.X + vec.Y*other.Y
}

// Cross returns the z component of the cross product of the two vectors, were they lifted into 3D.
// Its sign tells you which side of the calling vector the other vector lies on.
func (vec Vec2[S]) Cross(other Vec2[S]) S {
	return vec.X*other.Y - vec.Y*other.X
}

// Magnitude returns the length of the vector.
func (vec Vec2[S]) Magnitude() S {
	return scalar.Hypot(vec.X, vec.Y)
}

// MagnitudeSquared returns the squared length of the vector; this is faster than Magnitude() as it avoids the square root.
func (vec Vec2[S]) MagnitudeSquared() S {
	return vec.X*vec.X + vec.Y*vec.Y
}

// Unit returns a copy of the vector, normalized (set to be of unit length).
// If the vector is too close to zero length to normalize sensibly, it is returned unmodified.
func (vec Vec2[S]) Unit() Vec2[S] {
	l := vec.Magnitude()
	if l < 1e-8 {
		return vec
	}
	return vec.Scale(1 / l)
}

// Point returns the position a displacement of the vector from the origin would reach.
func (vec Vec2[S]) Point() Point2[S] {
	return Point2[S]{X: vec.X, Y: vec.Y}
}

// ApproxEqual reports whether the two vectors are component-wise equal within the scalar type's default tolerance.
func (vec Vec2[S]) ApproxEqual(other Vec2[S]) bool {
	return vec.ApproxEqualEps(other, scalar.Epsilon[S]())
}

// ApproxEqualEps reports whether the two vectors are component-wise equal within the tolerance provided.
func (vec Vec2[S]) ApproxEqualEps(other Vec2[S], eps S) bool {
	return scalar.EqualWithin(vec.X, other.X, eps) && scalar.EqualWithin(vec.Y, other.Y, eps)
}

func (vec Vec2[S]) String() string {
	return "Vec2(" + floatString(vec.X) + ", " + floatString(vec.Y) + ")"
}

// Vec3 represents a 3D vector, which can be used for usual 3D applications (direction, velocity, displacement, etc).
// Any Vec3 functions that modify the calling Vec3 return modified copies, meaning you can do method-chaining easily.
type Vec3[S scalar.Float] struct {
	X S // The X (1st) component of the vector
	Y S // The Y (2nd) component of the vector
	Z S // The Z (3rd) component of the vector
}

// NewVec3 creates a new Vec3 with the specified x, y, and z components.
func NewVec3[S scalar.Float](x, y, z S) Vec3[S] {
	return Vec3[S]{X: x, Y: y, Z: z}
}

// Add returns a copy of the calling vector, added together with the other vector provided.
func (vec Vec3[S]) Add(other Vec3[S]) Vec3[S] {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling vector, with the other vector subtracted from it.
func (vec Vec3[S]) Sub(other Vec3[S]) Vec3[S] {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Negate returns a copy of the calling vector with all components flipped.
func (vec Vec3[S]) Negate() Vec3[S] {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Scale returns a copy of the calling vector, scaled by the scalar provided.
func (vec Vec3[S]) Scale(scale S) Vec3[S] {
	vec.X *= scale
	vec.Y *= scale
	vec.Z *= scale
	return vec
}

// Dot returns the dot product of the calling vector and the other vector provided.
func (vec Vec3[S]) Dot(other Vec3[S]) S {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Cross returns a new vector, indicating the cross product of the calling vector and the other vector provided.
func (vec Vec3[S]) Cross(other Vec3[S]) Vec3[S] {
	ogY := vec.Y
	ogZ := vec.Z
	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogZ*other.X - other.Z*vec.X
	vec.X = ogY*other.Z - other.Y*ogZ
	return vec
}

// Magnitude returns the length of the vector.
func (vec Vec3[S]) Magnitude() S {
	return scalar.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the vector; this is faster than Magnitude() as it avoids the square root.
func (vec Vec3[S]) MagnitudeSquared() S {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Unit returns a copy of the vector, normalized (set to be of unit length).
// If the vector is too close to zero length to normalize sensibly, it is returned unmodified.
func (vec Vec3[S]) Unit() Vec3[S] {
	l := vec.Magnitude()
	if l < 1e-8 {
		return vec
	}
	return vec.Scale(1 / l)
}

// Point returns the position a displacement of the vector from the origin would reach.
func (vec Vec3[S]) Point() Point3[S] {
	return Point3[S]{X: vec.X, Y: vec.Y, Z: vec.Z}
}

// ApproxEqual reports whether the two vectors are component-wise equal within the scalar type's default tolerance.
func (vec Vec3[S]) ApproxEqual(other Vec3[S]) bool {
	return vec.ApproxEqualEps(other, scalar.Epsilon[S]())
}

// ApproxEqualEps reports whether the two vectors are component-wise equal within the tolerance provided.
func (vec Vec3[S]) ApproxEqualEps(other Vec3[S], eps S) bool {
	return scalar.EqualWithin(vec.X, other.X, eps) &&
		scalar.EqualWithin(vec.Y, other.Y, eps) &&
		scalar.EqualWithin(vec.Z, other.Z, eps)
}

func (vec Vec3[S]) String() string {
	return "Vec3(" + floatString(vec.X) + ", " + floatString(vec.Y) + ", " + floatString(vec.Z) + ")"
}

func floatString[S scalar.Float](value S) string {
	s := strconv.FormatFloat(float64(value), 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		s = "0"
	}
	return s
}
