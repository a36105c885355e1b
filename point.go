package gmath

import "github.com/solarlune/gmath/scalar"

// Point2 represents a position in 2D space. Points and vectors are kept as separate types because they
// transform differently - a point is a location, while a vector is a displacement with no location of its own.
type Point2[S scalar.Float] struct {
	X S
	Y S
}

// NewPoint2 creates a new Point2 at the specified x and y position.
func NewPoint2[S scalar.Float](x, y S) Point2[S] {
	return Point2[S]{X: x, Y: y}
}

// AddVec returns the point displaced by the vector provided.
func (point Point2[S]) AddVec(vec Vec2[S]) Point2[S] {
	point.X += vec.X
	point.Y += vec.Y
	return point
}

// SubVec returns the point displaced by the negation of the vector provided.
func (point Point2[S]) SubVec(vec Vec2[S]) Point2[S] {
	point.X -= vec.X
	point.Y -= vec.Y
	return point
}

// Sub returns the displacement vector from the other point to the calling point.
func (point Point2[S]) Sub(other Point2[S]) Vec2[S] {
	return Vec2[S]{X: point.X - other.X, Y: point.Y - other.Y}
}

// Vec returns the point's displacement from the origin as a vector.
func (point Point2[S]) Vec() Vec2[S] {
	return Vec2[S]{X: point.X, Y: point.Y}
}

// DistanceTo returns the distance between the two points.
func (point Point2[S]) DistanceTo(other Point2[S]) S {
	return point.Sub(other).Magnitude()
}

// ApproxEqual reports whether the two points are component-wise equal within the scalar type's default tolerance.
func (point Point2[S]) ApproxEqual(other Point2[S]) bool {
	return point.ApproxEqualEps(other, scalar.Epsilon[S]())
}

// ApproxEqualEps reports whether the two points are component-wise equal within the tolerance provided.
func (point Point2[S]) ApproxEqualEps(other Point2[S], eps S) bool {
	return scalar.EqualWithin(point.X, other.X, eps) && scalar.EqualWithin(point.Y, other.Y, eps)
}

func (point Point2[S]) String() string {
	return "Point2(" + floatString(point.X) + ", " + floatString(point.Y) + ")"
}

// Point3 represents a position in 3D space.
type Point3[S scalar.Float] struct {
	X S
	Y S
	Z S
}

// NewPoint3 creates a new Point3 at the specified x, y, and z position.
func NewPoint3[S scalar.Float](x, y, z S) Point3[S] {
	return Point3[S]{X: x, Y: y, Z: z}
}

// AddVec returns the point displaced by the vector provided.
func (point Point3[S]) AddVec(vec Vec3[S]) Point3[S] {
	point.X += vec.X
	point.Y += vec.Y
	point.Z += vec.Z
	return point
}

// SubVec returns the point displaced by the negation of the vector provided.
func (point Point3[S]) SubVec(vec Vec3[S]) Point3[S] {
	point.X -= vec.X
	point.Y -= vec.Y
	point.Z -= vec.Z
	return point
}

// Sub returns the displacement vector from the other point to the calling point.
func (point Point3[S]) Sub(other Point3[S]) Vec3[S] {
	return Vec3[S]{X: point.X - other.X, Y: point.Y - other.Y, Z: point.Z - other.Z}
}

// Vec returns the point's displacement from the origin as a vector.
func (point Point3[S]) Vec() Vec3[S] {
	return Vec3[S]{X: point.X, Y: point.Y, Z: point.Z}
}

// DistanceTo returns the distance between the two points.
func (point Point3[S]) DistanceTo(other Point3[S]) S {
	return point.Sub(other).Magnitude()
}

// ApproxEqual reports whether the two points are component-wise equal within the scalar type's default tolerance.
func (point Point3[S]) ApproxEqual(other Point3[S]) bool {
	return point.ApproxEqualEps(other, scalar.Epsilon[S]())
}

// ApproxEqualEps reports whether the two points are component-wise equal within the tolerance provided.
func (point Point3[S]) ApproxEqualEps(other Point3[S], eps S) bool {
	return scalar.EqualWithin(point.X, other.X, eps) &&
		scalar.EqualWithin(point.Y, other.Y, eps) &&
		scalar.EqualWithin(point.Z, other.Z, eps)
}

func (point Point3[S]) String() string {
	return "Point3(" + floatString(point.X) + ", " + floatString(point.Y) + ", " + floatString(point.Z) + ")"
}
