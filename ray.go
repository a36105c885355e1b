package gmath

import "github.com/solarlune/gmath/scalar"

// Ray2 represents a ray in 2D space - a point of origin and the direction the ray extends in from it.
type Ray2[S scalar.Float] struct {
	Origin    Point2[S] // The point the ray starts from
	Direction Vec2[S]   // The direction the ray extends in
}

// NewRay2 creates a new Ray2 extending from the origin point in the direction provided.
func NewRay2[S scalar.Float](origin Point2[S], direction Vec2[S]) Ray2[S] {
	return Ray2[S]{Origin: origin, Direction: direction}
}

// At returns the point reached by travelling t lengths of the ray's direction from its origin.
func (ray Ray2[S]) At(t S) Point2[S] {
	return ray.Origin.AddVec(ray.Direction.Scale(t))
}

// ApproxEqual reports whether the two rays have approximately equal origins and directions,
// within the scalar type's default tolerance.
func (ray Ray2[S]) ApproxEqual(other Ray2[S]) bool {
	return ray.ApproxEqualEps(other, scalar.Epsilon[S]())
}

// ApproxEqualEps reports whether the two rays have approximately equal origins and directions, within the tolerance provided.
func (ray Ray2[S]) ApproxEqualEps(other Ray2[S], eps S) bool {
	return ray.Origin.ApproxEqualEps(other.Origin, eps) && ray.Direction.ApproxEqualEps(other.Direction, eps)
}

// Ray3 represents a ray in 3D space - a point of origin and the direction the ray extends in from it.
type Ray3[S scalar.Float] struct {
	Origin    Point3[S] // The point the ray starts from
	Direction Vec3[S]   // The direction the ray extends in
}

// NewRay3 creates a new Ray3 extending from the origin point in the direction provided.
func NewRay3[S scalar.Float](origin Point3[S], direction Vec3[S]) Ray3[S] {
	return Ray3[S]{Origin: origin, Direction: direction}
}

// At returns the point reached by travelling t lengths of the ray's direction from its origin.
func (ray Ray3[S]) At(t S) Point3[S] {
	return ray.Origin.AddVec(ray.Direction.Scale(t))
}

// ApproxEqual reports whether the two rays have approximately equal origins and directions,
// within the scalar type's default tolerance.
func (ray Ray3[S]) ApproxEqual(other Ray3[S]) bool {
	return ray.ApproxEqualEps(other, scalar.Epsilon[S]())
}

// ApproxEqualEps reports whether the two rays have approximately equal origins and directions, within the tolerance provided.
func (ray Ray3[S]) ApproxEqualEps(other Ray3[S], eps S) bool {
	return ray.Origin.ApproxEqualEps(other.Origin, eps) && ray.Direction.ApproxEqualEps(other.Direction, eps)
}
