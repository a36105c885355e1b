package gmath

import "github.com/solarlune/gmath/scalar"

// Quaternion represents a quaternion - four scalars, of which X, Y, and Z form the vector part and W the
// scalar part. Unit quaternions double as 3D rotations (see rotation.go); the algebra here makes no
// assumptions about length unless a function says otherwise.
type Quaternion[S scalar.Float] struct {
	X S
	Y S
	Z S
	W S
}

// NewQuaternion returns a new Quaternion with the x, y, z, and w components provided.
func NewQuaternion[S scalar.Float](x, y, z, w S) Quaternion[S] {
	return Quaternion[S]{X: x, Y: y, Z: z, W: w}
}

// NewQuaternionIdentity returns the identity Quaternion, representing no rotation.
func NewQuaternionIdentity[S scalar.Float]() Quaternion[S] {
	return Quaternion[S]{X: 0, Y: 0, Z: 0, W: 1}
}

// NewQuaternionFromAxisAngle returns a new unit Quaternion rotating counter-clockwise around the axis
// given by the angle given.
func NewQuaternionFromAxisAngle[S scalar.Float](axis Vec3[S], angle Angle[S]) Quaternion[S] {
	axis = axis.Unit()
	half := angle.Radians() / 2
	s := scalar.Sin(half)
	return Quaternion[S]{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: scalar.Cos(half),
	}
}

// Mult returns the Hamilton product of the calling Quaternion and the other Quaternion provided
// (in quaternion terms, quat ⊗ other). The product of two unit quaternions is a unit quaternion.
func (quat Quaternion[S]) Mult(other Quaternion[S]) Quaternion[S] {
	return Quaternion[S]{
		X: quat.W*other.X + quat.X*other.W + quat.Y*other.Z - quat.Z*other.Y,
		Y: quat.W*other.Y - quat.X*other.Z + quat.Y*other.W + quat.Z*other.X,
		Z: quat.W*other.Z + quat.X*other.Y - quat.Y*other.X + quat.Z*other.W,
		W: quat.W*other.W - quat.X*other.X - quat.Y*other.Y - quat.Z*other.Z,
	}
}

// Conjugate returns the conjugate of the Quaternion (the vector part negated).
func (quat Quaternion[S]) Conjugate() Quaternion[S] {
	quat.X = -quat.X
	quat.Y = -quat.Y
	quat.Z = -quat.Z
	return quat
}

// Negate returns a copy of the Quaternion with all four components flipped. As a rotation, the negation
// represents the same rotation as the original.
func (quat Quaternion[S]) Negate() Quaternion[S] {
	quat.X = -quat.X
	quat.Y = -quat.Y
	quat.Z = -quat.Z
	quat.W = -quat.W
	return quat
}

// Scale returns a copy of the Quaternion with all four components scaled by the scalar provided.
func (quat Quaternion[S]) Scale(scale S) Quaternion[S] {
	quat.X *= scale
	quat.Y *= scale
	quat.Z *= scale
	quat.W *= scale
	return quat
}

// Dot returns the dot product of the calling Quaternion and the other Quaternion provided.
func (quat Quaternion[S]) Dot(other Quaternion[S]) S {
	return quat.X*other.X + quat.Y*other.Y + quat.Z*other.Z + quat.W*other.W
}

// Magnitude returns the length of the Quaternion.
func (quat Quaternion[S]) Magnitude() S {
	return scalar.Sqrt(quat.Dot(quat))
}

// MagnitudeSquared returns the squared length of the Quaternion; this is faster than Magnitude() as it avoids the square root.
func (quat Quaternion[S]) MagnitudeSquared() S {
	return quat.Dot(quat)
}

// Unit returns a copy of the Quaternion, normalized (set to be of unit length).
// If the quaternion is too close to zero length to normalize sensibly, the identity is returned.
func (quat Quaternion[S]) Unit() Quaternion[S] {
	l := quat.Magnitude()
	if l < 1e-8 {
		return NewQuaternionIdentity[S]()
	}
	return quat.Scale(1 / l)
}

// RotateVec rotates the vector provided by the calling Quaternion through the sandwich product q·v·q*,
// returning the rotated copy. The quaternion must be of unit length for the result to be a pure rotation.
func (quat Quaternion[S]) RotateVec(vec Vec3[S]) Vec3[S] {
	qv := Vec3[S]{X: quat.X, Y: quat.Y, Z: quat.Z}
	t := qv.Cross(vec).Scale(2)
	return vec.Add(t.Scale(quat.W)).Add(qv.Cross(t))
}

// ToMatrix3 returns a Matrix3 representative of the Quaternion's rotation. The quaternion must be of unit
// length for the resulting matrix to be orthogonal.
func (quat Quaternion[S]) ToMatrix3() Matrix3[S] {

	x, y, z, w := quat.X, quat.Y, quat.Z, quat.W

	return Matrix3[S]{
		{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y)},
	}

}

// ToAxisAngle returns the rotation the unit Quaternion represents, decomposed into an axis and a
// counter-clockwise angle around it. The identity quaternion reports a zero rotation around +Y.
func (quat Quaternion[S]) ToAxisAngle() (Vec3[S], Rad[S]) {

	w := scalar.Clamp(quat.W, -1, 1)
	angle := 2 * scalar.Acos(w)

	s := scalar.Sqrt(1 - w*w)
	if s < 1e-8 {
		return NewVec3[S](0, 1, 0), Radians[S](0)
	}

	axis := Vec3[S]{X: quat.X / s, Y: quat.Y / s, Z: quat.Z / s}
	return axis, Radians(angle)

}

// Lerp linearly interpolates between the calling Quaternion and the other Quaternion provided by the
// percentage given (from 0 to 1), renormalizing the result. Cheaper than Slerp, but the rotation speed
// isn't constant across the range.
func (quat Quaternion[S]) Lerp(other Quaternion[S], percent S) Quaternion[S] {

	percent = scalar.Clamp(percent, 0, 1)

	// Head the short way around
	if quat.Dot(other) < 0 {
		other = other.Negate()
	}

	return Quaternion[S]{
		X: quat.X + (other.X-quat.X)*percent,
		Y: quat.Y + (other.Y-quat.Y)*percent,
		Z: quat.Z + (other.Z-quat.Z)*percent,
		W: quat.W + (other.W-quat.W)*percent,
	}.Unit()

}

// Slerp spherically interpolates between the calling Quaternion and the other Quaternion provided by the
// percentage given (from 0 to 1), always taking the shorter path.
func (quat Quaternion[S]) Slerp(other Quaternion[S], percent S) Quaternion[S] {

	if percent <= 0 {
		return quat
	} else if percent >= 1 {
		return other
	}

	angle := quat.Dot(other)

	// Head the short way around
	if angle < 0 {
		other = other.Negate()
		angle = -angle
	}

	// Too close together to slerp stably; lerp is indistinguishable here
	if angle >= 0.9995 {
		return quat.Lerp(other, percent)
	}

	sinHalfTheta := scalar.Sqrt(1 - angle*angle)
	halfTheta := scalar.Atan2(sinHalfTheta, angle)

	ratioA := scalar.Sin((1-percent)*halfTheta) / sinHalfTheta
	ratioB := scalar.Sin(percent*halfTheta) / sinHalfTheta

	return Quaternion[S]{
		X: quat.X*ratioA + other.X*ratioB,
		Y: quat.Y*ratioA + other.Y*ratioB,
		Z: quat.Z*ratioA + other.Z*ratioB,
		W: quat.W*ratioA + other.W*ratioB,
	}

}

// ApproxEqual reports whether the two quaternions are component-wise equal within the scalar type's default tolerance.
func (quat Quaternion[S]) ApproxEqual(other Quaternion[S]) bool {
	return quat.ApproxEqualEps(other, scalar.Epsilon[S]())
}

// ApproxEqualEps reports whether the two quaternions are component-wise equal within the tolerance provided.
func (quat Quaternion[S]) ApproxEqualEps(other Quaternion[S], eps S) bool {
	return scalar.EqualWithin(quat.X, other.X, eps) &&
		scalar.EqualWithin(quat.Y, other.Y, eps) &&
		scalar.EqualWithin(quat.Z, other.Z, eps) &&
		scalar.EqualWithin(quat.W, other.W, eps)
}

func (quat Quaternion[S]) String() string {
	return "Quaternion(" + floatString(quat.X) + ", " + floatString(quat.Y) + ", " + floatString(quat.Z) + ", " + floatString(quat.W) + ")"
}
