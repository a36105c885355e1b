package gmath

import "github.com/solarlune/gmath/scalar"

// AxisAngle represents a rotation around a given 3D axis by a given angle. It's a convenient way to
// specify or inspect a rotation, but a poor one to compose in - convert to a Rot3 or a Quaternion
// (both conversions are lossless) before chaining rotations together.
type AxisAngle[S scalar.Float] struct {
	Axis  Vec3[S] // The axis rotated around; always kept at unit length
	Angle Rad[S]  // The counter-clockwise rotation around the axis
}

// NewAxisAngle creates a new AxisAngle out of the given 3D vector axis and angular rotation.
func NewAxisAngle[S scalar.Float](axis Vec3[S], angle Angle[S]) AxisAngle[S] {
	return AxisAngle[S]{
		Axis:  axis.Unit(),
		Angle: Radians(angle.Radians()),
	}
}

// Matrix3 returns the rotation matrix representing the same rotation.
func (aa AxisAngle[S]) Matrix3() Matrix3[S] {
	return NewMatrix3FromAxisAngle(aa.Axis, aa.Angle)
}

// Quaternion returns the unit quaternion representing the same rotation.
func (aa AxisAngle[S]) Quaternion() Quaternion[S] {
	return NewQuaternionFromAxisAngle(aa.Axis, aa.Angle)
}

// Rot3 returns the matrix-backed rotation representing the same rotation.
func (aa AxisAngle[S]) Rot3() Rot3[S] {
	return NewRot3FromAxisAngle(aa.Axis, aa.Angle)
}

// RotateVec rotates the given vector around the axis by the angle, returning a rotated copy of it.
// For example, an AxisAngle with an Axis of [0, 1, 0] (+Y, or "up") and an Angle of pi/2 would carry
// the vector [0, 0, 1] to [1, 0, 0].
func (aa AxisAngle[S]) RotateVec(vec Vec3[S]) Vec3[S] {
	return aa.Quaternion().RotateVec(vec)
}

func (aa AxisAngle[S]) String() string {
	return "AxisAngle(" + aa.Axis.String() + ", " + aa.Angle.String() + ")"
}
