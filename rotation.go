package gmath

import "github.com/solarlune/gmath/scalar"

// The conversion capabilities below are single-method contracts: implementing one asserts the value can be
// turned into that representation without loss. Every rotation representation converts to matrix form and to
// its own canonical form; the 3D representations additionally convert to and from quaternion form, so the
// conversion graph between Rot3 and Quaternion is closed in both directions.

// ToMatrix2 is the capability of being converted, without loss, into a 2x2 matrix.
type ToMatrix2[S scalar.Float] interface {
	Matrix2() Matrix2[S]
}

// ToMatrix3 is the capability of being converted, without loss, into a 3x3 matrix.
type ToMatrix3[S scalar.Float] interface {
	Matrix3() Matrix3[S]
}

// ToQuaternion is the capability of being converted, without loss, into a quaternion.
type ToQuaternion[S scalar.Float] interface {
	Quaternion() Quaternion[S]
}

// ToRotation2 is the capability of being converted, without loss, into a Rot2.
type ToRotation2[S scalar.Float] interface {
	Rot2() Rot2[S]
}

// ToRotation3 is the capability of being converted, without loss, into a Rot3.
type ToRotation3[S scalar.Float] interface {
	Rot3() Rot3[S]
}

// Rotation2 is the contract shared by every representation of a 2D rotation about the origin. R is the
// implementing representation itself, so composition and inversion stay within one representation and each
// can use its own cheapest algorithm behind the same set of calls. The contract is satisfied by pointers
// to the representations (the in-place variants mutate the receiver).
//
// The composition order is fixed across all representations: a.Concat(b) returns the rotation that applies
// b first and a second, matching the matrix product a·b under the column-vector convention.
type Rotation2[S scalar.Float, R any] interface {
	// RotatePoint applies the rotation about the origin to a point.
	RotatePoint(point Point2[S]) Point2[S]
	// RotateVec applies the rotation to a free vector.
	RotateVec(vec Vec2[S]) Vec2[S]
	// RotateRay applies the rotation to a ray's origin and direction jointly.
	RotateRay(ray Ray2[S]) Ray2[S]
	// Concat returns the combined rotation a·b; the calling rotation is applied second.
	Concat(other R) R
	// ConcatSelf is the in-place variant of Concat; the same ordering applies.
	ConcatSelf(other R)
	// Invert returns the rotation that undoes the calling rotation.
	Invert() R
	// InvertSelf is the in-place variant of Invert.
	InvertSelf()
	// ApproxEqual reports whether the two rotations are equal within the representation's tolerance (see Epsilon).
	ApproxEqual(other R) bool
	// ApproxEqualEps reports whether the two rotations are equal within the tolerance provided.
	ApproxEqualEps(other R, eps S) bool
	// Epsilon returns the representation's comparison tolerance.
	Epsilon() S

	ToMatrix2[S]
	ToRotation2[S]
}

// Rotation3 is the contract shared by every representation of a 3D rotation about the origin; see Rotation2
// for the composition-order convention, which is identical here.
type Rotation3[S scalar.Float, R any] interface {
	// RotatePoint applies the rotation about the origin to a point.
	RotatePoint(point Point3[S]) Point3[S]
	// RotateVec applies the rotation to a free vector.
	RotateVec(vec Vec3[S]) Vec3[S]
	// RotateRay applies the rotation to a ray's origin and direction jointly.
	RotateRay(ray Ray3[S]) Ray3[S]
	// Concat returns the combined rotation a·b; the calling rotation is applied second.
	Concat(other R) R
	// ConcatSelf is the in-place variant of Concat; the same ordering applies.
	ConcatSelf(other R)
	// Invert returns the rotation that undoes the calling rotation.
	Invert() R
	// InvertSelf is the in-place variant of Invert.
	InvertSelf()
	// ApproxEqual reports whether the two rotations are equal within the representation's tolerance (see Epsilon).
	ApproxEqual(other R) bool
	// ApproxEqualEps reports whether the two rotations are equal within the tolerance provided.
	ApproxEqualEps(other R, eps S) bool
	// Epsilon returns the representation's comparison tolerance.
	Epsilon() S

	ToMatrix3[S]
	ToQuaternion[S]
	ToRotation3[S]
}

var _ Rotation2[float64, Rot2[float64]] = &Rot2[float64]{}

var _ Rotation3[float64, Rot3[float64]] = &Rot3[float64]{}

var _ Rotation3[float32, Quaternion[float32]] = &Quaternion[float32]{}

var _ Rotation3[float64, Quaternion[float64]] = &Quaternion[float64]{}

// Rot2 is a 2D rotation represented by an orthogonal 2x2 matrix.
//
// The wrapped matrix is guaranteed to stay orthogonal: there is no way to construct a Rot2 around an
// arbitrary matrix, and the operations exposed on it are restricted to the subset of Matrix2's that
// preserve orthogonality (products of orthogonal matrices are orthogonal, as are their inverses). That
// invariant is what lets Invert get away with a transpose where Matrix2 needs a full inverse.
type Rot2[S scalar.Float] struct {
	mat Matrix2[S]
}

// NewRot2 returns a new Rot2 rotating counter-clockwise by the angle given.
func NewRot2[S scalar.Float](angle Angle[S]) Rot2[S] {
	return Rot2[S]{mat: NewMatrix2Rotation(angle)}
}

// NewRot2Identity returns the identity Rot2, representing no rotation.
func NewRot2Identity[S scalar.Float]() Rot2[S] {
	return Rot2[S]{mat: NewMatrix2[S]()}
}

// Matrix2 returns a copy of the orthogonal matrix backing the rotation.
func (rot Rot2[S]) Matrix2() Matrix2[S] {
	return rot.mat
}

// Rot2 returns the rotation itself; it is already in canonical 2D matrix form.
func (rot Rot2[S]) Rot2() Rot2[S] {
	return rot
}

// RotatePoint applies the rotation about the origin to the point provided, returning a rotated copy.
func (rot Rot2[S]) RotatePoint(point Point2[S]) Point2[S] {
	return rot.mat.MultPoint(point)
}

// RotateVec applies the rotation to the vector provided, returning a rotated copy.
func (rot Rot2[S]) RotateVec(vec Vec2[S]) Vec2[S] {
	return rot.mat.MultVec(vec)
}

// RotateRay applies the rotation to the ray's origin and direction jointly, returning a rotated copy.
func (rot Rot2[S]) RotateRay(ray Ray2[S]) Ray2[S] {
	return Ray2[S]{
		Origin:    rot.RotatePoint(ray.Origin),
		Direction: rot.RotateVec(ray.Direction),
	}
}

// Concat returns the rotation combining the two; the other rotation is applied first, the calling one second.
func (rot Rot2[S]) Concat(other Rot2[S]) Rot2[S] {
	return Rot2[S]{mat: rot.mat.Mult(other.mat)}
}

// ConcatSelf combines the calling rotation with the other in place; the same ordering as Concat applies.
func (rot *Rot2[S]) ConcatSelf(other Rot2[S]) {
	rot.mat = rot.mat.Mult(other.mat)
}

// Invert returns the rotation that undoes the calling rotation. The matrix is orthogonal, so its
// transpose is its inverse - no determinant, no division.
func (rot Rot2[S]) Invert() Rot2[S] {
	return Rot2[S]{mat: rot.mat.Transposed()}
}

// InvertSelf inverts the calling rotation in place.
func (rot *Rot2[S]) InvertSelf() {
	rot.mat = rot.mat.Transposed()
}

// ApproxEqual reports whether the two rotations are equal within the representation's tolerance.
func (rot Rot2[S]) ApproxEqual(other Rot2[S]) bool {
	return rot.mat.ApproxEqual(other.mat)
}

// ApproxEqualEps reports whether the two rotations are equal within the tolerance provided.
func (rot Rot2[S]) ApproxEqualEps(other Rot2[S], eps S) bool {
	return rot.mat.ApproxEqualEps(other.mat, eps)
}

// Epsilon returns the representation's comparison tolerance - the scalar type's default.
func (rot Rot2[S]) Epsilon() S {
	return scalar.Epsilon[S]()
}

func (rot Rot2[S]) String() string {
	return "Rot2(\n" + rot.mat.String() + "\n)"
}

// Rot3 is a 3D rotation represented by an orthogonal 3x3 matrix.
//
// As with Rot2, the wrapped matrix is guaranteed to stay orthogonal: the only producers are the named
// constructors below (each mathematically guaranteed to build an orthogonal matrix), composition, inversion,
// and conversion from another rotation representation.
type Rot3[S scalar.Float] struct {
	mat Matrix3[S]
}

// NewRot3Identity returns the identity Rot3, representing no rotation.
func NewRot3Identity[S scalar.Float]() Rot3[S] {
	return Rot3[S]{mat: NewMatrix3[S]()}
}

// NewRot3AngleX returns a new Rot3 rotating counter-clockwise around the +X axis (pitch) by the angle given.
func NewRot3AngleX[S scalar.Float](angle Angle[S]) Rot3[S] {
	return Rot3[S]{mat: NewMatrix3RotationX(angle)}
}

// NewRot3AngleY returns a new Rot3 rotating counter-clockwise around the +Y axis (yaw) by the angle given.
func NewRot3AngleY[S scalar.Float](angle Angle[S]) Rot3[S] {
	return Rot3[S]{mat: NewMatrix3RotationY(angle)}
}

// NewRot3AngleZ returns a new Rot3 rotating counter-clockwise around the +Z axis (roll) by the angle given.
func NewRot3AngleZ[S scalar.Float](angle Angle[S]) Rot3[S] {
	return Rot3[S]{mat: NewMatrix3RotationZ(angle)}
}

// NewRot3FromEuler returns a new Rot3 rotating by the set of euler angles given - around the +Z axis by
// z (roll) first, then the +Y axis by y (yaw), then the +X axis by x (pitch).
func NewRot3FromEuler[S scalar.Float](x, y, z Angle[S]) Rot3[S] {
	return Rot3[S]{mat: NewMatrix3FromEuler(x, y, z)}
}

// NewRot3FromAxisAngle returns a new Rot3 rotating counter-clockwise around the arbitrary axis given by the angle given.
func NewRot3FromAxisAngle[S scalar.Float](axis Vec3[S], angle Angle[S]) Rot3[S] {
	return Rot3[S]{mat: NewMatrix3FromAxisAngle(axis, angle)}
}

// NewRot3LookAt returns a new Rot3 rotating an object so its +Z axis points along dir, using up (usually
// [0, 1, 0]) to steady its roll.
func NewRot3LookAt[S scalar.Float](dir, up Vec3[S]) Rot3[S] {
	return Rot3[S]{mat: NewMatrix3LookAt(dir, up)}
}

// Matrix3 returns a copy of the orthogonal matrix backing the rotation.
func (rot Rot3[S]) Matrix3() Matrix3[S] {
	return rot.mat
}

// Quaternion returns the unit quaternion representing the same rotation.
func (rot Rot3[S]) Quaternion() Quaternion[S] {
	return rot.mat.ToQuaternion()
}

// Rot3 returns the rotation itself; it is already in canonical 3D matrix form.
func (rot Rot3[S]) Rot3() Rot3[S] {
	return rot
}

// RotatePoint applies the rotation about the origin to the point provided, returning a rotated copy.
func (rot Rot3[S]) RotatePoint(point Point3[S]) Point3[S] {
	return rot.mat.MultPoint(point)
}

// RotateVec applies the rotation to the vector provided, returning a rotated copy.
func (rot Rot3[S]) RotateVec(vec Vec3[S]) Vec3[S] {
	return rot.mat.MultVec(vec)
}

// RotateRay applies the rotation to the ray's origin and direction jointly, returning a rotated copy.
func (rot Rot3[S]) RotateRay(ray Ray3[S]) Ray3[S] {
	return Ray3[S]{
		Origin:    rot.RotatePoint(ray.Origin),
		Direction: rot.RotateVec(ray.Direction),
	}
}

// Concat returns the rotation combining the two; the other rotation is applied first, the calling one second.
func (rot Rot3[S]) Concat(other Rot3[S]) Rot3[S] {
	return Rot3[S]{mat: rot.mat.Mult(other.mat)}
}

// ConcatSelf combines the calling rotation with the other in place; the same ordering as Concat applies.
func (rot *Rot3[S]) ConcatSelf(other Rot3[S]) {
	rot.mat = rot.mat.Mult(other.mat)
}

// Invert returns the rotation that undoes the calling rotation. The matrix is orthogonal, so its
// transpose is its inverse - no determinant, no division.
func (rot Rot3[S]) Invert() Rot3[S] {
	return Rot3[S]{mat: rot.mat.Transposed()}
}

// InvertSelf inverts the calling rotation in place.
func (rot *Rot3[S]) InvertSelf() {
	rot.mat = rot.mat.Transposed()
}

// ApproxEqual reports whether the two rotations are equal within the representation's tolerance.
func (rot Rot3[S]) ApproxEqual(other Rot3[S]) bool {
	return rot.mat.ApproxEqual(other.mat)
}

// ApproxEqualEps reports whether the two rotations are equal within the tolerance provided.
func (rot Rot3[S]) ApproxEqualEps(other Rot3[S], eps S) bool {
	return rot.mat.ApproxEqualEps(other.mat, eps)
}

// Epsilon returns the representation's comparison tolerance - the scalar type's default.
func (rot Rot3[S]) Epsilon() S {
	return scalar.Epsilon[S]()
}

func (rot Rot3[S]) String() string {
	return "Rot3(\n" + rot.mat.String() + "\n)"
}

// A Quaternion is a 3D rotation in its own right, with no wrapper type in between: the methods below round
// out the Rotation3 contract on top of the algebra in quaternion.go, using quaternion arithmetic for
// composition and inversion rather than going through matrix form. Composition and the rotation functions
// expect the caller to keep the quaternion at unit length (for example by building it with
// NewQuaternionFromAxisAngle, or renormalizing with Unit after a long chain of products); Invert makes no
// such assumption and computes the general inverse.

// Quaternion returns the quaternion itself; it is already in canonical quaternion form.
func (quat Quaternion[S]) Quaternion() Quaternion[S] {
	return quat
}

// Matrix3 returns the rotation matrix representing the same rotation as the unit Quaternion.
func (quat Quaternion[S]) Matrix3() Matrix3[S] {
	return quat.ToMatrix3()
}

// Rot3 returns the matrix-backed rotation representing the same rotation as the unit Quaternion.
func (quat Quaternion[S]) Rot3() Rot3[S] {
	return Rot3[S]{mat: quat.ToMatrix3()}
}

// RotatePoint applies the rotation about the origin to the point provided, returning a rotated copy.
func (quat Quaternion[S]) RotatePoint(point Point3[S]) Point3[S] {
	return quat.RotateVec(point.Vec()).Point()
}

// RotateRay applies the rotation to the ray's origin and direction jointly, returning a rotated copy.
func (quat Quaternion[S]) RotateRay(ray Ray3[S]) Ray3[S] {
	return Ray3[S]{
		Origin:    quat.RotatePoint(ray.Origin),
		Direction: quat.RotateVec(ray.Direction),
	}
}

// Concat returns the rotation combining the two - the Hamilton product quat ⊗ other, so the other rotation
// is applied first and the calling one second, matching the matrix representations.
func (quat Quaternion[S]) Concat(other Quaternion[S]) Quaternion[S] {
	return quat.Mult(other)
}

// ConcatSelf combines the calling rotation with the other in place; the same ordering as Concat applies.
func (quat *Quaternion[S]) ConcatSelf(other Quaternion[S]) {
	*quat = quat.Mult(other)
}

// Invert returns the general quaternion inverse - the conjugate divided by the squared magnitude. For a
// unit quaternion this is just the conjugate, but non-unit quaternions invert correctly too.
func (quat Quaternion[S]) Invert() Quaternion[S] {
	return quat.Conjugate().Scale(1 / quat.MagnitudeSquared())
}

// InvertSelf inverts the calling rotation in place.
func (quat *Quaternion[S]) InvertSelf() {
	*quat = quat.Invert()
}

// Epsilon returns the representation's comparison tolerance - the scalar type's default.
func (quat Quaternion[S]) Epsilon() S {
	return scalar.Epsilon[S]()
}
