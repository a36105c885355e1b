package gmath

import (
	"strings"

	"github.com/solarlune/gmath/scalar"
)

// Matrix2 represents a 2x2 matrix, indexed by [row][column]. gmath matrices use the column-vector
// convention - MultVec computes M·v, and the columns of a rotation matrix are the images of the basis vectors.
type Matrix2[S scalar.Float] [2][2]S

// NewMatrix2 returns a new identity Matrix2.
func NewMatrix2[S scalar.Float]() Matrix2[S] {
	return Matrix2[S]{
		{1, 0},
		{0, 1},
	}
}

// NewMatrix2Rotation returns a new Matrix2 rotating counter-clockwise by the angle given.
func NewMatrix2Rotation[S scalar.Float](angle Angle[S]) Matrix2[S] {
	s := scalar.Sin(angle.Radians())
	c := scalar.Cos(angle.Radians())
	return Matrix2[S]{
		{c, -s},
		{s, c},
	}
}

// Row returns the indexed row of the matrix as a vector.
func (matrix Matrix2[S]) Row(index int) Vec2[S] {
	return Vec2[S]{X: matrix[index][0], Y: matrix[index][1]}
}

// Column returns the indexed column of the matrix as a vector.
func (matrix Matrix2[S]) Column(index int) Vec2[S] {
	return Vec2[S]{X: matrix[0][index], Y: matrix[1][index]}
}

// Mult multiplies the Matrix2 by the other Matrix2 provided (in matrix terms, matrix * other) - this effectively combines them.
func (matrix Matrix2[S]) Mult(other Matrix2[S]) Matrix2[S] {
	newMat := Matrix2[S]{}
	newMat[0][0] = matrix[0][0]*other[0][0] + matrix[0][1]*other[1][0]
	newMat[0][1] = matrix[0][0]*other[0][1] + matrix[0][1]*other[1][1]
	newMat[1][0] = matrix[1][0]*other[0][0] + matrix[1][1]*other[1][0]
	newMat[1][1] = matrix[1][0]*other[0][1] + matrix[1][1]*other[1][1]
	return newMat
}

// MultVec multiplies the vector provided by the Matrix2 (M·v), giving a vector that has been rotated, scaled, or sheared as desired.
func (matrix Matrix2[S]) MultVec(vec Vec2[S]) Vec2[S] {
	return Vec2[S]{
		X: matrix[0][0]*vec.X + matrix[0][1]*vec.Y,
		Y: matrix[1][0]*vec.X + matrix[1][1]*vec.Y,
	}
}

// MultPoint applies the matrix to a point's position, as MultVec does to a vector.
func (matrix Matrix2[S]) MultPoint(point Point2[S]) Point2[S] {
	return matrix.MultVec(point.Vec()).Point()
}

// Transposed returns a transposed copy of the Matrix2 (rows exchanged with columns). For orthogonal matrices,
// like rotation matrices, this is equivalent to (and much cheaper than) inverting it.
func (matrix Matrix2[S]) Transposed() Matrix2[S] {
	matrix[0][1], matrix[1][0] = matrix[1][0], matrix[0][1]
	return matrix
}

// Determinant returns the determinant of the Matrix2.
func (matrix Matrix2[S]) Determinant() S {
	return matrix[0][0]*matrix[1][1] - matrix[0][1]*matrix[1][0]
}

// Inverted returns an inverted copy of the Matrix2. If the matrix is singular and has no inverse,
// a zero Matrix2 is returned instead (check with IsZero).
func (matrix Matrix2[S]) Inverted() Matrix2[S] {
	det := matrix.Determinant()
	if det == 0 {
		return Matrix2[S]{}
	}
	det = 1 / det
	return Matrix2[S]{
		{matrix[1][1] * det, -matrix[0][1] * det},
		{-matrix[1][0] * det, matrix[0][0] * det},
	}
}

// Trace returns the sum of the diagonal entries of the matrix.
func (matrix Matrix2[S]) Trace() S {
	return matrix[0][0] + matrix[1][1]
}

// IsZero reports whether every entry of the matrix is exactly zero.
func (matrix Matrix2[S]) IsZero() bool {
	return matrix == Matrix2[S]{}
}

// IsIdentity reports whether the matrix is approximately the identity matrix.
func (matrix Matrix2[S]) IsIdentity() bool {
	return matrix.ApproxEqual(NewMatrix2[S]())
}

// ApproxEqual reports whether the two matrices are entry-wise equal within the scalar type's default tolerance.
func (matrix Matrix2[S]) ApproxEqual(other Matrix2[S]) bool {
	return matrix.ApproxEqualEps(other, scalar.Epsilon[S]())
}

// ApproxEqualEps reports whether the two matrices are entry-wise equal within the tolerance provided.
func (matrix Matrix2[S]) ApproxEqualEps(other Matrix2[S], eps S) bool {
	for i := range 2 {
		for j := range 2 {
			if !scalar.EqualWithin(matrix[i][j], other[i][j], eps) {
				return false
			}
		}
	}
	return true
}

func (matrix Matrix2[S]) String() string {
	rows := make([]string, 0, 2)
	for i := range 2 {
		rows = append(rows, "[ "+floatString(matrix[i][0])+", "+floatString(matrix[i][1])+" ]")
	}
	return strings.Join(rows, "\n")
}

// Matrix3 represents a 3x3 matrix, indexed by [row][column], using the column-vector convention (see Matrix2).
type Matrix3[S scalar.Float] [3][3]S

// NewMatrix3 returns a new identity Matrix3.
func NewMatrix3[S scalar.Float]() Matrix3[S] {
	return Matrix3[S]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// NewMatrix3RotationX returns a new Matrix3 rotating counter-clockwise around the +X axis (pitch) by the angle given.
func NewMatrix3RotationX[S scalar.Float](angle Angle[S]) Matrix3[S] {
	s := scalar.Sin(angle.Radians())
	c := scalar.Cos(angle.Radians())
	return Matrix3[S]{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// NewMatrix3RotationY returns a new Matrix3 rotating counter-clockwise around the +Y axis (yaw) by the angle given.
func NewMatrix3RotationY[S scalar.Float](angle Angle[S]) Matrix3[S] {
	s := scalar.Sin(angle.Radians())
	c := scalar.Cos(angle.Radians())
	return Matrix3[S]{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// NewMatrix3RotationZ returns a new Matrix3 rotating counter-clockwise around the +Z axis (roll) by the angle given.
func NewMatrix3RotationZ[S scalar.Float](angle Angle[S]) Matrix3[S] {
	s := scalar.Sin(angle.Radians())
	c := scalar.Cos(angle.Radians())
	return Matrix3[S]{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// NewMatrix3FromEuler returns a new Matrix3 rotating by the set of euler angles given - first around the
// +Z axis by z (roll), then around the +Y axis by y (yaw), and finally around the +X axis by x (pitch).
func NewMatrix3FromEuler[S scalar.Float](x, y, z Angle[S]) Matrix3[S] {
	return NewMatrix3RotationX(x).Mult(NewMatrix3RotationY(y)).Mult(NewMatrix3RotationZ(z))
}

// NewMatrix3FromAxisAngle returns a new Matrix3 designed to rotate counter-clockwise around the axis given by the
// angle given. This rotation works as though you pierced the object utilizing the matrix through by the axis, and
// then rotated it counter-clockwise by the angle.
func NewMatrix3FromAxisAngle[S scalar.Float](axis Vec3[S], angle Angle[S]) Matrix3[S] {

	// Default to spinning on +Y axis if there is no valid axis
	if axis.X == 0 && axis.Y == 0 && axis.Z == 0 {
		axis.Y = 1
	}

	axis = axis.Unit()
	s := scalar.Sin(angle.Radians())
	c := scalar.Cos(angle.Radians())
	m := 1 - c

	mat := Matrix3[S]{}

	mat[0][0] = m*axis.X*axis.X + c
	mat[0][1] = m*axis.X*axis.Y - axis.Z*s
	mat[0][2] = m*axis.Z*axis.X + axis.Y*s

	mat[1][0] = m*axis.X*axis.Y + axis.Z*s
	mat[1][1] = m*axis.Y*axis.Y + c
	mat[1][2] = m*axis.Y*axis.Z - axis.X*s

	mat[2][0] = m*axis.Z*axis.X - axis.Y*s
	mat[2][1] = m*axis.Y*axis.Z + axis.X*s
	mat[2][2] = m*axis.Z*axis.Z + c

	return mat

}

// NewMatrix3LookAt returns a new Matrix3 rotating an object so its +Z axis points along dir, using up
// (usually +Y, or [0, 1, 0]) to steady its roll. The resulting matrix is orthogonal as long as dir and
// up are not parallel; if they are, up is substituted out with another axis first.
func NewMatrix3LookAt[S scalar.Float](dir, up Vec3[S]) Matrix3[S] {

	z := dir.Unit()
	up = up.Unit()

	// If z == up, then the matrix will be unusable, so we sub up out with another angle
	if z.ApproxEqual(up) || z.ApproxEqual(up.Negate()) {
		if !up.ApproxEqual(NewVec3[S](1, 0, 0)) {
			up = NewVec3[S](1, 0, 0)
		} else {
			up = NewVec3[S](0, 0, 1)
		}
	}

	x := up.Cross(z).Unit()
	y := z.Cross(x)

	// The basis vectors sit in the columns; this matrix carries +X to x, +Y to y, and +Z to z.
	return Matrix3[S]{
		{x.X, y.X, z.X},
		{x.Y, y.Y, z.Y},
		{x.Z, y.Z, z.Z},
	}

}

// Row returns the indexed row of the matrix as a vector.
func (matrix Matrix3[S]) Row(index int) Vec3[S] {
	return Vec3[S]{X: matrix[index][0], Y: matrix[index][1], Z: matrix[index][2]}
}

// Column returns the indexed column of the matrix as a vector.
func (matrix Matrix3[S]) Column(index int) Vec3[S] {
	return Vec3[S]{X: matrix[0][index], Y: matrix[1][index], Z: matrix[2][index]}
}

// Mult multiplies the Matrix3 by the other Matrix3 provided (in matrix terms, matrix * other) - this effectively combines them.
func (matrix Matrix3[S]) Mult(other Matrix3[S]) Matrix3[S] {
	newMat := Matrix3[S]{}
	for i := range 3 {
		for j := range 3 {
			newMat[i][j] = matrix[i][0]*other[0][j] + matrix[i][1]*other[1][j] + matrix[i][2]*other[2][j]
		}
	}
	return newMat
}

// MultVec multiplies the vector provided by the Matrix3 (M·v), giving a vector that has been rotated, scaled, or sheared as desired.
func (matrix Matrix3[S]) MultVec(vec Vec3[S]) Vec3[S] {
	return Vec3[S]{
		X: matrix[0][0]*vec.X + matrix[0][1]*vec.Y + matrix[0][2]*vec.Z,
		Y: matrix[1][0]*vec.X + matrix[1][1]*vec.Y + matrix[1][2]*vec.Z,
		Z: matrix[2][0]*vec.X + matrix[2][1]*vec.Y + matrix[2][2]*vec.Z,
	}
}

// MultPoint applies the matrix to a point's position, as MultVec does to a vector.
func (matrix Matrix3[S]) MultPoint(point Point3[S]) Point3[S] {
	return matrix.MultVec(point.Vec()).Point()
}

// Transposed returns a transposed copy of the Matrix3 (rows exchanged with columns). For orthogonal matrices,
// like rotation matrices, this is equivalent to (and much cheaper than) inverting it.
func (matrix Matrix3[S]) Transposed() Matrix3[S] {
	newMat := Matrix3[S]{}
	for i := range 3 {
		for j := range 3 {
			newMat[i][j] = matrix[j][i]
		}
	}
	return newMat
}

// Determinant returns the determinant of the Matrix3.
func (matrix Matrix3[S]) Determinant() S {
	return matrix[0][0]*(matrix[1][1]*matrix[2][2]-matrix[1][2]*matrix[2][1]) -
		matrix[0][1]*(matrix[1][0]*matrix[2][2]-matrix[1][2]*matrix[2][0]) +
		matrix[0][2]*(matrix[1][0]*matrix[2][1]-matrix[1][1]*matrix[2][0])
}

// Inverted returns an inverted copy of the Matrix3, computed from the classical adjoint. If the matrix is
// singular and has no inverse, a zero Matrix3 is returned instead (check with IsZero).
func (matrix Matrix3[S]) Inverted() Matrix3[S] {

	det := matrix.Determinant()
	if det == 0 {
		return Matrix3[S]{}
	}
	det = 1 / det

	m := Matrix3[S]{}

	m[0][0] = det * (matrix[1][1]*matrix[2][2] - matrix[1][2]*matrix[2][1])
	m[0][1] = det * (matrix[0][2]*matrix[2][1] - matrix[0][1]*matrix[2][2])
	m[0][2] = det * (matrix[0][1]*matrix[1][2] - matrix[0][2]*matrix[1][1])
	m[1][0] = det * (matrix[1][2]*matrix[2][0] - matrix[1][0]*matrix[2][2])
	m[1][1] = det * (matrix[0][0]*matrix[2][2] - matrix[0][2]*matrix[2][0])
	m[1][2] = det * (matrix[0][2]*matrix[1][0] - matrix[0][0]*matrix[1][2])
	m[2][0] = det * (matrix[1][0]*matrix[2][1] - matrix[1][1]*matrix[2][0])
	m[2][1] = det * (matrix[0][1]*matrix[2][0] - matrix[0][0]*matrix[2][1])
	m[2][2] = det * (matrix[0][0]*matrix[1][1] - matrix[0][1]*matrix[1][0])

	return m

}

// Trace returns the sum of the diagonal entries of the matrix.
func (matrix Matrix3[S]) Trace() S {
	return matrix[0][0] + matrix[1][1] + matrix[2][2]
}

// IsZero reports whether every entry of the matrix is exactly zero.
func (matrix Matrix3[S]) IsZero() bool {
	return matrix == Matrix3[S]{}
}

// IsIdentity reports whether the matrix is approximately the identity matrix.
func (matrix Matrix3[S]) IsIdentity() bool {
	return matrix.ApproxEqual(NewMatrix3[S]())
}

// ApproxEqual reports whether the two matrices are entry-wise equal within the scalar type's default tolerance.
func (matrix Matrix3[S]) ApproxEqual(other Matrix3[S]) bool {
	return matrix.ApproxEqualEps(other, scalar.Epsilon[S]())
}

// ApproxEqualEps reports whether the two matrices are entry-wise equal within the tolerance provided.
func (matrix Matrix3[S]) ApproxEqualEps(other Matrix3[S], eps S) bool {
	for i := range 3 {
		for j := range 3 {
			if !scalar.EqualWithin(matrix[i][j], other[i][j], eps) {
				return false
			}
		}
	}
	return true
}

// ToQuaternion returns a Quaternion representative of the Matrix3's rotation (assuming it is a purely rotational
// Matrix3). The branch is picked by the largest of the trace and the diagonal entries, so the division below is
// always well-conditioned.
func (matrix Matrix3[S]) ToQuaternion() Quaternion[S] {

	tr := matrix.Trace()

	if tr > 0 {
		s := scalar.Sqrt(tr+1) * 2
		return NewQuaternion(
			(matrix[2][1]-matrix[1][2])/s,
			(matrix[0][2]-matrix[2][0])/s,
			(matrix[1][0]-matrix[0][1])/s,
			s/4,
		)
	}

	if matrix[0][0] > matrix[1][1] && matrix[0][0] > matrix[2][2] {
		s := scalar.Sqrt(1+matrix[0][0]-matrix[1][1]-matrix[2][2]) * 2
		return NewQuaternion(
			s/4,
			(matrix[0][1]+matrix[1][0])/s,
			(matrix[0][2]+matrix[2][0])/s,
			(matrix[2][1]-matrix[1][2])/s,
		)
	}

	if matrix[1][1] > matrix[2][2] {
		s := scalar.Sqrt(1+matrix[1][1]-matrix[0][0]-matrix[2][2]) * 2
		return NewQuaternion(
			(matrix[0][1]+matrix[1][0])/s,
			s/4,
			(matrix[1][2]+matrix[2][1])/s,
			(matrix[0][2]-matrix[2][0])/s,
		)
	}

	s := scalar.Sqrt(1+matrix[2][2]-matrix[0][0]-matrix[1][1]) * 2
	return NewQuaternion(
		(matrix[0][2]+matrix[2][0])/s,
		(matrix[1][2]+matrix[2][1])/s,
		s/4,
		(matrix[1][0]-matrix[0][1])/s,
	)

}

func (matrix Matrix3[S]) String() string {
	rows := make([]string, 0, 3)
	for i := range 3 {
		rows = append(rows, "[ "+floatString(matrix[i][0])+", "+floatString(matrix[i][1])+", "+floatString(matrix[i][2])+" ]")
	}
	return strings.Join(rows, "\n")
}
