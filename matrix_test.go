package gmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func BenchmarkMatrixInversion(b *testing.B) {

	b.ReportAllocs()

	mat := NewMatrix3FromAxisAngle(NewVec3(0.0, 1, 0.2), Radians(0.24))

	for i := 0; i < b.N; i++ {
		mat.Inverted()
	}

}

func TestMatrixInversion(t *testing.T) {

	matrices := []Matrix3[float64]{
		NewMatrix3FromAxisAngle(NewVec3(0.0, 1, 0), Radians(0.1)),
		NewMatrix3FromEuler(Radians(0.334), Radians(-1.2), Radians(2.9)),
		{
			{10, 0, 0},
			{0, 0.1, 0},
			{0, 0, -0.45},
		},
		{
			{1, 2, 0},
			{0, 1, 0.5},
			{0.25, 0, 1},
		},
	}

	for i, mat := range matrices {

		// Multiplying a matrix by its inverse has to give back the identity matrix.
		if !mat.Mult(mat.Inverted()).IsIdentity() {
			t.Fatal("failed on matrix #", i, ": matrix * matrix.Inverted() is not identity")
		}

	}

}

func TestSingularMatrixInversion(t *testing.T) {

	singular := Matrix3[float64]{
		{1, 2, 3},
		{2, 4, 6},
		{0, 0, 1},
	}

	assert.True(t, singular.Inverted().IsZero())
	assert.True(t, Matrix2[float64]{{1, 2}, {2, 4}}.Inverted().IsZero())

}

func TestTransposeInvertsOrthogonal(t *testing.T) {

	matrices := []Matrix3[float64]{
		NewMatrix3RotationX(Radians(0.77)),
		NewMatrix3RotationY(Degrees(33.0)),
		NewMatrix3RotationZ(Radians(-2.1)),
		NewMatrix3FromAxisAngle(NewVec3(1.0, -2, 0.5), Radians(1.3)),
		NewMatrix3LookAt(NewVec3(1.0, 0.2, -3), NewVec3(0.0, 1, 0)),
	}

	for i, mat := range matrices {
		if !mat.Transposed().ApproxEqual(mat.Inverted()) {
			t.Fatal("failed on matrix #", i, ": transpose does not match inverse for an orthogonal matrix")
		}
	}

}

func TestRotationMatricesAgainstMathgl(t *testing.T) {

	theta := 0.713

	checks := []struct {
		name string
		mine Matrix3[float64]
		ref  mgl64.Mat3
	}{
		{"x", NewMatrix3RotationX(Radians(theta)), mgl64.Rotate3DX(theta)},
		{"y", NewMatrix3RotationY(Radians(theta)), mgl64.Rotate3DY(theta)},
		{"z", NewMatrix3RotationZ(Radians(theta)), mgl64.Rotate3DZ(theta)},
	}

	for _, check := range checks {
		for i := range 3 {
			for j := range 3 {
				assert.InDelta(t, check.ref.At(i, j), check.mine[i][j], 1e-12, "axis %s entry [%d][%d]", check.name, i, j)
			}
		}
	}

	axis := NewVec3(1.0, -0.5, 2).Unit()
	mine := NewMatrix3FromAxisAngle(axis, Radians(theta))
	ref := mgl64.HomogRotate3D(theta, mgl64.Vec3{axis.X, axis.Y, axis.Z})

	for i := range 3 {
		for j := range 3 {
			assert.InDelta(t, ref.At(i, j), mine[i][j], 1e-12, "axis-angle entry [%d][%d]", i, j)
		}
	}

}

func TestLookAtMatrix(t *testing.T) {

	// Looking down +Z with +Y up is no rotation at all.
	assert.True(t, NewMatrix3LookAt(NewVec3(0.0, 0, 1), NewVec3(0.0, 1, 0)).IsIdentity())

	// Looking down +X carries +Z to +X.
	lookX := NewMatrix3LookAt(NewVec3(1.0, 0, 0), NewVec3(0.0, 1, 0))
	assert.True(t, lookX.MultVec(NewVec3(0.0, 0, 1)).ApproxEqual(NewVec3(1.0, 0, 0)))

	// A degenerate up vector (parallel to the direction) still has to produce an orthogonal matrix.
	degenerate := NewMatrix3LookAt(NewVec3(0.0, 1, 0), NewVec3(0.0, 1, 0))
	assert.True(t, degenerate.Mult(degenerate.Transposed()).IsIdentity())

}

func TestMatrixToQuaternion(t *testing.T) {

	// One matrix per branch of the conversion: trace-dominant, then each diagonal entry dominant.
	matrices := []Matrix3[float64]{
		NewMatrix3RotationZ(Radians(0.25)),
		NewMatrix3RotationX(Radians(math.Pi - 0.01)),
		NewMatrix3RotationY(Radians(math.Pi - 0.01)),
		NewMatrix3RotationZ(Radians(math.Pi - 0.01)),
		NewMatrix3FromAxisAngle(NewVec3(1.0, 1, 1), Radians(2.9)),
	}

	for i, mat := range matrices {

		quat := mat.ToQuaternion()

		assert.InDelta(t, 1.0, quat.Magnitude(), 1e-9, "matrix #%d produced a non-unit quaternion", i)

		if !quat.ToMatrix3().ApproxEqualEps(mat, 1e-9) {
			t.Fatal("failed on matrix #", i, ": matrix -> quaternion -> matrix does not round-trip")
		}

	}

}

func TestMatrix2Rotation(t *testing.T) {

	quarter := NewMatrix2Rotation(Degrees(90.0))

	assert.True(t, quarter.MultVec(NewVec2(1.0, 0)).ApproxEqual(NewVec2(0.0, 1)))
	assert.True(t, quarter.Mult(quarter.Inverted()).IsIdentity())
	assert.True(t, quarter.Transposed().ApproxEqual(quarter.Inverted()))
	assert.InDelta(t, 1.0, quarter.Determinant(), 1e-12)

}
