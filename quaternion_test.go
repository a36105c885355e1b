package gmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/num/quat"
)

// gonumQuat converts to gonum's quaternion layout (scalar part first) so its algebra can serve as an
// independent reference for ours.
func gonumQuat(q Quaternion[float64]) quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

func assertQuatMatchesGonum(t *testing.T, expected quat.Number, actual Quaternion[float64]) {
	t.Helper()
	assert.InDelta(t, expected.Real, actual.W, 1e-12)
	assert.InDelta(t, expected.Imag, actual.X, 1e-12)
	assert.InDelta(t, expected.Jmag, actual.Y, 1e-12)
	assert.InDelta(t, expected.Kmag, actual.Z, 1e-12)
}

func TestQuaternionMultAgainstGonum(t *testing.T) {

	// Deliberately not unit quaternions; the Hamilton product doesn't care.
	a := NewQuaternion(1.0, -2, 3, 0.5)
	b := NewQuaternion(0.25, 4, -1, 2)

	assertQuatMatchesGonum(t, quat.Mul(gonumQuat(a), gonumQuat(b)), a.Mult(b))
	assertQuatMatchesGonum(t, quat.Mul(gonumQuat(b), gonumQuat(a)), b.Mult(a))

}

func TestQuaternionInvertAgainstGonum(t *testing.T) {

	quaternions := []Quaternion[float64]{
		NewQuaternionFromAxisAngle(NewVec3(1.0, 2, -1), Radians(0.9)),
		NewQuaternion(1.0, -2, 3, 0.5),
		NewQuaternion(0.0, 0, 0, 2),
	}

	for i, q := range quaternions {

		assertQuatMatchesGonum(t, quat.Inv(gonumQuat(q)), q.Invert())

		// Inverting twice has to give the original back.
		if !q.Invert().Invert().ApproxEqualEps(q, 1e-12) {
			t.Fatal("failed on quaternion #", i, ": double inversion does not round-trip")
		}

	}

}

func TestQuaternionFromAxisAngleAgainstMathgl(t *testing.T) {

	axis := NewVec3(0.3, -1, 0.7).Unit()
	angle := 1.234

	mine := NewQuaternionFromAxisAngle(axis, Radians(angle))
	ref := mgl64.QuatRotate(angle, mgl64.Vec3{axis.X, axis.Y, axis.Z})

	assert.InDelta(t, ref.W, mine.W, 1e-12)
	assert.InDelta(t, ref.X(), mine.X, 1e-12)
	assert.InDelta(t, ref.Y(), mine.Y, 1e-12)
	assert.InDelta(t, ref.Z(), mine.Z, 1e-12)

	// And the rotation itself agrees.
	rotated := mine.RotateVec(NewVec3(1.0, 2, 3))
	refRotated := ref.Rotate(mgl64.Vec3{1, 2, 3})
	assert.True(t, rotated.ApproxEqualEps(NewVec3(refRotated.X(), refRotated.Y(), refRotated.Z()), 1e-12))

}

func TestQuaternionToAxisAngle(t *testing.T) {

	axis := NewVec3(1.0, -1, 0.5).Unit()
	angle := 2.2

	gotAxis, gotAngle := NewQuaternionFromAxisAngle(axis, Radians(angle)).ToAxisAngle()

	assert.True(t, gotAxis.ApproxEqualEps(axis, 1e-12))
	assert.InDelta(t, angle, gotAngle.Radians(), 1e-12)

	// The identity quaternion has no meaningful axis; it reports a zero angle.
	_, zeroAngle := NewQuaternionIdentity[float64]().ToAxisAngle()
	assert.InDelta(t, 0, zeroAngle.Radians(), 1e-12)

}

func TestQuaternionUnit(t *testing.T) {

	assert.InDelta(t, 1.0, NewQuaternion(1.0, -2, 3, 0.5).Unit().Magnitude(), 1e-12)
	assert.Equal(t, NewQuaternionIdentity[float64](), Quaternion[float64]{}.Unit())

}

func TestQuaternionSlerp(t *testing.T) {

	start := NewQuaternionFromAxisAngle(NewVec3(0.0, 1, 0), Radians(0.0))
	end := NewQuaternionFromAxisAngle(NewVec3(0.0, 1, 0), Radians(math.Pi/2))

	assert.True(t, start.Slerp(end, 0).ApproxEqual(start))
	assert.True(t, start.Slerp(end, 1).ApproxEqual(end))

	// Halfway between no rotation and a quarter turn is an eighth turn.
	expected := NewQuaternionFromAxisAngle(NewVec3(0.0, 1, 0), Radians(math.Pi/4))
	assert.True(t, start.Slerp(end, 0.5).ApproxEqualEps(expected, 1e-12))

	// Slerp heads the short way around, even when the endpoints sit on opposite hemispheres.
	flipped := end.Negate()
	halfway := start.Slerp(flipped, 0.5)
	assert.True(t, halfway.ApproxEqualEps(expected, 1e-12) || halfway.ApproxEqualEps(expected.Negate(), 1e-12))

}

func TestQuaternionLerp(t *testing.T) {

	start := NewQuaternionFromAxisAngle(NewVec3(1.0, 0, 0), Radians(0.0))
	end := NewQuaternionFromAxisAngle(NewVec3(1.0, 0, 0), Radians(math.Pi/3))

	assert.True(t, start.Lerp(end, 0).ApproxEqualEps(start, 1e-12))
	assert.True(t, start.Lerp(end, 1).ApproxEqualEps(end, 1e-12))
	assert.InDelta(t, 1.0, start.Lerp(end, 0.37).Magnitude(), 1e-12)

}

func BenchmarkQuaternionMult(b *testing.B) {

	b.ReportAllocs()

	q1 := NewQuaternionFromAxisAngle(NewVec3(0.0, 1, 0), Radians(0.5))
	q2 := NewQuaternionFromAxisAngle(NewVec3(1.0, 0, 0), Radians(-0.25))

	for i := 0; i < b.N; i++ {
		q1 = q1.Mult(q2)
	}

}
