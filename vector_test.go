package gmath

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Arithmetic(t *testing.T) {

	a := NewVec3(1.0, 2, 3)
	b := NewVec3(-4.0, 5, 0.5)

	assert.True(t, a.Add(b).ApproxEqual(NewVec3(-3.0, 7, 3.5)))
	assert.True(t, a.Sub(b).ApproxEqual(NewVec3(5.0, -3, 2.5)))
	assert.True(t, a.Scale(2).ApproxEqual(NewVec3(2.0, 4, 6)))
	assert.True(t, a.Negate().ApproxEqual(NewVec3(-1.0, -2, -3)))
	assert.InDelta(t, 7.5, a.Dot(b), 1e-12)

}

func TestVec3Cross(t *testing.T) {

	x := NewVec3(1.0, 0, 0)
	y := NewVec3(0.0, 1, 0)
	z := NewVec3(0.0, 0, 1)

	// Right-handed: x × y = z, and cyclically.
	assert.True(t, x.Cross(y).ApproxEqual(z))
	assert.True(t, y.Cross(z).ApproxEqual(x))
	assert.True(t, z.Cross(x).ApproxEqual(y))
	assert.True(t, y.Cross(x).ApproxEqual(z.Negate()))

	// The cross product is perpendicular to both of its inputs.
	a := NewVec3(1.5, -2, 0.25)
	b := NewVec3(3.0, 1, -1)
	cross := a.Cross(b)
	assert.InDelta(t, 0, cross.Dot(a), 1e-12)
	assert.InDelta(t, 0, cross.Dot(b), 1e-12)

}

func TestVec3Unit(t *testing.T) {

	assert.InDelta(t, 1.0, NewVec3(3.0, -4, 12).Unit().Magnitude(), 1e-12)

	// A zero vector can't be normalized and comes back unchanged.
	zero := Vec3[float64]{}
	assert.Equal(t, zero, zero.Unit())

}

func TestVec2Arithmetic(t *testing.T) {

	a := NewVec2(3.0, 4)
	b := NewVec2(-1.0, 2)

	assert.True(t, a.Add(b).ApproxEqual(NewVec2(2.0, 6)))
	assert.True(t, a.Sub(b).ApproxEqual(NewVec2(4.0, 2)))
	assert.InDelta(t, 5.0, a.Magnitude(), 1e-12)
	assert.InDelta(t, 5.0, a.Dot(b), 1e-12)
	assert.InDelta(t, 10.0, a.Cross(b), 1e-12)
	assert.InDelta(t, 1.0, a.Unit().Magnitude(), 1e-12)

}

func TestVec3Float32(t *testing.T) {

	// The same API at float32 precision, with the looser default tolerance that implies.
	a := NewVec3[float32](1, 0, 0)
	b := NewVec3[float32](0, 1, 0)
	assert.True(t, a.Cross(b).ApproxEqual(NewVec3[float32](0, 0, 1)))

}

func BenchmarkVec3Cross(b *testing.B) {

	b.StopTimer()

	maxSize := 1200

	vecs := make([]Vec3[float64], 0, maxSize)

	for i := 0; i < maxSize; i++ {
		vecs = append(vecs, NewVec3(rand.Float64(), rand.Float64(), rand.Float64()))
	}

	b.ReportAllocs()
	b.StartTimer()

	for z := 0; z < b.N; z++ {
		for i := 0; i < maxSize-1; i++ {
			vecs[i] = vecs[i].Cross(vecs[i+1])
		}
	}

}
