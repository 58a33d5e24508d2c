package curve3d

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestCurveSampleFrame(t *testing.T) {
	s := CurveSample{
		V: math32.Vec3(1, 2, 3),
		T: math32.Vec3(0, 0, 1),
		N: math32.Vec3(1, 0, 0),
		B: math32.Vec3(0, 1, 0),
	}
	m := s.Frame()
	at := func(x, y, z float32) math32.Vector3 {
		v := math32.Vec4(x, y, z, 1).MulMatrix4(&m)
		return math32.Vec3(v.X, v.Y, v.Z)
	}
	diff(t, s.V, at(0, 0, 0))
	diff(t, s.V.Add(s.N), at(1, 0, 0))
	diff(t, s.V.Add(s.B), at(0, 1, 0))
	diff(t, s.V.Add(s.T), at(0, 0, 1))
}

func TestCurveClosed(t *testing.T) {
	assert.False(t, Curve(nil).Closed())
	assert.False(t, Curve{{}}.Closed())

	c, err := EvalBezier(pts(
		[3]float32{0, 0, 0},
		[3]float32{1, 0, 0},
		[3]float32{1, 1, 0},
		[3]float32{0, 1, 0},
	), 4)
	assert.NoError(t, err)
	assert.False(t, c.Closed())
	assert.True(t, EvalCircle(1, 12).Closed())
}

func TestCurvePositionsStops(t *testing.T) {
	c := EvalCircle(1, 10)
	var n int
	for range c.Positions() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestCurveSampleString(t *testing.T) {
	s := CurveSample{
		V: math32.Vec3(1, 2, 3),
		T: math32.Vec3(0, 0, 1),
		N: math32.Vec3(1, 0, 0),
		B: math32.Vec3(0, 1, 0),
	}
	assert.Equal(t, "V=(1, 2, 3) T=(0, 0, 1) N=(1, 0, 0) B=(0, 1, 0)", s.String())
}
