package curve3d

import (
	"fmt"
	"iter"

	"cogentcore.org/core/math32"
)

// CurveSample is one evaluated point of a curve together with its local
// frame.
//
// T, N, and B are unit length and pairwise orthogonal, and form a
// right-handed frame (T × N = B).
type CurveSample struct {
	// Position.
	V math32.Vector3
	// Tangent.
	T math32.Vector3
	// Normal.
	N math32.Vector3
	// Binormal.
	B math32.Vector3
}

func (s CurveSample) String() string {
	return fmt.Sprintf("V=%s T=%s N=%s B=%s", fmtVec(s.V), fmtVec(s.T), fmtVec(s.N), fmtVec(s.B))
}

// Frame returns the transform that maps the local axes (x, y, z) to the
// sample's (N, B, T) frame, positioned at V. A renderer can use it to draw the
// frame's axes.
func (s CurveSample) Frame() math32.Matrix4 {
	var m math32.Matrix4
	m.Set(
		s.N.X, s.B.X, s.T.X, s.V.X,
		s.N.Y, s.B.Y, s.T.Y, s.V.Y,
		s.N.Z, s.B.Z, s.T.Z, s.V.Z,
		0, 0, 0, 1,
	)
	return m
}

// Curve is a sequence of samples in order of increasing curve parameter.
type Curve []CurveSample

// Positions returns an iterator over the positions of the samples.
func (c Curve) Positions() iter.Seq[math32.Vector3] {
	return func(yield func(math32.Vector3) bool) {
		for _, s := range c {
			if !yield(s.V) {
				return
			}
		}
	}
}

// Closed reports whether the curve ends where it starts.
func (c Curve) Closed() bool {
	if len(c) < 2 {
		return false
	}
	const eps = 1e-8
	return c[0].V.Sub(c[len(c)-1].V).LengthSquared() < eps
}

func fmtVec(v math32.Vector3) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
