package curve3d

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const tolerance = 1e-5

var approx = cmpopts.EquateApprox(0, tolerance)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// checkFrames verifies that every sample has a right-handed orthonormal
// frame.
func checkFrames(t *testing.T, c Curve) {
	t.Helper()
	near := func(got, want float32) bool {
		// Written so that NaN fails.
		return math32.Abs(got-want) <= tolerance
	}
	for i, s := range c {
		axes := []struct {
			name string
			v    math32.Vector3
		}{{"T", s.T}, {"N", s.N}, {"B", s.B}}
		for _, ax := range axes {
			if l := ax.v.Length(); !near(l, 1) {
				t.Errorf("sample %d: |%s| = %g, want 1", i, ax.name, l)
			}
		}
		if d := s.T.Dot(s.N); !near(d, 0) {
			t.Errorf("sample %d: T·N = %g, want 0", i, d)
		}
		if d := s.T.Dot(s.B); !near(d, 0) {
			t.Errorf("sample %d: T·B = %g, want 0", i, d)
		}
		if d := s.N.Dot(s.B); !near(d, 0) {
			t.Errorf("sample %d: N·B = %g, want 0", i, d)
		}
		if d := s.T.Cross(s.N).Sub(s.B).Length(); !near(d, 0) {
			t.Errorf("sample %d: frame is not right-handed, |T×N - B| = %g", i, d)
		}
	}
}

// bernsteinEval evaluates a cubic Bézier segment with the explicit Bernstein
// polynomials.
func bernsteinEval(p0, p1, p2, p3 math32.Vector3, t float32) math32.Vector3 {
	mt := 1 - t
	return p0.MulScalar(mt * mt * mt).
		Add(p1.MulScalar(3 * mt * mt * t)).
		Add(p2.MulScalar(3 * mt * t * t)).
		Add(p3.MulScalar(t * t * t))
}

func pts(xyz ...[3]float32) []math32.Vector3 {
	out := make([]math32.Vector3, len(xyz))
	for i, p := range xyz {
		out[i] = math32.Vec3(p[0], p[1], p[2])
	}
	return out
}
