package curve3d

import "cogentcore.org/core/math32"

// DefaultSeed returns the binormal assumed before the first sample of a
// curve, (1, 1, 1).
//
// The frame of every following sample is derived from the binormal of the
// sample before it, so the seed determines how the whole frame is rolled
// around the curve. Its value is arbitrary; it only has to not be parallel to
// the first tangent.
func DefaultSeed() math32.Vector3 { return math32.Vec3(1, 1, 1) }

// degenerate is the squared length below which a vector is treated as zero.
const degenerate = 1e-12

// frame is the state of the frame propagation recurrence. It is local to one
// evaluation and carried across segment boundaries.
type frame struct {
	// Binormal of the previous sample, or the seed.
	prevB math32.Vector3
	// Tangent of the previous sample. Only valid if hasT is set.
	prevT math32.Vector3
	hasT  bool
	// Direction used when the derivative vanishes and there is no previous
	// tangent to fall back to.
	fallback math32.Vector3
}

func newFrame(seed math32.Vector3) frame {
	if seed.LengthSquared() <= degenerate {
		seed = DefaultSeed()
	}
	return frame{prevB: seed, fallback: math32.Vec3(1, 0, 0)}
}

// next computes the sample at position v with derivative d and advances the
// recurrence.
//
// The normal is B_prev × T and the binormal is T × N, which keeps the frame
// right-handed and avoids the Frenet frame's singularity at inflection
// points.
func (fr *frame) next(v, d math32.Vector3) CurveSample {
	var t math32.Vector3
	switch {
	case d.LengthSquared() > degenerate:
		t = d.Normal()
	case fr.hasT:
		t = fr.prevT
	default:
		t = fr.fallback
	}

	n := fr.prevB.Cross(t)
	if n.LengthSquared() <= degenerate*fr.prevB.LengthSquared() {
		// The previous binormal is parallel to the tangent.
		n = leastAligned(t).Cross(t)
	}
	n = n.Normal()
	b := t.Cross(n).Normal()

	fr.prevB = b
	fr.prevT = t
	fr.hasT = true
	return CurveSample{V: v, T: t, N: n, B: b}
}

// setFallback sets the fallback tangent to the first non-zero chord of the
// control points.
func (fr *frame) setFallback(pts ...math32.Vector3) {
	for i := 1; i < len(pts); i++ {
		if d := pts[i].Sub(pts[0]); d.LengthSquared() > degenerate {
			fr.fallback = d.Normal()
			return
		}
	}
}

// leastAligned returns the coordinate axis that is closest to perpendicular
// to v.
func leastAligned(v math32.Vector3) math32.Vector3 {
	x, y, z := math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z)
	switch {
	case x <= y && x <= z:
		return math32.Vec3(1, 0, 0)
	case y <= z:
		return math32.Vec3(0, 1, 0)
	default:
		return math32.Vec3(0, 0, 1)
	}
}
