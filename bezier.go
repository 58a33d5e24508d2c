package curve3d

import "cogentcore.org/core/math32"

// EvalBezier samples a piecewise cubic Bézier curve. It is shorthand for
// calling [Evaluator.Bezier] on the zero Evaluator.
func EvalBezier(points []math32.Vector3, steps int) (Curve, error) {
	return Evaluator{}.Bezier(points, steps)
}

// Bezier samples the piecewise cubic Bézier curve described by points.
//
// The number of points must be 3n+1 for some n >= 1. Segment i uses points
// 3i through 3i+3, so consecutive segments share an end point. Each segment
// is sampled steps times, at t = k/steps for k in [0, steps). The end point of
// the last segment is thus not part of the curve, and the curve has
// n·steps samples in total.
//
// The frame is carried across segment boundaries, so it doesn't jump where
// segments meet with matching tangents.
//
// If steps is less than one, the curve is empty.
func (e Evaluator) Bezier(points []math32.Vector3, steps int) (Curve, error) {
	if len(points) < 4 || (len(points)-1)%3 != 0 {
		return nil, &ControlPointCountError{Kind: BezierKind, Count: len(points)}
	}
	e.logInput(BezierKind, points, steps)

	n := (len(points) - 1) / 3
	out := make(Curve, 0, n*max(steps, 0))
	fr := newFrame(e.Seed)
	for i := range n {
		p := points[3*i : 3*i+4]
		g := geometry(p[0], p[1], p[2], p[3])
		fr.setFallback(p...)
		out = evalSegment(out, &g, steps, &fr)
	}

	e.logOutput(BezierKind, out)
	return out, nil
}

// evalSegment appends steps samples of the Bézier segment with geometry
// matrix g to out.
func evalSegment(out Curve, g *math32.Matrix4, steps int, fr *frame) Curve {
	for k := range max(steps, 0) {
		t := float32(k) / float32(steps)
		v := evalBasis(g, &bernstein, t)
		d := evalBasis(g, &bernsteinDeriv, t)
		out = append(out, fr.next(v, d))
	}
	return out
}
