package curve3d

import "cogentcore.org/core/math32"

// EvalBSpline samples a uniform cubic B-spline. It is shorthand for calling
// [Evaluator.BSpline] on the zero Evaluator.
func EvalBSpline(points []math32.Vector3, steps int) (Curve, error) {
	return Evaluator{}.BSpline(points, steps)
}

// BSpline samples the uniform cubic B-spline described by at least four
// control points.
//
// Every window of four consecutive control points describes one segment, for
// len(points)-3 segments in total. Each segment is converted to the Bézier
// segment describing the same curve and sampled like [Evaluator.Bezier] does,
// with the frame carried across segment boundaries.
func (e Evaluator) BSpline(points []math32.Vector3, steps int) (Curve, error) {
	if len(points) < 4 {
		return nil, &ControlPointCountError{Kind: BSplineKind, Count: len(points)}
	}
	e.logInput(BSplineKind, points, steps)

	n := len(points) - 3
	out := make(Curve, 0, n*max(steps, 0))
	fr := newFrame(e.Seed)
	for i := range n {
		g := bsplineSegment(points[i : i+4])
		fr.setFallback(column(&g, 0), column(&g, 1), column(&g, 2), column(&g, 3))
		out = evalSegment(out, &g, steps, &fr)
	}

	e.logOutput(BSplineKind, out)
	return out, nil
}

// BSplineToBezier returns the control points of the piecewise Bézier curve
// that describes the same curve as the uniform cubic B-spline with the given
// control points. The result has 3n+1 points for a B-spline with n segments
// and can be passed to [EvalBezier].
func BSplineToBezier(points []math32.Vector3) ([]math32.Vector3, error) {
	if len(points) < 4 {
		return nil, &ControlPointCountError{Kind: BSplineKind, Count: len(points)}
	}
	n := len(points) - 3
	out := make([]math32.Vector3, 0, 3*n+1)
	for i := range n {
		g := bsplineSegment(points[i : i+4])
		if i == 0 {
			out = append(out, column(&g, 0))
		}
		out = append(out, column(&g, 1), column(&g, 2), column(&g, 3))
	}
	return out, nil
}

// bsplineSegment returns the Bézier geometry matrix of the B-spline segment
// with control points p[0] through p[3].
func bsplineSegment(p []math32.Vector3) math32.Matrix4 {
	bsp := geometry(p[0], p[1], p[2], p[3])
	var g math32.Matrix4
	g.MulMatrices(&bsp, &bsplineToBezier)
	return g
}
