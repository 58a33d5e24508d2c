// Package curve3d samples 3D parametric curves into polylines that carry a
// moving reference frame at every sample. The output is suitable for sweeping
// cross-sections along a curve, or for drawing the curve together with its
// local coordinate axes.
//
// # Curves
//
// Three kinds of curves are supported:
//
//   - Piecewise cubic Béziers (see [EvalBezier]), described by 3n+1 control
//     points, where consecutive segments share an end point.
//   - Uniform cubic B-splines (see [EvalBSpline]), described by at least four
//     control points. They are evaluated by converting every segment to the
//     equivalent Bézier segment (see [BSplineToBezier]).
//   - Circles (see [EvalCircle]), computed in closed form. They serve as a
//     reference to compare the other evaluators against.
//
// Each evaluation returns a [Curve], a slice of [CurveSample] values holding a
// position V and a frame made of the unit tangent T, normal N, and binormal B.
//
// # Cubic segments as matrices
//
// A cubic segment with control points P0 through P3 is evaluated as
//
//	Q(t) = G · M · (1, t, t², t³)
//
// where G is the geometry matrix, whose columns are the control points, and M
// is a basis matrix (see [BernsteinBasis] and [BSplineBasis]). The derivative
// is computed the same way, using [BernsteinDerivBasis]. Changing the basis of
// a B-spline segment to that of a Bézier segment is a single matrix product:
//
//	G_bez = G_bsp · M_bsp · M_bez⁻¹
//
// # Frames
//
// The classical Frenet frame is undefined wherever the curvature vanishes, as
// it does on straight stretches and at inflection points. Instead, frames are
// propagated along the curve: the normal of a sample is the cross product of
// the previous sample's binormal and the current tangent, and the binormal is
// the cross product of tangent and normal. The first sample uses a seed in
// place of the previous binormal (see [DefaultSeed] and [Evaluator.Seed]).
//
// Because the frame depends on the previous sample, it depends on the sampling
// density and on the seed. Frames of a closed curve do not, in general, line
// up where the curve meets itself.
//
// # Concurrency
//
// Evaluation has no global state. An [Evaluator] may be used from multiple
// goroutines at once, and evaluating the same input twice produces identical
// output.
//
// # Rendering
//
// This package does not draw anything. Package
// honnef.co/go/curve3d/render turns curves into backend-agnostic drawing
// commands and can write them as SVG.
package curve3d
