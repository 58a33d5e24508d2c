package curve3d

import "cogentcore.org/core/math32"

// EvalCircle samples a circle of the given radius in the XY plane, centered at
// the origin, traversed counterclockwise when viewed from +Z.
//
// The result has steps+1 samples at angles 2π·i/steps, so the last sample
// repeats the first. The frame is exact: the tangent is the first derivative,
// the normal points towards the center and the binormal is +Z. A circle is
// therefore useful as a reference to compare the general evaluators against.
//
// If steps is less than one, the result is a single sample at angle 0.
func EvalCircle(radius float32, steps int) Curve {
	steps = max(steps, 0)
	out := make(Curve, steps+1)
	for i := range out {
		var th float32
		if steps > 0 {
			th = 2 * math32.Pi * float32(i) / float32(steps)
		}
		sin, cos := math32.Sin(th), math32.Cos(th)
		out[i] = CurveSample{
			V: math32.Vec3(cos, sin, 0).MulScalar(radius),
			T: math32.Vec3(-sin, cos, 0),
			N: math32.Vec3(-cos, -sin, 0),
			B: math32.Vec3(0, 0, 1),
		}
	}
	return out
}

// Circle samples a circle like [EvalCircle] and passes the result to the
// evaluator's logger. It never fails.
func (e Evaluator) Circle(radius float32, steps int) Curve {
	e.logInput(CircleKind, nil, steps)
	out := EvalCircle(radius, steps)
	e.logOutput(CircleKind, out)
	return out
}
