package curve3d

import "cogentcore.org/core/math32"

// The basis matrices map the monomial vector (1, t, t², t³) to the weights of
// the four control points of a cubic segment, so that a segment with geometry
// matrix G evaluates to Q(t) = G · M · (1, t, t², t³).
//
// Matrix4.Set takes its arguments in row-major order.
var (
	bernstein      math32.Matrix4
	bernsteinDeriv math32.Matrix4
	bspline        math32.Matrix4

	// bsplineToBezier maps a B-spline geometry matrix to the geometry matrix
	// of the Bézier segment describing the same curve:
	// G_bez = G_bsp · M_bsp · M_bez⁻¹.
	bsplineToBezier math32.Matrix4
)

func init() {
	bernstein.Set(
		1, -3, 3, -1,
		0, 3, -6, 3,
		0, 0, 3, -3,
		0, 0, 0, 1,
	)
	bernsteinDeriv.Set(
		-3, 6, -3, 0,
		3, -12, 9, 0,
		0, 6, -9, 0,
		0, 0, 3, 0,
	)
	const s = 1.0 / 6.0
	bspline.Set(
		1*s, -3*s, 3*s, -1*s,
		4*s, 0, -6*s, 3*s,
		1*s, 3*s, 3*s, -3*s,
		0, 0, 0, 1*s,
	)

	// The Bernstein matrix is upper triangular with a non-zero diagonal, so
	// the inversion cannot fail.
	var inv math32.Matrix4
	inv.SetInverse(&bernstein)
	bsplineToBezier.MulMatrices(&bspline, &inv)
}

// BernsteinBasis returns the cubic Bézier basis matrix.
func BernsteinBasis() math32.Matrix4 { return bernstein }

// BernsteinDerivBasis returns the derivative of [BernsteinBasis] with respect
// to t. Evaluating it yields dQ/dt.
func BernsteinDerivBasis() math32.Matrix4 { return bernsteinDeriv }

// BSplineBasis returns the uniform cubic B-spline basis matrix.
func BSplineBasis() math32.Matrix4 { return bspline }

// monomials returns (1, t, t², t³).
func monomials(t float32) math32.Vector4 {
	return math32.Vec4(1, t, t*t, t*t*t)
}

// geometry builds the geometry matrix of a cubic segment. Its columns are the
// four control points, with a homogeneous row of ones.
func geometry(p0, p1, p2, p3 math32.Vector3) math32.Matrix4 {
	var g math32.Matrix4
	g.Set(
		p0.X, p1.X, p2.X, p3.X,
		p0.Y, p1.Y, p2.Y, p3.Y,
		p0.Z, p1.Z, p2.Z, p3.Z,
		1, 1, 1, 1,
	)
	return g
}

// column returns the i'th column of m as a point.
func column(m *math32.Matrix4, i int) math32.Vector3 {
	// Matrix4 is stored in column-major order.
	return math32.Vec3(m[i*4], m[i*4+1], m[i*4+2])
}

// evalBasis evaluates G · M · (1, t, t², t³) and drops the homogeneous
// coordinate.
func evalBasis(g, basis *math32.Matrix4, t float32) math32.Vector3 {
	w := monomials(t).MulMatrix4(basis)
	v := w.MulMatrix4(g)
	return math32.Vec3(v.X, v.Y, v.Z)
}
