package curve3d

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalBezierSingleSegment(t *testing.T) {
	p := pts(
		[3]float32{0, 0, 0},
		[3]float32{1, 2, 0},
		[3]float32{3, 2, 1},
		[3]float32{4, 0, 1},
	)
	const steps = 10
	c, err := EvalBezier(p, steps)
	require.NoError(t, err)
	require.Len(t, c, steps)

	diff(t, p[0], c[0].V)
	diff(t, p[1].Sub(p[0]).Normal(), c[0].T, approx)

	for k, s := range c {
		tt := float32(k) / steps
		diff(t, bernsteinEval(p[0], p[1], p[2], p[3], tt), s.V, approx)
	}
	checkFrames(t, c)
}

func TestEvalBezierTangentIsDerivative(t *testing.T) {
	// y = x²
	p := pts(
		[3]float32{0, 0, 0},
		[3]float32{1.0 / 3.0, 0, 0},
		[3]float32{2.0 / 3.0, 1.0 / 3.0, 0},
		[3]float32{1, 1, 0},
	)
	g := geometry(p[0], p[1], p[2], p[3])
	const n = 10
	for i := range n + 1 {
		tt := float32(i) / n
		diff(t, math32.Vec3(1, 2*tt, 0), evalBasis(&g, &bernsteinDeriv, tt), approx)
		diff(t, math32.Vec3(tt, tt*tt, 0), evalBasis(&g, &bernstein, tt), approx)
	}

	c, err := EvalBezier(p, n)
	require.NoError(t, err)
	for i, s := range c {
		tt := float32(i) / n
		diff(t, math32.Vec3(1, 2*tt, 0).Normal(), s.T, approx)
	}
}

func TestEvalBezierMultiSegment(t *testing.T) {
	p := pts(
		[3]float32{0, 0, 0},
		[3]float32{1, 1, 0},
		[3]float32{2, 1, 0},
		[3]float32{3, 0, 0},
		[3]float32{4, -1, 0},
		[3]float32{5, -1, 1},
		[3]float32{6, 0, 2},
	)
	const steps = 8
	c, err := EvalBezier(p, steps)
	require.NoError(t, err)
	require.Len(t, c, 2*steps)

	diff(t, p[0], c[0].V)
	diff(t, p[3], c[steps].V, approx)
	for k := range steps {
		tt := float32(k) / steps
		diff(t, bernsteinEval(p[3], p[4], p[5], p[6], tt), c[steps+k].V, approx)
	}
	checkFrames(t, c)

	// The segments meet with matching tangents, so the frame must not jump at
	// the boundary.
	last, first := c[steps-1], c[steps]
	if d := last.B.Dot(first.B); d < 0.9 {
		t.Errorf("binormal jumps at segment boundary: B·B' = %g", d)
	}
}

func TestEvalBezierInflection(t *testing.T) {
	// An S-curve. The Frenet frame flips at the inflection point; the
	// propagated frame must not.
	p := pts(
		[3]float32{0, 0, 0},
		[3]float32{1, 1, 0},
		[3]float32{2, -1, 0},
		[3]float32{3, 0, 0},
	)
	c, err := EvalBezier(p, 50)
	require.NoError(t, err)
	checkFrames(t, c)
	for i := 1; i < len(c); i++ {
		if d := c[i-1].N.Dot(c[i].N); d < 0.9 {
			t.Fatalf("normal flips between samples %d and %d: N·N' = %g", i-1, i, d)
		}
	}
}

func TestEvalBezierInvalidCount(t *testing.T) {
	p := make([]math32.Vector3, 11)
	for _, n := range []int{0, 1, 2, 3, 5, 6, 8, 9, 11} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			c, err := EvalBezier(p[:n], 10)
			assert.Nil(t, c)
			require.ErrorIs(t, err, ErrInvalidControlPointCount)

			var cerr *ControlPointCountError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, BezierKind, cerr.Kind)
			assert.Equal(t, n, cerr.Count)
		})
	}
	for _, n := range []int{4, 7, 10} {
		_, err := EvalBezier(p[:n], 10)
		assert.NoError(t, err, "%d points", n)
	}
}

func TestEvalBezierZeroSteps(t *testing.T) {
	p := pts(
		[3]float32{0, 0, 0},
		[3]float32{1, 0, 0},
		[3]float32{1, 1, 0},
		[3]float32{0, 1, 0},
	)
	for _, steps := range []int{0, -1} {
		c, err := EvalBezier(p, steps)
		require.NoError(t, err)
		assert.Empty(t, c)
	}
}

func TestEvalBezierDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		points []math32.Vector3
	}{
		{
			"coincident points",
			pts(
				[3]float32{1, 2, 3},
				[3]float32{1, 2, 3},
				[3]float32{1, 2, 3},
				[3]float32{1, 2, 3},
			),
		},
		{
			"tangent parallel to seed",
			pts(
				[3]float32{0, 0, 0},
				[3]float32{1, 1, 1},
				[3]float32{2, 2, 2},
				[3]float32{3, 3, 3},
			),
		},
		{
			"coincident first points",
			pts(
				[3]float32{0, 0, 0},
				[3]float32{0, 0, 0},
				[3]float32{1, 0, 0},
				[3]float32{1, 1, 0},
			),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := EvalBezier(tt.points, 16)
			require.NoError(t, err)
			require.Len(t, c, 16)
			checkFrames(t, c)
		})
	}
}

func TestEvalBezierIdempotent(t *testing.T) {
	p := pts(
		[3]float32{0, 0, 0},
		[3]float32{1, 3, -1},
		[3]float32{2, -2, 4},
		[3]float32{5, 1, 0},
		[3]float32{6, 2, 2},
		[3]float32{7, 0, 1},
		[3]float32{9, 1, 1},
	)
	c1, err := EvalBezier(p, 33)
	require.NoError(t, err)
	c2, err := EvalBezier(p, 33)
	require.NoError(t, err)
	// Exact comparison.
	diff(t, c1, c2)
}

func TestEvaluatorSeed(t *testing.T) {
	p := pts(
		[3]float32{0, 0, 0},
		[3]float32{1, 0, 0},
		[3]float32{2, 0, 0},
		[3]float32{3, 0, 0},
	)
	def, err := EvalBezier(p, 4)
	require.NoError(t, err)
	up, err := Evaluator{Seed: math32.Vec3(0, 0, 1)}.Bezier(p, 4)
	require.NoError(t, err)

	for i := range def {
		diff(t, def[i].V, up[i].V)
		diff(t, def[i].T, up[i].T)
		// Seed +Z along +X gives N = Z × X = +Y and B = X × Y = +Z.
		diff(t, math32.Vec3(0, 1, 0), up[i].N, approx)
		diff(t, math32.Vec3(0, 0, 1), up[i].B, approx)
	}
	// The default seed is (1, 1, 1), giving N = (0, 1, -1)/√2.
	diff(t, math32.Vec3(0, 1, -1).Normal(), def[0].N, approx)
	checkFrames(t, up)
}

func TestEvaluatorLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := pts(
		[3]float32{0, 0, 0},
		[3]float32{1, 1, 0},
		[3]float32{2, 1, 0},
		[3]float32{3, 0, 0},
	)
	logged, err := Evaluator{Logger: logger}.Bezier(p, 5)
	require.NoError(t, err)
	plain, err := EvalBezier(p, 5)
	require.NoError(t, err)
	diff(t, plain, logged)

	out := buf.String()
	assert.Contains(t, out, "evaluating curve")
	assert.Contains(t, out, "kind=bezier")
	assert.Equal(t, 5, bytes.Count(buf.Bytes(), []byte("msg=sample")))

	// Nothing is logged above debug level.
	buf.Reset()
	quiet := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	_, err = Evaluator{Logger: quiet}.Bezier(p, 5)
	require.NoError(t, err)
	assert.Zero(t, buf.Len())
}
