package curve3d

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cogentcore.org/core/math32"
)

// Kind identifies a type of curve.
type Kind int

const (
	// A piecewise cubic Bézier curve with 3n+1 control points.
	BezierKind Kind = iota + 1
	// A uniform cubic B-spline with at least 4 control points.
	BSplineKind
	// A circle in the XY plane, centered at the origin.
	CircleKind
)

func (k Kind) String() string {
	switch k {
	case BezierKind:
		return "bezier"
	case BSplineKind:
		return "bspline"
	case CircleKind:
		return "circle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ErrUnknownKind is returned by [ParseKind] for names that don't describe a
// kind of curve.
var ErrUnknownKind = errors.New("unknown curve kind")

// ParseKind returns the kind named s. It accepts the names returned by
// [Kind.String], as well as "bez", "bsp", and "circ".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "bezier", "bez":
		return BezierKind, nil
	case "bspline", "bsp":
		return BSplineKind, nil
	case "circle", "circ":
		return CircleKind, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownKind, s)
	}
}

// ErrInvalidControlPointCount is matched by the errors returned when a
// control polygon has the wrong number of points for the requested kind of
// curve.
var ErrInvalidControlPointCount = errors.New("invalid control point count")

// ControlPointCountError describes a control polygon that cannot be
// evaluated.
type ControlPointCountError struct {
	Kind  Kind
	Count int
}

func (err *ControlPointCountError) Error() string {
	switch err.Kind {
	case BezierKind:
		return fmt.Sprintf("bezier curves need 3n+1 control points with n >= 1, got %d", err.Count)
	default:
		return fmt.Sprintf("%s curves need at least 4 control points, got %d", err.Kind, err.Count)
	}
}

func (err *ControlPointCountError) Unwrap() error {
	return ErrInvalidControlPointCount
}

// Evaluator samples curves. The zero value is ready to use and is what
// [EvalBezier], [EvalBSpline], and [EvalCircle] use.
//
// An Evaluator holds no state that changes during evaluation and may be used
// concurrently.
type Evaluator struct {
	// Seed is the binormal assumed before the first sample. The zero vector
	// selects [DefaultSeed].
	Seed math32.Vector3

	// Logger, if not nil, receives a debug-level dump of the inputs and of
	// every computed sample.
	Logger *slog.Logger
}

func (e Evaluator) logInput(kind Kind, points []math32.Vector3, steps int) {
	if !e.debug() {
		return
	}
	e.Logger.Debug("evaluating curve", "kind", kind, "points", len(points), "steps", steps)
	for i, p := range points {
		e.Logger.Debug("control point", "index", i, "point", fmtVec(p))
	}
}

func (e Evaluator) logOutput(kind Kind, c Curve) {
	if !e.debug() {
		return
	}
	for i, s := range c {
		e.Logger.Debug("sample", "kind", kind, "index", i,
			"V", fmtVec(s.V), "T", fmtVec(s.T), "N", fmtVec(s.N), "B", fmtVec(s.B))
	}
}

func (e Evaluator) debug() bool {
	return e.Logger != nil && e.Logger.Enabled(context.Background(), slog.LevelDebug)
}
