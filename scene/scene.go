// Package scene loads descriptions of several curves from TOML or YAML files
// and evaluates them.
//
// A scene in TOML looks like this:
//
//	[[curve]]
//	name = "arc"
//	kind = "bezier"
//	steps = 20
//	frame_size = 0.1
//	points = [[0.0, 0.0, 0.0], [1.0, 1.0, 0.0], [2.0, 1.0, 0.0], [3.0, 0.0, 0.0]]
//
//	[[curve]]
//	kind = "circle"
//	radius = 2.0
//
// The YAML form uses the same keys, with "curve" holding a list.
package scene

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"cogentcore.org/core/math32"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
	"honnef.co/go/curve3d"
)

// DefaultSteps is the number of steps used for curves that don't specify
// one.
const DefaultSteps = 20

// Scene is a list of curves.
type Scene struct {
	Curves []Curve `toml:"curve" yaml:"curve"`
}

// Curve describes one curve of a scene.
type Curve struct {
	// Name identifies the curve in error messages and output. It defaults to
	// "curve<index>".
	Name string `toml:"name" yaml:"name"`
	// Kind is one of the names accepted by [curve3d.ParseKind].
	Kind string `toml:"kind" yaml:"kind"`
	// Steps is the sampling density, see [curve3d.Evaluator.Bezier] and
	// [curve3d.EvalCircle]. It defaults to [DefaultSteps].
	Steps int `toml:"steps" yaml:"steps"`
	// Control points of Bézier and B-spline curves.
	Points [][3]float32 `toml:"points" yaml:"points"`
	// Radius of circles.
	Radius float32 `toml:"radius" yaml:"radius"`
	// Length of the axes drawn for each sample's frame. Zero draws no
	// frames.
	FrameSize float32 `toml:"frame_size" yaml:"frame_size"`
}

// Format is the encoding of a scene file.
type Format int

const (
	TOML Format = iota + 1
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ErrUnknownFormat is returned for files whose format cannot be determined.
var ErrUnknownFormat = errors.New("unknown scene format")

// FormatFromPath determines a file's format from its extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Load reads and validates the scene file at path.
func Load(path string) (*Scene, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	s, err := Decode(fd, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads a scene in the given format from r, fills in defaults and
// validates it.
func Decode(r io.Reader, f Format) (*Scene, error) {
	var s Scene
	switch f {
	case TOML:
		if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&s); err != nil {
			return nil, err
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	for i := range s.Curves {
		c := &s.Curves[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("curve%d", i)
		}
		if c.Steps == 0 {
			c.Steps = DefaultSteps
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every curve has a known kind and positive steps, and
// that Bézier and B-spline curves have a valid number of control points.
func (s *Scene) Validate() error {
	var errs []error
	for _, c := range s.Curves {
		if err := c.validate(); err != nil {
			errs = append(errs, fmt.Errorf("curve %q: %w", c.Name, err))
		}
	}
	return errors.Join(errs...)
}

func (c Curve) validate() error {
	kind, err := curve3d.ParseKind(c.Kind)
	if err != nil {
		return err
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", c.Steps)
	}
	n := len(c.Points)
	switch kind {
	case curve3d.BezierKind:
		if n < 4 || (n-1)%3 != 0 {
			return &curve3d.ControlPointCountError{Kind: kind, Count: n}
		}
	case curve3d.BSplineKind:
		if n < 4 {
			return &curve3d.ControlPointCountError{Kind: kind, Count: n}
		}
	case curve3d.CircleKind:
		if n != 0 {
			return errors.New("circles don't have control points")
		}
	}
	return nil
}

// ControlPoints returns the curve's control points as vectors.
func (c Curve) ControlPoints() []math32.Vector3 {
	out := make([]math32.Vector3, len(c.Points))
	for i, p := range c.Points {
		out[i] = math32.Vec3(p[0], p[1], p[2])
	}
	return out
}

// Evaluate samples the curve with ev.
func (c Curve) Evaluate(ev curve3d.Evaluator) (curve3d.Curve, error) {
	kind, err := curve3d.ParseKind(c.Kind)
	if err != nil {
		return nil, err
	}
	switch kind {
	case curve3d.BezierKind:
		return ev.Bezier(c.ControlPoints(), c.Steps)
	case curve3d.BSplineKind:
		return ev.BSpline(c.ControlPoints(), c.Steps)
	case curve3d.CircleKind:
		return ev.Circle(c.Radius, c.Steps), nil
	default:
		panic(fmt.Sprintf("unhandled case %v", kind))
	}
}

// Result is an evaluated curve.
type Result struct {
	Curve   Curve
	Samples curve3d.Curve
}

// Evaluate evaluates all curves of the scene concurrently and returns the
// results in the scene's order. The first error stops the remaining
// evaluations.
func (s *Scene) Evaluate(ctx context.Context, ev curve3d.Evaluator) ([]Result, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	out := make([]Result, len(s.Curves))
	for i, c := range s.Curves {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			samples, err := c.Evaluate(ev)
			if err != nil {
				return fmt.Errorf("curve %q: %w", c.Name, err)
			}
			out[i] = Result{Curve: c, Samples: samples}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
