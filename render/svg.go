package render

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"
	"honnef.co/go/curve3d"
)

// SVGOptions specifies optional settings for [SVG].
type SVGOptions struct {
	// Size of the document. Zero values default to 512.
	Width, Height float64
	// Space left free on every side of the drawing. Negative values mean no
	// margin, zero defaults to 16.
	Margin float64
	// Projection onto the drawing plane.
	View View
	// Width of all lines. Zero defaults to 1.
	StrokeWidth float64
	// If not fully transparent, the document is filled with this color first.
	Background color.RGBA
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

func (opts SVGOptions) withDefaults() SVGOptions {
	if opts.Width == 0 {
		opts.Width = 512
	}
	if opts.Height == 0 {
		opts.Height = 512
	}
	switch {
	case opts.Margin == 0:
		opts.Margin = 16
	case opts.Margin < 0:
		opts.Margin = 0
	}
	if opts.StrokeWidth == 0 {
		opts.StrokeWidth = 1
	}
	return opts
}

type svgPolyline struct {
	pts   []Point
	color color.RGBA
}

// SVG is a [Backend] that collects projected lines and writes them as an SVG
// document. The drawing is scaled to fit the document.
//
// The zero value is not usable; use [NewSVG].
type SVG struct {
	opts  SVGOptions
	lines []svgPolyline
	bbox  Rect
}

// NewSVG returns an empty SVG backend.
func NewSVG(opts SVGOptions) *SVG {
	return &SVG{opts: opts.withDefaults()}
}

// Polyline implements [Backend].
func (s *SVG) Polyline(pts []math32.Vector3, c color.RGBA) error {
	if len(pts) == 0 {
		return nil
	}
	out := make([]Point, len(pts))
	for i, p := range pts {
		pt := s.opts.View.Project(p)
		if pt.IsNaN() {
			return fmt.Errorf("render: vertex %d is NaN", i)
		}
		if len(s.lines) == 0 && i == 0 {
			s.bbox = NewRectFromPoints(pt, pt)
		} else {
			s.bbox = s.bbox.UnionPoint(pt)
		}
		out[i] = pt
	}
	s.lines = append(s.lines, svgPolyline{out, c})
	return nil
}

// Line implements [Backend].
func (s *SVG) Line(from, to math32.Vector3, c color.RGBA) error {
	return s.Polyline([]math32.Vector3{from, to}, c)
}

// WriteTo writes the SVG document to w.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	var err error
	writef := func(f string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(cw, f, v...)
	}

	opts := s.opts
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		out := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		if strings.Contains(out, ".") {
			out = strings.TrimRight(strings.TrimRight(out, "0"), ".")
		}
		return out
	}

	writef(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %[1]s %[2]s">`+"\n",
		format(opts.Width), format(opts.Height))
	if opts.Background.A != 0 {
		writef(`<rect width="100%%" height="100%%" fill="%s" />`+"\n", hex(opts.Background))
	}
	aff := s.bbox.Fit(opts.Width, opts.Height, opts.Margin)
	for _, l := range s.lines {
		writef(`<path d="`)
		for i, pt := range l.pts {
			pt = pt.Transform(aff)
			cmd := "L"
			if i == 0 {
				cmd = "M"
			} else {
				writef(" ")
			}
			writef("%s%s,%s", cmd, format(pt.X), format(pt.Y))
		}
		writef(`" fill="none" stroke="%s" stroke-width="%s" />`+"\n", hex(l.color), format(opts.StrokeWidth))
	}
	writef("</svg>\n")
	return cw.n, err
}

// WriteSVG draws c with the given frame size and writes it as an SVG
// document to w.
func WriteSVG(w io.Writer, c curve3d.Curve, frameSize float32, opts SVGOptions) error {
	s := NewSVG(opts)
	if err := Draw(s, c, frameSize); err != nil {
		return err
	}
	_, err := s.WriteTo(w)
	return err
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(b []byte) (int, error) {
	n, err := cw.w.Write(b)
	cw.n += int64(n)
	return n, err
}
