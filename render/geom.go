package render

import (
	"fmt"
	"math"
)

// Point is a point in the 2D drawing plane.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// Affine describes a 2D affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// FlipY is a transform that is flipped on the y-axis. Useful for converting
// between y-up and y-down spaces.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation by (x, y).
func Translate(x, y float64) Affine {
	return Affine{1, 0, 0, 1, x, y}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale creates aff followed by a scale of (x, y).
//
// Equivalent to "Scale(x, y) * aff"
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate creates aff followed by a translation of (x, y).
//
// Equivalent to "Translate(x, y) * aff"
func (aff Affine) ThenTranslate(x, y float64) Affine {
	aff.N4 += x
	aff.N5 += y
	return aff
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRectFromPoints returns the smallest rectangle containing both points.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// UnionPoint returns the smallest rectangle containing r and pt.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Fit returns the transform that maps r into a width×height viewport with
// the given margin on every side, preserving the aspect ratio, centering the
// content, and turning y-up into the y-down space of the viewport.
func (r Rect) Fit(width, height, margin float64) Affine {
	w, h := r.Width(), r.Height()
	availW, availH := width-2*margin, height-2*margin
	var s float64
	switch {
	case w <= 0 && h <= 0:
		s = 1
	case w <= 0:
		s = availH / h
	case h <= 0:
		s = availW / w
	default:
		s = min(availW/w, availH/h)
	}
	cx, cy := (r.X0+r.X1)/2, (r.Y0+r.Y1)/2
	return FlipY.Mul(Translate(-cx, -cy)).
		ThenScale(s, s).
		ThenTranslate(width/2, height/2)
}
