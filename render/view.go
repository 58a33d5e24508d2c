package render

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"
)

// View is an orthographic projection from 3D space onto the drawing plane.
// The projected plane is y-up.
type View int

const (
	// ViewXY looks down the z axis: x to the right, y up.
	ViewXY View = iota
	// ViewXZ looks along the y axis: x to the right, z up.
	ViewXZ
	// ViewYZ looks along the x axis: y to the right, z up.
	ViewYZ
	// ViewIso is an isometric view: x to the lower right, y to the lower
	// left, z up.
	ViewIso
)

// ErrUnknownView is returned by [ParseView] for unrecognized names.
var ErrUnknownView = errors.New("unknown view")

// ParseView returns the view named s, which is one of "xy", "xz", "yz", and
// "iso".
func ParseView(s string) (View, error) {
	switch s {
	case "xy":
		return ViewXY, nil
	case "xz":
		return ViewXZ, nil
	case "yz":
		return ViewYZ, nil
	case "iso":
		return ViewIso, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownView, s)
	}
}

func (v View) String() string {
	switch v {
	case ViewXY:
		return "xy"
	case ViewXZ:
		return "xz"
	case ViewYZ:
		return "yz"
	case ViewIso:
		return "iso"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// Matrix returns the projection as a matrix whose first two rows produce the
// plane's x and y coordinates and whose third row produces depth.
func (v View) Matrix() math32.Matrix4 {
	var m math32.Matrix4
	switch v {
	case ViewXZ:
		m.Set(
			1, 0, 0, 0,
			0, 0, 1, 0,
			0, -1, 0, 0,
			0, 0, 0, 1,
		)
	case ViewYZ:
		m.Set(
			0, 1, 0, 0,
			0, 0, 1, 0,
			1, 0, 0, 0,
			0, 0, 0, 1,
		)
	case ViewIso:
		c, s := math32.Cos(math32.Pi/6), math32.Sin(math32.Pi/6)
		m.Set(
			c, -c, 0, 0,
			-s, -s, 1, 0,
			1, 1, 1, 0,
			0, 0, 0, 1,
		)
	default:
		m.Set(
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1,
		)
	}
	return m
}

// Project returns the position of p in the drawing plane.
func (v View) Project(p math32.Vector3) Point {
	m := v.Matrix()
	q := math32.Vec4(p.X, p.Y, p.Z, 1).MulMatrix4(&m)
	return Pt(float64(q.X), float64(q.Y))
}
