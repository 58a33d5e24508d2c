// Package render draws sampled curves. It turns a [curve3d.Curve] into a
// sequence of backend-agnostic commands (see [Commands]) and dispatches them
// to a [Backend] (see [Draw]). [SVG] is a backend that writes SVG documents.
package render

import (
	"fmt"
	"image/color"
	"iter"

	"cogentcore.org/core/math32"
	"honnef.co/go/curve3d"
)

type CommandKind int

const (
	// Draw a connected line through all points.
	PolylineKind CommandKind = iota + 1
	// Draw the three axes of a sample's frame.
	TriadKind
)

func (k CommandKind) String() string {
	switch k {
	case PolylineKind:
		return "Polyline"
	case TriadKind:
		return "Triad"
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// Axis colors used for frames.
var (
	CurveColor    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	NormalColor   = color.RGBA{0xff, 0, 0, 0xff}
	BinormalColor = color.RGBA{0, 0xff, 0, 0xff}
	TangentColor  = color.RGBA{0, 0, 0xff, 0xff}
)

// Command is a single drawing command.
type Command struct {
	Kind CommandKind
	// Vertices of a polyline, in order. The slice is shared with other
	// commands and must not be modified.
	Points []math32.Vector3
	// Transform of a triad. It maps the local x, y, and z axes to the sample's
	// normal, binormal, and tangent, and the origin to the sample's position.
	Frame math32.Matrix4
	// Length of a triad's axes.
	Size float32
}

// Segment is a straight line in 3D space.
type Segment struct {
	From, To math32.Vector3
	Color    color.RGBA
}

// Axes returns the three axes of a triad command, in the order normal,
// binormal, tangent.
func (cmd Command) Axes() [3]Segment {
	at := func(x, y, z float32) math32.Vector3 {
		v := math32.Vec4(x*cmd.Size, y*cmd.Size, z*cmd.Size, 1).MulMatrix4(&cmd.Frame)
		return math32.Vec3(v.X, v.Y, v.Z)
	}
	o := at(0, 0, 0)
	return [3]Segment{
		{o, at(1, 0, 0), NormalColor},
		{o, at(0, 1, 0), BinormalColor},
		{o, at(0, 0, 1), TangentColor},
	}
}

// Commands returns the commands that draw c: a polyline through all
// positions, followed by one triad per sample if frameSize is not zero.
//
// An empty curve produces no commands.
func Commands(c curve3d.Curve, frameSize float32) iter.Seq[Command] {
	return func(yield func(Command) bool) {
		if len(c) == 0 {
			return
		}
		pts := make([]math32.Vector3, len(c))
		for i, s := range c {
			pts[i] = s.V
		}
		if !yield(Command{Kind: PolylineKind, Points: pts}) {
			return
		}
		if frameSize == 0 {
			return
		}
		for _, s := range c {
			if !yield(Command{Kind: TriadKind, Frame: s.Frame(), Size: frameSize}) {
				return
			}
		}
	}
}

// Backend is implemented by the targets of [Draw].
type Backend interface {
	// Polyline draws a connected line through pts.
	Polyline(pts []math32.Vector3, c color.RGBA) error
	// Line draws a straight line.
	Line(from, to math32.Vector3, c color.RGBA) error
}

// Draw draws c on b. See [Commands] for what is drawn.
func Draw(b Backend, c curve3d.Curve, frameSize float32) error {
	return DrawCommands(b, Commands(c, frameSize))
}

// DrawCommands dispatches each command to b, stopping at the first error.
func DrawCommands(b Backend, cmds iter.Seq[Command]) error {
	for cmd := range cmds {
		switch cmd.Kind {
		case PolylineKind:
			if err := b.Polyline(cmd.Points, CurveColor); err != nil {
				return err
			}
		case TriadKind:
			for _, ax := range cmd.Axes() {
				if err := b.Line(ax.From, ax.To, ax.Color); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("unhandled command %v", cmd.Kind)
		}
	}
	return nil
}
