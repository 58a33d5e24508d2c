package main

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"honnef.co/go/curve3d/render"
)

type renderFlags struct {
	output    string
	view      string
	frameSize float32
	width     float64
	height    float64
	precision int
	watch     bool
}

func newRenderCmd() *cobra.Command {
	var rf renderFlags
	cmd := &cobra.Command{
		Use:   "render SCENE",
		Short: "Render the curves of a scene as SVG",
		Long: `Render draws every curve of the scene as a white polyline on a black
background. Curves with a frame size also get their frames drawn at every
sample: the normal in red, the binormal in green, and the tangent in blue.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := render.ParseView(rf.view)
			if err != nil {
				return err
			}
			r := renderer{
				path:          args[0],
				output:        rf.output,
				frameSize:     rf.frameSize,
				overrideFrame: cmd.Flags().Changed("frame-size"),
				opts: render.SVGOptions{
					Width:        rf.width,
					Height:       rf.height,
					View:         view,
					Background:   color.RGBA{A: 0xff},
					MaxPrecision: rf.precision,
				},
				stdout: cmd.OutOrStdout(),
			}
			if err := r.render(cmd.Context()); err != nil {
				return err
			}
			if rf.watch {
				return r.watch(cmd.Context())
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&rf.output, "output", "o", "-", "output file, - for standard output")
	f.StringVar(&rf.view, "view", "iso", "projection: xy, xz, yz, or iso")
	f.Float32Var(&rf.frameSize, "frame-size", 0, "override the frame size of all curves; 0 hides frames")
	f.Float64Var(&rf.width, "width", 512, "width of the document")
	f.Float64Var(&rf.height, "height", 512, "height of the document")
	f.IntVar(&rf.precision, "precision", 3, "maximum number of decimals; 0 for full precision")
	f.BoolVarP(&rf.watch, "watch", "w", false, "render again whenever the scene file changes")
	return cmd
}

type renderer struct {
	path          string
	output        string
	frameSize     float32
	overrideFrame bool
	opts          render.SVGOptions
	stdout        io.Writer
}

func (r renderer) render(ctx context.Context) error {
	results, err := evaluate(ctx, r.path)
	if err != nil {
		return err
	}
	svg := render.NewSVG(r.opts)
	for _, res := range results {
		fs := res.Curve.FrameSize
		if r.overrideFrame {
			fs = r.frameSize
		}
		if err := render.Draw(svg, res.Samples, fs); err != nil {
			return fmt.Errorf("curve %q: %w", res.Curve.Name, err)
		}
		slog.Debug("drew curve", "name", res.Curve.Name, "samples", len(res.Samples), "frameSize", fs)
	}

	if r.output == "-" {
		_, err := svg.WriteTo(r.stdout)
		return err
	}
	f, err := os.Create(r.output)
	if err != nil {
		return err
	}
	if _, err := svg.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("wrote SVG", "path", r.output)
	return nil
}

// watch renders the scene again every time its file is written to, until ctx
// is canceled.
func (r renderer) watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// Watch the directory, as many editors replace files instead of
	// writing to them.
	if err := w.Add(filepath.Dir(r.path)); err != nil {
		return err
	}
	target := filepath.Clean(r.path)
	slog.Info("watching scene", "path", target)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || (!ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create)) {
				continue
			}
			slog.Info("scene changed", "op", ev.Op)
			// A broken scene must not end the watch.
			errors.Log(r.render(ctx))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
