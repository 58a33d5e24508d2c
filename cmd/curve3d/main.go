// Command curve3d evaluates the curves of a scene file and renders them as
// SVG, or dumps their samples as text.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"github.com/spf13/cobra"
	"honnef.co/go/curve3d"
	"honnef.co/go/curve3d/scene"
)

var version = "devel"

type globalFlags struct {
	veryVerbose bool
	verbose     bool
	quiet       bool
}

func newRootCmd() *cobra.Command {
	var gf globalFlags
	root := &cobra.Command{
		Use:   "curve3d",
		Short: "Sample 3D curves and their moving frames",
		Long: `curve3d evaluates the Bézier curves, B-splines, and circles described in a
scene file (TOML or YAML) into sampled polylines with a tangent, normal, and
binormal at every sample.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(gf.veryVerbose, gf.verbose, gf.quiet)
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logx.UserLevel})))
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&gf.veryVerbose, "vv", false, "log debug messages, including every evaluated sample")
	pf.BoolVarP(&gf.verbose, "verbose", "v", false, "log informational messages")
	pf.BoolVarP(&gf.quiet, "quiet", "q", false, "only log errors")

	root.AddCommand(newRenderCmd(), newDumpCmd())
	return root
}

// evaluate loads the scene at path and evaluates it, sending the evaluator's
// diagnostics to the default logger.
func evaluate(ctx context.Context, path string) ([]scene.Result, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Info("loaded scene", "path", path, "curves", len(s.Curves))
	return s.Evaluate(ctx, curve3d.Evaluator{Logger: slog.Default()})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if errors.Log(err) != nil {
		os.Exit(1)
	}
}
