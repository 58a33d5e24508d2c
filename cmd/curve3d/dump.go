package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"honnef.co/go/curve3d/scene"
)

func newDumpCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "dump SCENE",
		Short: "Print the samples of every curve of a scene",
		Long: `Dump prints one table per curve, with the position, tangent, normal, and
binormal of every sample.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := evaluate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if output == "-" {
				return dump(cmd.OutOrStdout(), results)
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := dump(f, results); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for standard output")
	return cmd
}

func dump(w io.Writer, results []scene.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		c := res.Curve
		fmt.Fprintf(tw, "# %s: %s, %d control points, %d steps, %d samples\n",
			c.Name, c.Kind, len(c.Points), c.Steps, len(res.Samples))
		fmt.Fprintln(tw, "i\tV\tT\tN\tB")
		for j, s := range res.Samples {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", j, vec(s.V.X, s.V.Y, s.V.Z), vec(s.T.X, s.T.Y, s.T.Z),
				vec(s.N.X, s.N.Y, s.N.Z), vec(s.B.X, s.B.Y, s.B.Z))
		}
	}
	return tw.Flush()
}

func vec(x, y, z float32) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", x, y, z)
}
