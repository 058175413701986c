package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	gio "github.com/depwalk/depwalk/pkg/io"
	"github.com/depwalk/depwalk/pkg/render"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string // output file path; empty means stdout (dot only)
	format     string // dot or svg
	values     bool   // include node values in labels
	edgeLabels bool   // include edge names and weights
}

// newRenderCmd creates the render command for Graphviz output.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph as Graphviz DOT or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatDOT && opts.format != formatSVG {
				return fmt.Errorf("unknown format %q (want %s or %s)", opts.format, formatDOT, formatSVG)
			}
			if opts.format == formatSVG && opts.output == "" {
				return fmt.Errorf("--output is required for %s", formatSVG)
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout for dot)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg")
	cmd.Flags().BoolVar(&opts.values, "values", false, "show node values in labels")
	cmd.Flags().BoolVar(&opts.edgeLabels, "edge-labels", true, "show edge names and weights")

	return cmd
}

func runRender(ctx context.Context, path string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	g, err := gio.Import(path)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	dot := render.ToDOT(g, render.Options{
		ShowValues:     opts.values,
		ShowEdgeLabels: opts.edgeLabels,
	})

	if opts.format == formatDOT {
		if opts.output == "" {
			fmt.Print(dot)
			return nil
		}
		if err := os.WriteFile(opts.output, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.output, err)
		}
		prog.done("Wrote " + opts.output)
		return nil
	}

	svg, err := render.SVG(ctx, dot)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	prog.done("Wrote " + opts.output)
	return nil
}
