package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/depwalk/depwalk/pkg/digraph"
	gio "github.com/depwalk/depwalk/pkg/io"
	"github.com/depwalk/depwalk/pkg/observability"
)

// newSortCmd creates the sort command for topological ordering.
// The command fails if the graph contains a directed cycle.
func newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort [file]",
		Short: "Print a topological ordering of the graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd.Context(), args[0])
		},
	}
}

func runSort(ctx context.Context, path string) error {
	logger := loggerFromContext(ctx)

	g, err := gio.Import(path)
	if err != nil {
		return err
	}
	logger.Debug("graph loaded", "path", path, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	prog := newProgress(logger)
	began := time.Now()
	observability.Sort().OnSortStart(ctx, g.NodeCount())
	order, err := digraph.TopSort(g)
	observability.Sort().OnSortComplete(ctx, g.NodeCount(), time.Since(began), err)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Println(headerStyle.Render("topological order:"))
	fmt.Print(formatOrder(order))
	prog.done(fmt.Sprintf("Sorted %d nodes", len(order)))
	return nil
}
