package cli

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/spf13/cobra"

	"github.com/depwalk/depwalk/pkg/digraph"
	gio "github.com/depwalk/depwalk/pkg/io"
	"github.com/depwalk/depwalk/pkg/observability"
)

const (
	algoDFS = "dfs"
	algoBFS = "bfs"
)

// walkOpts holds the command-line flags for the walk command.
type walkOpts struct {
	start       string // traversal start node
	algo        string // dfs or bfs
	interactive bool   // step through the walk in a TUI
}

// newWalkCmd creates the walk command for traversing a graph file.
// The traversal excludes the start node and visits each reachable node
// once; --interactive pulls one node per keypress from the lazy sequence.
func newWalkCmd() *cobra.Command {
	opts := walkOpts{algo: algoBFS}

	cmd := &cobra.Command{
		Use:   "walk [file]",
		Short: "Traverse a graph depth- or breadth-first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.algo != algoDFS && opts.algo != algoBFS {
				return fmt.Errorf("unknown algorithm %q (want %s or %s)", opts.algo, algoDFS, algoBFS)
			}
			return runWalk(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.start, "start", "s", "", "start node (required)")
	cmd.Flags().StringVarP(&opts.algo, "algo", "a", opts.algo, "traversal algorithm: bfs (default), dfs")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "step through the walk one keypress at a time")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func runWalk(ctx context.Context, path string, opts *walkOpts) error {
	logger := loggerFromContext(ctx)

	g, err := gio.Import(path)
	if err != nil {
		return err
	}
	logger.Debug("graph loaded", "path", path, "nodes", g.NodeCount(), "edges", g.EdgeCount())
	if !g.HasNode(opts.start) {
		logger.Warn("start node not in graph; traversal is empty", "start", opts.start)
	}

	seq := newWalk(g, opts.algo, opts.start)

	if opts.interactive {
		return runWalkTUI(opts.algo, opts.start, seq)
	}

	prog := newProgress(logger)
	began := time.Now()
	observability.Walk().OnWalkStart(ctx, opts.algo, opts.start)

	var order []string
	for id := range seq {
		order = append(order, id)
	}
	observability.Walk().OnWalkComplete(ctx, opts.algo, opts.start, len(order), time.Since(began))

	fmt.Println(headerStyle.Render(fmt.Sprintf("%s from %s:", opts.algo, opts.start)))
	fmt.Print(formatOrder(order))
	prog.done(fmt.Sprintf("Visited %d nodes", len(order)))
	return nil
}

// newWalk selects the traversal sequence for the given algorithm.
func newWalk(g digraph.Walkable, algo, start string) iter.Seq[string] {
	if algo == algoDFS {
		return digraph.DFS(g, start)
	}
	return digraph.BFS(g, start)
}
