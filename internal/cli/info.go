package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	gio "github.com/depwalk/depwalk/pkg/io"
)

// newInfoCmd creates the info command for inspecting a graph file.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Show node and edge statistics for a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.Context(), args[0])
		},
	}
}

func runInfo(ctx context.Context, path string) error {
	logger := loggerFromContext(ctx)

	g, err := gio.Import(path)
	if err != nil {
		return err
	}
	logger.Debug("graph loaded", "path", path)

	fmt.Println(headerStyle.Render(path))
	fmt.Printf("nodes: %d  edges: %d\n", g.NodeCount(), g.EdgeCount())
	fmt.Printf("sources: %s\n", joinOrNone(g.Sources()))
	fmt.Printf("sinks: %s\n", joinOrNone(g.Sinks()))

	tbl := table.New().Headers("NODE", "VALUE", "IN", "OUT")
	for _, id := range g.Nodes() {
		v, _ := g.NodeValue(id)
		tbl.Row(id, strconv.Itoa(v), strconv.Itoa(g.InDegree(id)), strconv.Itoa(g.OutDegree(id)))
	}
	fmt.Println(tbl.Render())
	return nil
}

func joinOrNone(ids []string) string {
	if len(ids) == 0 {
		return dimStyle.Render("(none)")
	}
	return strings.Join(ids, ", ")
}
