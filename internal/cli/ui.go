package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared color palette for command output.
var (
	colorCyan  = lipgloss.Color("86")
	colorWhite = lipgloss.Color("252")
	colorDim   = lipgloss.Color("241")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	nodeStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	dimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// formatOrder renders a node sequence as numbered lines:
//
//	1. shirt
//	2. pants
func formatOrder(nodes []string) string {
	var b strings.Builder
	for i, id := range nodes {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%3d. ", i+1)))
		b.WriteString(nodeStyle.Render(id))
		b.WriteByte('\n')
	}
	return b.String()
}
