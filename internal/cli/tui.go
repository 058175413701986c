package cli

import (
	"fmt"
	"iter"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// walkModel is the bubbletea model for the interactive walk. It holds the
// pull side of the lazy traversal sequence and fetches exactly one node per
// keypress, so the graph is explored no further than the user has stepped.
type walkModel struct {
	algo    string
	start   string
	next    func() (string, bool)
	stop    func()
	visited []string
	done    bool
}

// newWalkModel converts the push-style sequence into a pull-style iterator
// the update loop can drive.
func newWalkModel(algo, start string, seq iter.Seq[string]) *walkModel {
	next, stop := iter.Pull(seq)
	return &walkModel{algo: algo, start: start, next: next, stop: stop}
}

func (m *walkModel) Init() tea.Cmd {
	return nil
}

func (m *walkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.done {
		return m, tea.Quit
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.stop()
		return m, tea.Quit
	case "enter", " ", "n", "right":
		id, ok := m.next()
		if !ok {
			m.done = true
			m.stop()
			return m, nil
		}
		m.visited = append(m.visited, id)
	}
	return m, nil
}

func (m *walkModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s from %s", m.algo, m.start)))
	b.WriteByte('\n')
	b.WriteString(formatOrder(m.visited))

	switch {
	case m.done:
		b.WriteString(dimStyle.Render(fmt.Sprintf("walk finished: %d nodes - any key to exit", len(m.visited))))
	default:
		b.WriteString(dimStyle.Render("enter/space: next node - q: quit"))
	}
	b.WriteByte('\n')
	return b.String()
}

// runWalkTUI steps through the traversal interactively. The sequence is
// consumed lazily; quitting early abandons the rest of the walk.
func runWalkTUI(algo, start string, seq iter.Seq[string]) error {
	model := newWalkModel(algo, start, seq)
	_, err := tea.NewProgram(model).Run()
	return err
}
