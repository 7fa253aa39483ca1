package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mhertel/knotwork/pkg/graph/traverse"
)

// =============================================================================
// walkModel - Interactive traversal step-through
// =============================================================================

// walkModel is the bubbletea model for the walk explorer. It replays a
// completed traversal one discovery at a time: the cursor selects the
// current step and everything after it stays hidden, so the frontier
// growth is visible step by step.
type walkModel struct {
	algo   string
	visit  *traverse.Visit
	labels []string

	cursor int
	height int
	offset int
}

// newWalkModel creates a walk explorer positioned at the first step.
func newWalkModel(algo string, v *traverse.Visit, labels []string) walkModel {
	return walkModel{
		algo:   algo,
		visit:  v,
		labels: labels,
		height: 15,
	}
}

func (m walkModel) Init() tea.Cmd {
	return nil
}

func (m walkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k", "left", "h":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j", "right", "l":
			if m.cursor < len(m.visit.Order)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "g", "home":
			m.cursor, m.offset = 0, 0
		case "G", "end":
			m.cursor = len(m.visit.Order) - 1
			if m.cursor >= m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m walkModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("%s walk - step %d of %d", strings.ToUpper(m.algo), m.cursor+1, len(m.visit.Order))
	b.WriteString(styleHeader.Render(title) + "\n\n")

	end := m.offset + m.height
	if end > m.cursor+1 {
		end = m.cursor + 1
	}
	for i := m.offset; i < end; i++ {
		u := m.visit.Order[i]
		parent := "-"
		if p := m.visit.Parent[u]; p != traverse.None {
			parent = nodeName(m.labels, p)
		}
		line := fmt.Sprintf("%3d  %-16s depth %-3d via %s", i, nodeName(m.labels, u), m.visit.Depth[u], parent)
		if i == m.cursor {
			b.WriteString(styleCursor.Render("> "+line) + "\n")
		} else {
			b.WriteString(StyleDim.Render("  "+line) + "\n")
		}
	}

	b.WriteString("\n" + StyleDim.Render("j/k or arrows: step  g/G: ends  q: quit") + "\n")
	return b.String()
}
