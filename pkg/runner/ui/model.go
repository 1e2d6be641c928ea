package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/gridstate/pkg/layout"
	"tableflip.dev/gridstate/pkg/state"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	pinnedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	cellStyle     = lipgloss.NewStyle()
	statusStyle   = lipgloss.NewStyle().Faint(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

type model struct {
	mgr      *state.Manager
	contexts []Context
	keys     keyMap
	idx      int
	cursor   int
	status   string
	width    int
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) active() Context {
	return m.contexts[m.idx]
}

func (m model) activeKey() layout.Key {
	c := m.active()
	return layout.NewKey(c.Source, c.Table)
}

func (m model) columns() []string {
	return m.mgr.DisplayColumns()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTable):
			return m.switchContext(1), nil
		case key.Matches(msg, m.keys.PrevTable):
			return m.switchContext(-1), nil

		case key.Matches(msg, m.keys.Left):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Right):
			if m.cursor < len(m.columns())-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Pin):
			return m.edit("pin", func(col string) error {
				return m.mgr.TogglePin(col)
			}), nil
		case key.Matches(msg, m.keys.Hide):
			return m.edit("hide", func(col string) error {
				return m.mgr.ToggleVisibility(col)
			}), nil

		case key.Matches(msg, m.keys.MoveLeft):
			return m.moveColumn(-1), nil
		case key.Matches(msg, m.keys.MoveRight):
			return m.moveColumn(1), nil

		case key.Matches(msg, m.keys.Refresh):
			if err := m.mgr.HardRefresh(context.Background()); err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.cursor = 0
			m.status = fmt.Sprintf("hard refresh: %s reloaded from initial configuration", m.activeKey())
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			if err := m.mgr.ClearTableCache(m.activeKey()); err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.cursor = 0
			m.status = fmt.Sprintf("cleared cached layout for %s", m.activeKey())
			return m, nil
		}
	}
	return m, nil
}

func (m model) switchContext(delta int) model {
	m.idx = (m.idx + delta + len(m.contexts)) % len(m.contexts)
	if err := m.mgr.SetActiveContext(m.activeKey()); err != nil {
		m.status = err.Error()
		return m
	}
	m.cursor = 0
	m.status = fmt.Sprintf("switched to %s", m.activeKey())
	return m
}

func (m model) edit(verb string, fn func(string) error) model {
	cols := m.columns()
	if len(cols) == 0 {
		return m
	}
	if m.cursor >= len(cols) {
		m.cursor = len(cols) - 1
	}
	col := cols[m.cursor]
	if err := fn(col); err != nil {
		m.status = err.Error()
		return m
	}
	if after := m.columns(); m.cursor >= len(after) && len(after) > 0 {
		m.cursor = len(after) - 1
	}
	m.status = fmt.Sprintf("%s %s", verb, col)
	return m
}

// moveColumn nudges the selected column one slot within the unpinned
// group. The resulting full permutation goes through SetColumnOrder,
// the same path a drag reorder takes.
func (m model) moveColumn(delta int) model {
	cols := m.columns()
	if len(cols) == 0 || m.cursor >= len(cols) {
		return m
	}
	target := m.cursor + delta
	if target < 0 || target >= len(cols) {
		return m
	}

	next := make([]string, len(cols))
	copy(next, cols)
	next[m.cursor], next[target] = next[target], next[m.cursor]

	if err := m.mgr.SetColumnOrder(next); err != nil {
		m.status = err.Error()
		return m
	}
	m.cursor = target
	m.status = fmt.Sprintf("moved %s", next[target])
	return m
}

func (m model) View() string {
	c := m.active()
	buf := m.mgr.Buffer()
	cols := m.columns()

	var b strings.Builder

	title := fmt.Sprintf("%s / %s", c.Source, c.Table)
	if m.mgr.SessionRestored() {
		title += "  (restored session)"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if len(cols) == 0 {
		b.WriteString(statusStyle.Render("no visible columns"))
		b.WriteString("\n")
	} else {
		widths := columnWidths(c, cols)

		var header strings.Builder
		for i, col := range cols {
			label := pad(col, widths[i])
			switch {
			case i == m.cursor:
				label = selectedStyle.Render(label)
			case buf.IsPinned(col):
				label = pinnedStyle.Render(label)
			default:
				label = headerStyle.Render(label)
			}
			header.WriteString(label)
			header.WriteString("  ")
		}
		b.WriteString(header.String())
		b.WriteString("\n")

		for _, row := range c.Rows {
			for i, col := range cols {
				b.WriteString(cellStyle.Render(pad(row[col], widths[i])))
				b.WriteString("  ")
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: switch table  ←/→: select  p: pin  h: hide  [/]: move  c: clear cache  R: hard refresh  q: quit"))
	return b.String()
}

func columnWidths(c Context, cols []string) []int {
	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = lipgloss.Width(col)
		for _, row := range c.Rows {
			if n := lipgloss.Width(row[col]); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
