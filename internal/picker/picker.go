// Package picker implements a small Bubble Tea checklist used when
// `pmx remove` is called without package names: the user picks which of
// the project's declared dependencies to uninstall.
package picker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user aborts the picker.
var ErrCancelled = errors.New("selection cancelled")

// Item is one selectable entry.
type Item struct {
	Name   string // package name
	Detail string // version range, dev marker, anything descriptive
}

// Run shows the checklist and returns the names the user confirmed.
func Run(title string, items []Item) ([]string, error) {
	p := tea.NewProgram(newModel(title, items))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	result := final.(pickerModel)
	if result.cancelled {
		return nil, ErrCancelled
	}
	return result.selected(), nil
}

// ── styles ────────────────────────────────────────────────────────────────────

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	helpStyle     = dimStyle
)

// ── model ─────────────────────────────────────────────────────────────────────

type checkItem struct {
	name    string
	detail  string
	checked bool
}

type pickerModel struct {
	title     string
	filter    textinput.Model
	items     []checkItem
	cursor    int
	cancelled bool
	confirmed bool
}

func newModel(title string, items []Item) pickerModel {
	fi := textinput.New()
	fi.Placeholder = "type to filter"
	fi.Prompt = "/ "
	fi.Width = 40
	fi.Focus()

	checks := make([]checkItem, len(items))
	for i, it := range items {
		checks[i] = checkItem{name: it.Name, detail: it.Detail}
	}
	return pickerModel{title: title, filter: fi, items: checks}
}

// visible returns the indices of items matching the current filter.
func (m pickerModel) visible() []int {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	var idx []int
	for i, it := range m.items {
		if q == "" || strings.Contains(strings.ToLower(it.name), q) {
			idx = append(idx, i)
		}
	}
	return idx
}

func (m pickerModel) selected() []string {
	var names []string
	for _, it := range m.items {
		if it.checked {
			names = append(names, it.name)
		}
	}
	return names
}

// ── tea.Model interface ───────────────────────────────────────────────────────

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "enter":
		m.confirmed = true
		return m, tea.Quit
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "ctrl+n":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
		return m, nil
	case " ":
		m.toggleCursor()
		return m, nil
	}

	// Everything else edits the filter; clamp the cursor to the new view.
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if vis := m.visible(); m.cursor >= len(vis) {
		m.cursor = max(0, len(vis)-1)
	}
	return m, cmd
}

func (m *pickerModel) toggleCursor() {
	vis := m.visible()
	if m.cursor < len(vis) {
		i := vis[m.cursor]
		m.items[i].checked = !m.items[i].checked
	}
}

// ── View ──────────────────────────────────────────────────────────────────────

func (m pickerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("  pmx") + "  " + m.title + "\n\n")
	b.WriteString("  " + m.filter.View() + "\n\n")

	vis := m.visible()
	if len(vis) == 0 {
		b.WriteString(dimStyle.Render("  no packages match\n"))
	}
	for row, i := range vis {
		b.WriteString(m.renderItem(row, m.items[i]))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  ↑↓ move · space toggle · enter confirm · esc quit"))
	return b.String()
}

func (m pickerModel) renderItem(row int, item checkItem) string {
	cursor := "  "
	if row == m.cursor {
		cursor = focusStyle.Render(" ▶")
	}
	check := "○"
	style := normalStyle
	if item.checked {
		check = selectedStyle.Render("◉")
		style = selectedStyle
	}
	return fmt.Sprintf("%s %s  %-30s  %s\n",
		cursor, check,
		style.Render(item.name),
		dimStyle.Render(item.detail),
	)
}
