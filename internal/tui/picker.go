// Package tui provides the interactive session picker shown when a command
// needs a session and none was named on the command line.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/claudepane/claudepane/internal/util"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// PickerModel is the Bubbletea model for the session picker.
type PickerModel struct {
	sessions []string
	filtered []string
	index    int
	width    int

	filtering bool
	filter    textinput.Model

	// Selected is the chosen session name, empty if the picker was
	// dismissed without choosing.
	Selected string
	quitting bool
}

// NewPicker creates a picker over the given session names.
func NewPicker(sessions []string) PickerModel {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.CharLimit = 64
	ti.Width = 30

	return PickerModel{
		sessions: sessions,
		filtered: sessions,
		filter:   ti,
	}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter", "esc":
				m.filtering = false
				m.filter.Blur()
				return m, nil
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter()
				return m, cmd
			}
		}

		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "j", "down":
			if m.index < len(m.filtered)-1 {
				m.index++
			}
		case "k", "up":
			if m.index > 0 {
				m.index--
			}
		case "/":
			m.filtering = true
			m.filter.Focus()
			return m, textinput.Blink
		case "enter":
			if len(m.filtered) > 0 {
				m.Selected = m.filtered[m.index]
			}
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// applyFilter recomputes the visible sessions from the filter text.
func (m *PickerModel) applyFilter() {
	query := strings.ToLower(m.filter.Value())
	if query == "" {
		m.filtered = m.sessions
	} else {
		filtered := make([]string, 0, len(m.sessions))
		for _, s := range m.sessions {
			if strings.Contains(strings.ToLower(s), query) {
				filtered = append(filtered, s)
			}
		}
		m.filtered = filtered
	}
	if m.index >= len(m.filtered) {
		m.index = 0
	}
}

// View implements tea.Model.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("claudepane sessions"))
	b.WriteString("\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.filtered) == 0 {
		b.WriteString(mutedStyle.Render("no sessions"))
		b.WriteString("\n")
	}

	width := m.width
	if width <= 0 {
		width = 80
	}
	for i, name := range m.filtered {
		line := "  " + name
		if i == m.index {
			line = selectedStyle.Render("> " + name)
		} else {
			line = normalStyle.Render(line)
		}
		b.WriteString(util.TruncateANSI(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("j/k move · enter attach · / filter · q quit"))
	b.WriteString("\n")
	return b.String()
}

// Pick runs the picker and returns the chosen session name.
// Returns empty string if the user dismissed the picker.
func Pick(sessions []string) (string, error) {
	final, err := tea.NewProgram(NewPicker(sessions)).Run()
	if err != nil {
		return "", err
	}
	if m, ok := final.(PickerModel); ok {
		return m.Selected, nil
	}
	return "", nil
}
