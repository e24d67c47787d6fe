// Package tui provides the interactive terminal session for classifying identifiers.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/lepinkainen/isbncheck/internal/isbn"
)

const (
	historyLimit = 10
	inputWidth   = 32
	// longest hyphenated ISBN-13 plus slack for stray spaces
	inputCharLimit = 40
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

type model struct {
	input   textinput.Model
	history []isbn.Result
}

func newModel() *model {
	ti := textinput.New()
	ti.Placeholder = "978-3-16-148410-0"
	ti.Prompt = "ISBN> "
	ti.CharLimit = inputCharLimit
	ti.Width = inputWidth
	ti.Focus()

	return &model{input: ti}
}

func (m *model) Init() tea.Cmd { return textinput.Blink }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.input.Value() == "" {
				return m, tea.Quit
			}
		case "enter":
			m.submit()
			return m, nil
		case "esc":
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit records the current value and clears the field.
func (m *model) submit() {
	value := m.input.Value()
	if strings.TrimSpace(value) == "" {
		return
	}

	m.history = append(m.history, isbn.Analyze(value))
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
	m.input.SetValue("")
}

func (m *model) View() string {
	header := headerStyle.Render("ISBN check")
	live := liveStyle.Render(m.liveStatus())

	sections := []string{header, m.input.View(), live}
	if len(m.history) > 0 {
		sections = append(sections, historyStyle.Render(m.historyView()))
	}
	sections = append(sections, helpStyle.Render("Enter record | Esc clear | q quit (empty field) | Ctrl+C quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *model) liveStatus() string {
	value := m.input.Value()
	if strings.TrimSpace(value) == "" {
		return "Type an ISBN-10 or ISBN-13"
	}

	result := isbn.Analyze(value)
	label := kindStyle(result.Kind).Render(result.Kind.String())
	if result.Normalized == "" {
		return label
	}
	return fmt.Sprintf("%s  %s", label, result.Normalized)
}

func (m *model) historyView() string {
	width := 0
	for _, entry := range m.history {
		width = max(width, runewidth.StringWidth(entry.Input))
	}

	lines := make([]string, 0, len(m.history))
	for i := len(m.history) - 1; i >= 0; i-- {
		entry := m.history[i]
		lines = append(lines, runewidth.FillRight(entry.Input, width)+"  "+kindStyle(entry.Kind).Render(entry.Kind.String()))
	}
	return strings.Join(lines, "\n")
}

func kindStyle(kind isbn.Kind) lipgloss.Style {
	if kind.Valid() {
		return validStyle
	}
	return invalidStyle
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	liveStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("252"))

	historyStyle = lipgloss.NewStyle().
			MarginTop(1).
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("62"))

	validStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	invalidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("161"))

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("244"))
)

// Run starts the interactive session and returns the identifiers recorded
// during it, oldest first.
func Run() ([]isbn.Result, error) {
	finalModel, err := runProgram(newModel())
	if err != nil {
		return nil, err
	}

	if typed, ok := finalModel.(*model); ok {
		return typed.history, nil
	}

	return nil, fmt.Errorf("unexpected program result")
}
