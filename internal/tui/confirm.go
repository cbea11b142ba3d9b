// Package tui provides the interactive prompts hookctl uses when a human
// (not the hook host) is driving a command.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	confirmTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	confirmHintStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
)

// confirmKeys are the recognized answers.
type confirmKeys struct {
	Yes  key.Binding
	No   key.Binding
	Quit key.Binding
}

var defaultConfirmKeys = confirmKeys{
	Yes:  key.NewBinding(key.WithKeys("y", "Y")),
	No:   key.NewBinding(key.WithKeys("n", "N", "enter")),
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// confirmModel is a single yes/no question. "No" is the default answer:
// overwriting an existing document should take a deliberate keypress.
type confirmModel struct {
	question string
	detail   string
	keys     confirmKeys

	answered bool
	answer   bool
}

func newConfirmModel(question, detail string) confirmModel {
	return confirmModel{
		question: question,
		detail:   detail,
		keys:     defaultConfirmKeys,
	}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Yes):
		m.answered = true
		m.answer = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.No), key.Matches(keyMsg, m.keys.Quit):
		m.answered = true
		m.answer = false
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.answered {
		return ""
	}

	view := confirmTitleStyle.Render(m.question) + "\n"
	if m.detail != "" {
		view += m.detail + "\n"
	}
	view += confirmHintStyle.Render("y to confirm, n to cancel") + "\n"
	return view
}

// Confirm asks a yes/no question and returns the answer. Enter and escape
// both answer no.
func Confirm(question, detail string) (bool, error) {
	p := tea.NewProgram(newConfirmModel(question, detail))
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("confirm prompt failed: %w", err)
	}

	m, ok := final.(confirmModel)
	if !ok {
		return false, fmt.Errorf("confirm prompt returned unexpected model")
	}
	return m.answer, nil
}
