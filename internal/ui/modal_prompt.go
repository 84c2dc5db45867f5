package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PromptModal is a single-line text prompt (rename session, new session).
// Esc dismissal goes through the back registry; the modal's back binding
// uses Dirty as its keep-open signal, so Esc is absorbed while the user
// has unsubmitted edits instead of silently discarding them.
type PromptModal struct {
	Title    string
	initial  string
	input    textinput.Model
	OnSubmit func(value string) tea.Msg
}

var _ View = (*PromptModal)(nil)

// NewPromptModal creates a prompt prefilled with initial.
func NewPromptModal(title, placeholder, initial string, onSubmit func(string) tea.Msg) *PromptModal {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Width = 40
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()
	return &PromptModal{
		Title:    title,
		initial:  initial,
		input:    ti,
		OnSubmit: onSubmit,
	}
}

// NewRenameSessionModal creates the rename prompt for a session.
func NewRenameSessionModal(oldName string) *PromptModal {
	return NewPromptModal("Rename session", "new-name", oldName, func(value string) tea.Msg {
		return RenameSessionMsg{OldName: oldName, NewName: value}
	})
}

// NewSessionModal creates the prompt for a new detached session.
func NewSessionModal() *PromptModal {
	return NewPromptModal("New session", "session-name", "", func(value string) tea.Msg {
		return NewSessionMsg{Name: value}
	})
}

// Name implements View.
func (m *PromptModal) Name() string { return "prompt" }

// Dirty reports whether the input differs from its initial value.
func (m *PromptModal) Dirty() bool {
	return m.input.Value() != m.initial
}

// Value returns the trimmed input value.
func (m *PromptModal) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Init implements View.
func (m *PromptModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *PromptModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		value := m.Value()
		if value != "" && m.OnSubmit != nil {
			return m, func() tea.Msg { return m.OnSubmit(value) }
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *PromptModal) View() string {
	content := Styles.Title.Render(m.Title) + "\n\n"
	content += m.input.View() + "\n\n"
	hint := "Enter: submit  Esc: cancel"
	if m.Dirty() {
		hint = "Enter: submit  (Esc blocked while edited)"
	}
	content += Styles.Hint.Render(hint)
	return Styles.Box.Render(content)
}
