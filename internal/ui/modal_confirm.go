package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"sessnav/internal/tmux"
)

// ConfirmModal is a generic confirmation modal. Enter or y confirms, n
// cancels. Esc dismissal is not handled here: it arrives through the back
// registry, which pops the modal's history entry and closes it.
type ConfirmModal struct {
	Title     string
	Label     string
	Details   string // optional warning details
	OnConfirm func() tea.Msg
}

var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{
		Title:     title,
		Label:     label,
		OnConfirm: onConfirm,
	}
}

// WithDetails adds warning details below the label.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewKillSessionModal creates the kill-session confirmation.
func NewKillSessionModal(session tmux.Session) *ConfirmModal {
	m := NewConfirmModal(
		"Kill session?",
		"Session: "+session.Name,
		func() tea.Msg { return KillSessionMsg{Name: session.Name} },
	)
	if session.Attached {
		m.WithDetails("Attached clients will be detached")
	}
	return m
}

// Name implements View.
func (m *ConfirmModal) Name() string { return "confirm" }

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "y":
			if m.OnConfirm != nil {
				return m, m.OnConfirm
			}
		case "n":
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := Styles.TitleWarning.Render(m.Title) + "\n\n"
	content += Styles.Label.Render(m.Label)
	if m.Details != "" {
		content += "\n" + Styles.Details.Render(m.Details)
	}
	content += "\n\n" + Styles.Hint.Render("y/Enter: confirm  n/Esc: cancel")
	return Styles.BoxDanger.Render(content)
}
