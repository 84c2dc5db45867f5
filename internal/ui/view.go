package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View
// plus a stable name used in navigation telemetry.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
	Name() string
}
