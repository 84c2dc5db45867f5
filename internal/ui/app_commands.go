package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sessnav/internal/tmux"
)

// refreshInterval is how often the session list is reloaded in the
// background while no overlay is open.
const refreshInterval = 5 * time.Second

// switchedMsg signals that the tmux client was moved to another session;
// the navigator's job is done and the app quits.
type switchedMsg struct{}

func loadSessions() tea.Cmd {
	return func() tea.Msg {
		sessions, err := tmux.ListSessions()
		return SessionsLoadedMsg{Sessions: sessions, Err: err}
	}
}

func loadWindows(session string) tea.Cmd {
	return func() tea.Msg {
		windows, err := tmux.ListWindows(session)
		return WindowsLoadedMsg{Session: session, Windows: windows, Err: err}
	}
}

func killSession(name string) tea.Cmd {
	return func() tea.Msg {
		return SessionActionDoneMsg{Err: tmux.KillSession(name)}
	}
}

func renameSession(oldName, newName string) tea.Cmd {
	return func() tea.Msg {
		return SessionActionDoneMsg{Err: tmux.RenameSession(oldName, newName)}
	}
}

func newSession(name string) tea.Cmd {
	return func() tea.Msg {
		return SessionActionDoneMsg{Err: tmux.NewSession(name, "")}
	}
}

func switchClient(session string, window int) tea.Cmd {
	return func() tea.Msg {
		if err := tmux.SwitchClient(session); err != nil {
			return SessionActionDoneMsg{Err: err}
		}
		if err := tmux.SelectWindow(session, window); err != nil {
			return SessionActionDoneMsg{Err: err}
		}
		return switchedMsg{}
	}
}

func scheduleTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
