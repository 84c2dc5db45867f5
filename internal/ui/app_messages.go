package ui

import (
	"time"

	"sessnav/internal/tmux"
)

// SelectSessionMsg is sent when the user drills into a session (Enter).
type SelectSessionMsg struct {
	Session tmux.Session
}

// SessionsLoadedMsg is sent when the session list is (re)loaded.
type SessionsLoadedMsg struct {
	Sessions []tmux.Session
	Err      error
}

// WindowsLoadedMsg is sent when a session's windows are loaded.
type WindowsLoadedMsg struct {
	Session string
	Windows []tmux.Window
	Err     error
}

// ShowKillSessionMsg triggers the kill-session confirmation (SPC s k).
type ShowKillSessionMsg struct{}

// ShowRenameSessionMsg triggers the rename-session prompt (SPC s r).
type ShowRenameSessionMsg struct{}

// ShowNewSessionMsg triggers the new-session prompt (SPC s n).
type ShowNewSessionMsg struct{}

// ShowShellMsg opens a shell overlay in the selected session's working
// directory (SPC t).
type ShowShellMsg struct{}

// KillSessionMsg is sent when the user confirms killing a session.
type KillSessionMsg struct {
	Name string
}

// RenameSessionMsg is sent when the user submits a new session name.
type RenameSessionMsg struct {
	OldName string
	NewName string
}

// NewSessionMsg is sent when the user submits a name for a new session.
type NewSessionMsg struct {
	Name string
}

// SwitchSessionMsg is sent when the user jumps to a window (Enter on the
// window list). The app switches the tmux client there and exits.
type SwitchSessionMsg struct {
	Session string
	Window  int
}

// SessionActionDoneMsg reports the result of a kill/rename/new action and
// triggers a session reload.
type SessionActionDoneMsg struct {
	Err error
}

// DismissModalMsg is sent when a modal cancels itself (e.g. 'n' on a
// confirmation). Esc dismissal does not use this message; it goes through
// the back registry.
type DismissModalMsg struct{}

// RefreshMsg triggers a manual reload of the current view's data.
type RefreshMsg struct{}

// tickMsg triggers the periodic session refresh.
type tickMsg time.Time
