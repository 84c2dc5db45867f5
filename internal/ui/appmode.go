package ui

// AppMode identifies the screen at the top of the view stack. Used to
// filter keybind hints.
type AppMode int

const (
	ModeSessions AppMode = iota
	ModeWindows
)

func (m AppMode) String() string {
	switch m {
	case ModeSessions:
		return "Sessions"
	case ModeWindows:
		return "Windows"
	default:
		return "Unknown"
	}
}
