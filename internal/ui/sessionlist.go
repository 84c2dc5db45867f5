package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"sessnav/internal/tmux"
)

// sessionItem implements list.Item for tmux.Session.
type sessionItem struct {
	tmux.Session
}

func (s sessionItem) FilterValue() string { return s.Name }
func (s sessionItem) Title() string {
	line := fmt.Sprintf("%s  %d window(s)", s.Name, s.Windows)
	if s.Attached {
		line += "  [attached]"
	}
	return line
}
func (s sessionItem) Description() string { return "" }

// SessionListView is the root screen: all tmux sessions on the server.
type SessionListView struct {
	list     list.Model
	Sessions []tmux.Session
	spinner  spinner.Model
	loading  bool
	Err      error
}

var _ View = (*SessionListView)(nil)

// NewSessionListView creates the session list. Sessions arrive via
// SessionsLoadedMsg.
func NewSessionListView() *SessionListView {
	l := list.New(nil, NewCompactListDelegate(), 0, 0)
	l.Title = "Sessions"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status

	return &SessionListView{
		list:    l,
		spinner: s,
		loading: true,
	}
}

// Name implements View.
func (v *SessionListView) Name() string { return "sessions" }

// Selected returns the currently selected session.
func (v *SessionListView) Selected() (tmux.Session, bool) {
	if len(v.Sessions) == 0 {
		return tmux.Session{}, false
	}
	idx := v.list.Index()
	if idx < 0 || idx >= len(v.Sessions) {
		return tmux.Session{}, false
	}
	return v.Sessions[idx], true
}

// Init implements View.
func (v *SessionListView) Init() tea.Cmd {
	return v.spinner.Tick
}

// SetSessions replaces the listed sessions.
func (v *SessionListView) SetSessions(sessions []tmux.Session) {
	v.Sessions = sessions
	v.loading = false
	items := make([]list.Item, len(sessions))
	for i, s := range sessions {
		items[i] = sessionItem{Session: s}
	}
	v.list.SetItems(items)
}

// Update implements View.
func (v *SessionListView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.list.SetWidth(msg.Width)
		v.list.SetHeight(msg.Height - 4) // Reserve space for header and hint
		return v, nil
	case SessionsLoadedMsg:
		if msg.Err != nil {
			v.loading = false
			v.Err = msg.Err
			return v, nil
		}
		v.Err = nil
		v.SetSessions(msg.Sessions)
		return v, nil
	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	// list.Model handles j/k/g/G navigation natively. Enter is handled by
	// the app level.
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View implements View.
func (v *SessionListView) View() string {
	// Default dimensions if no WindowSizeMsg arrived yet (tests)
	if v.list.Width() == 0 {
		v.list.SetWidth(80)
	}
	if v.list.Height() == 0 {
		v.list.SetHeight(20)
	}

	var b strings.Builder
	title := fmt.Sprintf("Sessions (%d)", len(v.Sessions))
	if v.loading {
		title += " " + v.spinner.View()
	}
	b.WriteString(Styles.Title.Render(title) + "\n")
	b.WriteString(Styles.Hint.Render("Enter: windows  SPC: commands  Esc: back") + "\n\n")
	if v.Err != nil {
		b.WriteString(Styles.TitleWarning.Render("tmux error: "+v.Err.Error()) + "\n")
		return b.String()
	}
	if !v.loading && len(v.Sessions) == 0 {
		b.WriteString(Styles.Empty.Render("No sessions") + "\n")
		return b.String()
	}
	b.WriteString(v.list.View())
	return b.String()
}
