package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"sessnav/internal/tmux"
	"sessnav/internal/ui/textutil"
)

// WindowListView shows the windows of one session. Enter switches the
// tmux client to the selected window.
type WindowListView struct {
	Session tmux.Session
	Windows []tmux.Window
	Cursor  int

	spinner spinner.Model
	loading bool
	Err     error
	width   int
}

var _ View = (*WindowListView)(nil)

// NewWindowListView creates a window list for session. Windows arrive via
// WindowsLoadedMsg.
func NewWindowListView(session tmux.Session) *WindowListView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status
	return &WindowListView{
		Session: session,
		spinner: s,
		loading: true,
		width:   80,
	}
}

// Name implements View.
func (v *WindowListView) Name() string { return "windows" }

// SelectedWindow returns the window under the cursor.
func (v *WindowListView) SelectedWindow() (tmux.Window, bool) {
	if v.Cursor < 0 || v.Cursor >= len(v.Windows) {
		return tmux.Window{}, false
	}
	return v.Windows[v.Cursor], true
}

// Init implements View.
func (v *WindowListView) Init() tea.Cmd {
	return v.spinner.Tick
}

// Update implements View.
func (v *WindowListView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		return v, nil
	case WindowsLoadedMsg:
		if msg.Session != v.Session.Name {
			return v, nil // stale load for a previous session
		}
		v.loading = false
		v.Err = msg.Err
		if msg.Err == nil {
			v.Windows = msg.Windows
			if v.Cursor >= len(v.Windows) {
				v.Cursor = 0
			}
		}
		return v, nil
	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if v.Cursor < len(v.Windows)-1 {
				v.Cursor++
			}
		case "k", "up":
			if v.Cursor > 0 {
				v.Cursor--
			}
		case "g":
			v.Cursor = 0
		case "G":
			if len(v.Windows) > 0 {
				v.Cursor = len(v.Windows) - 1
			}
		}
		return v, nil
	}
	return v, nil
}

// View implements View.
func (v *WindowListView) View() string {
	var b strings.Builder
	title := fmt.Sprintf("%s: windows (%d)", v.Session.Name, len(v.Windows))
	if v.loading {
		title += " " + v.spinner.View()
	}
	b.WriteString(Styles.Title.Render(title) + "\n")
	b.WriteString(Styles.Hint.Render("Enter: jump  SPC: commands  Esc: back") + "\n\n")

	if v.Err != nil {
		b.WriteString(Styles.TitleWarning.Render("tmux error: "+v.Err.Error()) + "\n")
		return b.String()
	}
	if !v.loading && len(v.Windows) == 0 {
		b.WriteString(Styles.Empty.Render("No windows") + "\n")
		return b.String()
	}

	maxName := v.width - 20
	if maxName < 10 {
		maxName = 10
	}
	for i, w := range v.Windows {
		line := fmt.Sprintf("%d: %s %d pane(s)", w.Index, textutil.PadRight(w.Name, maxName), w.Panes)
		if w.Active {
			line += "  *"
		}
		if i == v.Cursor {
			b.WriteString(Styles.Selected.Render("> "+line) + "\n")
		} else {
			b.WriteString(Styles.Muted.Render("  "+line) + "\n")
		}
	}
	return b.String()
}
