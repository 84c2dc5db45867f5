package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"sessnav/internal/backnav"
	"sessnav/internal/navtrace"
	"sessnav/internal/pty"
	"sessnav/internal/tmux"
)

// AppModel is the root model: a view stack (sessions -> windows) plus an
// overlay stack for modals. Esc is never matched per-view; it is handed to
// the back registry, whose most recent history entry decides whether to
// consume it. With an empty history the default action pops the view
// stack, and at the root it quits.
type AppModel struct {
	Views      ViewStack
	Root       *SessionListView
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Nav        *backnav.Registry
	Recorder   *navtrace.Recorder
	PTYRunner  pty.Runner

	width, height int
	lastErr       error
	backFn        func() // listener captured at Install time
	quitting      bool
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model and installs the back
// registry. recorder may be nil (telemetry disabled).
func NewAppModel(recorder *navtrace.Recorder) *AppModel {
	m := &AppModel{
		Root:      NewSessionListView(),
		Nav:       backnav.New(),
		Recorder:  recorder,
		PTYRunner: &pty.CreackPTY{},
	}
	m.Views.Push(m.Root)

	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDescForMode("SPC s k", func() tea.Msg { return ShowKillSessionMsg{} }, "Kill session", []AppMode{ModeSessions})
	reg.BindWithDescForMode("SPC s r", func() tea.Msg { return ShowRenameSessionMsg{} }, "Rename session", []AppMode{ModeSessions})
	reg.BindWithDescForMode("SPC s n", func() tea.Msg { return ShowNewSessionMsg{} }, "New session", []AppMode{ModeSessions})
	reg.BindWithDesc("SPC t", func() tea.Msg { return ShowShellMsg{} }, "Shell")
	reg.BindWithDesc("SPC g", func() tea.Msg { return RefreshMsg{} }, "Refresh")
	m.KeyHandler = NewKeyHandler(reg)

	m.installNav()
	return m
}

// installNav installs the back registry against this model. Idempotent
// (the registry ignores repeat installs), and a no-op outside interactive
// terminals; headless runs fall back to plain view-stack navigation in
// dispatchBack.
func (m *AppModel) installNav() {
	m.Nav.Install(backnav.Config{
		DefaultAction:    m.navigateBack,
		RegisterListener: func(l func()) { m.backFn = l },
		OnAdded:          func(*backnav.Entry) { m.Recorder.HistoryAdded(m.Nav.Len()) },
		OnRemoved:        func(*backnav.Entry) { m.Recorder.HistoryRemoved(m.Nav.Len()) },
	})
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Shutdown tears down the back registry. Call after the program exits.
func (m *AppModel) Shutdown() {
	m.Nav.Teardown()
}

// Mode derives the keybind mode from the top of the view stack.
func (m *AppModel) Mode() AppMode {
	if _, ok := m.Views.Peek().(*WindowListView); ok {
		return ModeWindows
	}
	return ModeSessions
}

// navigateBack is the registry's default action: pop the view stack, or
// flag quit at the root.
func (m *AppModel) navigateBack() {
	if m.Views.Len() > 1 {
		from := m.Views.Peek().Name()
		m.Views.Pop()
		m.Recorder.ViewChanged(from, m.Views.Peek().Name())
		return
	}
	m.quitting = true
}

// dispatchBack hands one Esc press to the back registry and records the
// outcome. The outcome is inferred from the history depth: a pop means the
// topmost entry consumed the event, an unchanged non-zero depth means it
// was absorbed by a false condition.
func (m *AppModel) dispatchBack() {
	if m.backFn == nil {
		// Install was environment-gated off; keep basic navigation working.
		m.navigateBack()
		return
	}
	depth := m.Nav.Len()
	m.backFn()
	outcome := navtrace.OutcomeFallback
	if depth > 0 {
		outcome = navtrace.OutcomeAbsorbed
		if m.Nav.Len() < depth {
			outcome = navtrace.OutcomeConsumed
		}
	}
	m.Recorder.BackEvent(outcome, depth)
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.Root.Init(), loadSessions(), scheduleTick())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		v, _ := a.Views.Peek().Update(msg)
		a.Views.ReplaceTop(v)
		if cmd, ok := a.Overlays.UpdateTop(msg); ok {
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case SessionsLoadedMsg:
		if msg.Err == nil {
			a.lastErr = nil
		}
		// Root sits at the bottom of the stack and updates in place.
		_, cmd := a.Root.Update(msg)
		return a, cmd

	case WindowsLoadedMsg:
		if wv, ok := a.Views.Peek().(*WindowListView); ok {
			v, cmd := wv.Update(msg)
			a.Views.ReplaceTop(v)
			return a, cmd
		}
		return a, nil

	case SelectSessionMsg:
		from := a.Views.Peek().Name()
		wv := NewWindowListView(msg.Session)
		a.Views.Push(wv)
		a.Recorder.ViewChanged(from, wv.Name())
		cmds := []tea.Cmd{wv.Init(), loadWindows(msg.Session.Name)}
		if a.width > 0 {
			v, _ := wv.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
			a.Views.ReplaceTop(v)
		}
		return a, tea.Batch(cmds...)

	case SwitchSessionMsg:
		return a, switchClient(msg.Session, msg.Window)

	case switchedMsg:
		a.quitting = true
		return a, tea.Quit

	case ShowKillSessionMsg:
		if sess, ok := a.Root.Selected(); ok && a.Mode() == ModeSessions {
			return a, a.pushOverlay(NewKillSessionModal(sess), nil)
		}
		return a, nil

	case ShowRenameSessionMsg:
		if sess, ok := a.Root.Selected(); ok && a.Mode() == ModeSessions {
			modal := NewRenameSessionModal(sess.Name)
			// Keep the prompt open under Esc while the user has edits.
			return a, a.pushOverlay(modal, func() bool { return !modal.Dirty() })
		}
		return a, nil

	case ShowNewSessionMsg:
		if a.Mode() == ModeSessions {
			modal := NewSessionModal()
			return a, a.pushOverlay(modal, func() bool { return !modal.Dirty() })
		}
		return a, nil

	case ShowShellMsg:
		dir := ""
		if sess, ok := a.currentSession(); ok {
			dir = sess.Path
		}
		return a, a.pushOverlay(NewShellView(a.PTYRunner, dir), nil)

	case KillSessionMsg:
		a.closeTopOverlay()
		return a, killSession(msg.Name)

	case RenameSessionMsg:
		a.closeTopOverlay()
		return a, renameSession(msg.OldName, msg.NewName)

	case NewSessionMsg:
		a.closeTopOverlay()
		return a, newSession(msg.Name)

	case SessionActionDoneMsg:
		a.lastErr = msg.Err
		return a, loadSessions()

	case DismissModalMsg:
		a.closeTopOverlay()
		return a, nil

	case RefreshMsg:
		cmds := []tea.Cmd{loadSessions()}
		if wv, ok := a.Views.Peek().(*WindowListView); ok {
			cmds = append(cmds, loadWindows(wv.Session.Name))
		}
		return a, tea.Batch(cmds...)

	case tickMsg:
		if a.Overlays.Len() == 0 {
			return a, tea.Batch(loadSessions(), scheduleTick())
		}
		return a, scheduleTick()

	case ShellOutputMsg:
		if cmd, ok := a.Overlays.UpdateTop(msg); ok {
			return a, cmd
		}
		return a, nil
	}

	// Everything else (spinner ticks, blink, ...) goes to the top overlay
	// if present, else the current view.
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return a, cmd
	}
	v, cmd := a.Views.Peek().Update(msg)
	a.Views.ReplaceTop(v)
	return a, cmd
}

// handleKey routes one key press. Order matters: Esc goes to the back
// registry (unless it is cancelling leader mode); with an overlay open all
// other keys go to the overlay untouched so prompts and shells can receive
// spaces and 'q'; otherwise keybinds run first, then app-level Enter, then
// the current view.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()

	if s == "esc" && !a.KeyHandler.LeaderWaiting {
		a.dispatchBack()
		if a.quitting {
			return a, tea.Quit
		}
		return a, nil
	}

	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}

	if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
		return a, keyCmd
	}

	if s == "enter" {
		switch v := a.Views.Peek().(type) {
		case *SessionListView:
			if sess, ok := v.Selected(); ok {
				return a, func() tea.Msg { return SelectSessionMsg{Session: sess} }
			}
		case *WindowListView:
			if w, ok := v.SelectedWindow(); ok {
				session := v.Session.Name
				return a, func() tea.Msg { return SwitchSessionMsg{Session: session, Window: w.Index} }
			}
		}
	}

	v, cmd := a.Views.Peek().Update(msg)
	a.Views.ReplaceTop(v)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.quitting {
		return ""
	}
	base := a.Views.Peek().View()
	if o, ok := a.Overlays.Peek(); ok {
		base += "\n" + o.View.View()
	}
	if a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode())
	}
	if a.lastErr != nil {
		base += "\n" + Styles.TitleWarning.Render(a.lastErr.Error())
	}
	return base
}

// currentSession returns the session the UI is focused on: the drilled-in
// session in windows mode, else the selection on the session list.
func (a *appModelAdapter) currentSession() (tmux.Session, bool) {
	if wv, isWin := a.Views.Peek().(*WindowListView); isWin {
		return wv.Session, true
	}
	return a.Root.Selected()
}

// pushOverlay layers v over the current screen and registers its back
// binding: the overlay's dismissal is owned by the registry from here on.
// A nil autoHide means Esc always dismisses.
func (a *appModelAdapter) pushOverlay(v View, autoHide backnav.Flag) tea.Cmd {
	o := &Overlay{View: v}
	o.Binding = backnav.NewBinding(
		a.Nav,
		func() bool { return a.Overlays.Contains(o) },
		func() { a.removeOverlay(o) },
		autoHide,
	)
	a.Overlays.Push(o)
	o.Binding.AddToHistory()

	cmds := []tea.Cmd{v.Init()}
	if a.width > 0 {
		if cmd, ok := a.Overlays.UpdateTop(tea.WindowSizeMsg{Width: a.width, Height: a.height}); ok {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// closeTopOverlay closes the top overlay through a non-back path (confirm,
// submit, explicit cancel). Dispose runs while the overlay is still in the
// stack, so its history entry is removed too.
func (a *appModelAdapter) closeTopOverlay() {
	o, ok := a.Overlays.Peek()
	if !ok {
		return
	}
	o.Binding.Dispose()
	a.removeOverlay(o)
}

// removeOverlay takes o out of the stack and releases its resources. Also
// the back-entry handler: by the time it runs the history entry is already
// popped, so no history cleanup happens here.
func (a *appModelAdapter) removeOverlay(o *Overlay) {
	if !a.Overlays.Remove(o) {
		return
	}
	if c, ok := o.View.(io.Closer); ok {
		c.Close()
	}
}
