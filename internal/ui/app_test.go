package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"sessnav/internal/pty"
	"sessnav/internal/tmux"
)

// newTestApp builds an app with the back registry force-installed (tests
// may run without a TERM) and a stub PTY runner.
func newTestApp(t *testing.T) *appModelAdapter {
	t.Helper()
	m := NewAppModel(nil)
	m.Nav.EnvCheck = func() bool { return true }
	m.installNav() // no-op if the environment gate already passed
	m.PTYRunner = &pty.StubRunner{}
	if m.backFn == nil {
		t.Fatal("back registry not installed")
	}
	return &appModelAdapter{AppModel: m}
}

func seedSessions(a *appModelAdapter) {
	a.Root.SetSessions([]tmux.Session{
		{Name: "dev", Windows: 2, Attached: true, Path: "/tmp"},
		{Name: "scratch", Windows: 1, Path: "/tmp"},
	})
}

func TestShowKillSession_PushesOverlayAndHistory(t *testing.T) {
	a := newTestApp(t)
	seedSessions(a)

	a.Update(ShowKillSessionMsg{})
	if a.Overlays.Len() != 1 {
		t.Fatalf("expected 1 overlay, got %d", a.Overlays.Len())
	}
	top, _ := a.Overlays.Peek()
	if _, ok := top.View.(*ConfirmModal); !ok {
		t.Errorf("expected ConfirmModal on overlay, got %T", top.View)
	}
	if a.Nav.Len() != 1 {
		t.Errorf("expected 1 back-history entry, got %d", a.Nav.Len())
	}
}

func TestEscDismissesTopmostOverlayOnly(t *testing.T) {
	a := newTestApp(t)
	seedSessions(a)

	a.Update(ShowKillSessionMsg{})
	a.Update(ShowShellMsg{})
	if a.Overlays.Len() != 2 || a.Nav.Len() != 2 {
		t.Fatalf("setup: overlays=%d history=%d, want 2 and 2", a.Overlays.Len(), a.Nav.Len())
	}

	a.Update(keyMsg("esc"))
	if a.Overlays.Len() != 1 {
		t.Errorf("expected 1 overlay after esc, got %d", a.Overlays.Len())
	}
	if a.Nav.Len() != 1 {
		t.Errorf("expected 1 history entry after esc, got %d", a.Nav.Len())
	}
	top, _ := a.Overlays.Peek()
	if _, ok := top.View.(*ConfirmModal); !ok {
		t.Errorf("expected the lower ConfirmModal to remain, got %T", top.View)
	}
	if a.quitting {
		t.Error("dismissing an overlay must not quit")
	}
}

func TestEscPopsViewStack(t *testing.T) {
	a := newTestApp(t)
	seedSessions(a)

	a.Update(SelectSessionMsg{Session: tmux.Session{Name: "dev", Path: "/tmp"}})
	if a.Views.Len() != 2 || a.Mode() != ModeWindows {
		t.Fatalf("setup: views=%d mode=%v", a.Views.Len(), a.Mode())
	}

	a.Update(keyMsg("esc"))
	if a.Views.Len() != 1 {
		t.Errorf("expected view stack popped to 1, got %d", a.Views.Len())
	}
	if a.quitting {
		t.Error("popping a view must not quit")
	}
}

func TestEscAtRootQuits(t *testing.T) {
	a := newTestApp(t)
	seedSessions(a)

	_, cmd := a.Update(keyMsg("esc"))
	if !a.quitting {
		t.Fatal("expected quitting at root")
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg from root esc")
	}
}

func TestRenameModalAbsorbsEscWhileEdited(t *testing.T) {
	a := newTestApp(t)
	seedSessions(a)

	a.Update(ShowRenameSessionMsg{})
	top, ok := a.Overlays.Peek()
	if !ok {
		t.Fatal("expected rename overlay")
	}
	modal, ok := top.View.(*PromptModal)
	if !ok {
		t.Fatalf("expected PromptModal, got %T", top.View)
	}

	// Untouched prompt: not dirty, but don't dismiss yet.
	if modal.Dirty() {
		t.Fatal("fresh prompt should not be dirty")
	}

	// Type a character; the live flag flips and Esc is absorbed.
	a.Update(keyMsg("x"))
	if !modal.Dirty() {
		t.Fatal("prompt should be dirty after typing")
	}
	a.Update(keyMsg("esc"))
	if a.Overlays.Len() != 1 {
		t.Fatal("esc should be absorbed while the prompt has edits")
	}
	if a.Nav.Len() != 1 {
		t.Errorf("absorbed esc must leave the history entry, got %d", a.Nav.Len())
	}

	// Erase the edit; the same entry now lets Esc dismiss.
	a.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if modal.Dirty() {
		t.Fatal("prompt should be clean after erasing the edit")
	}
	a.Update(keyMsg("esc"))
	if a.Overlays.Len() != 0 {
		t.Error("esc should dismiss the clean prompt")
	}
	if a.Nav.Len() != 0 {
		t.Errorf("history entry should be gone after dismissal, got %d", a.Nav.Len())
	}
}

func TestConfirmModalCancelWithN(t *testing.T) {
	a := newTestApp(t)
	seedSessions(a)

	a.Update(ShowKillSessionMsg{})
	_, cmd := a.Update(keyMsg("n"))
	if cmd == nil {
		t.Fatal("expected dismiss command from n")
	}
	a.Update(cmd())
	if a.Overlays.Len() != 0 {
		t.Errorf("expected overlay closed, got %d", a.Overlays.Len())
	}
	if a.Nav.Len() != 0 {
		t.Errorf("expected history entry removed, got %d", a.Nav.Len())
	}
}

func TestConfirmKillClosesOverlayAndRemovesEntry(t *testing.T) {
	a := newTestApp(t)
	seedSessions(a)

	a.Update(ShowKillSessionMsg{})
	// KillSessionMsg is what 'y' produces; feed it directly so the test
	// does not shell out to tmux.
	_, cmd := a.Update(KillSessionMsg{Name: "dev"})
	if a.Overlays.Len() != 0 {
		t.Errorf("expected overlay closed, got %d", a.Overlays.Len())
	}
	if a.Nav.Len() != 0 {
		t.Errorf("expected history entry removed, got %d", a.Nav.Len())
	}
	if cmd == nil {
		t.Error("expected a kill command to run")
	}
}

func TestOverlayReceivesRawKeys(t *testing.T) {
	a := newTestApp(t)
	seedSessions(a)

	a.Update(ShowNewSessionMsg{})
	top, _ := a.Overlays.Peek()
	modal := top.View.(*PromptModal)

	// 'q' and space must reach the prompt, not the quit binding or the
	// leader key.
	_, cmd := a.Update(keyMsg("q"))
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatal("q quit the app while a prompt was open")
		}
	}
	a.Update(keyMsg(" "))
	if a.KeyHandler.LeaderWaiting {
		t.Error("space entered leader mode while a prompt was open")
	}
	if !modal.Dirty() {
		t.Error("typed keys did not reach the prompt")
	}
}

func TestShellOverlayWritesKeysAndClosesOnEsc(t *testing.T) {
	a := newTestApp(t)
	seedSessions(a)
	stub := &pty.StubRunner{}
	a.PTYRunner = stub

	a.Update(ShowShellMsg{})
	top, ok := a.Overlays.Peek()
	if !ok {
		t.Fatal("expected shell overlay")
	}
	sv, ok := top.View.(*ShellView)
	if !ok {
		t.Fatalf("expected ShellView, got %T", top.View)
	}
	// Spawn against the stub (Init's cmd is not executed by the test).
	sv.Init()
	if stub.LastCmd == nil {
		t.Fatal("shell was not spawned")
	}

	a.Update(keyMsg("q"))
	if a.quitting {
		t.Fatal("q quit the app while the shell was open")
	}
	if got := string(stub.Written()); got != "q" {
		t.Errorf("expected q written to PTY, got %q", got)
	}

	a.Update(keyMsg("esc"))
	if a.Overlays.Len() != 0 {
		t.Error("esc should dismiss the shell overlay")
	}
	if !stub.Closed() {
		t.Error("dismissing the shell should close its PTY")
	}
}

func TestBackOutcomeTelemetryDepths(t *testing.T) {
	// Recorder is nil here; this exercises the nil-safe path through
	// dispatchBack's outcome inference.
	a := newTestApp(t)
	seedSessions(a)
	a.Update(ShowKillSessionMsg{})
	a.Update(keyMsg("esc")) // consumed
	a.Update(keyMsg("esc")) // fallback -> quits at root
	if !a.quitting {
		t.Error("expected quit after fallback esc at root")
	}
}
