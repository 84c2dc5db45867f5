package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("SPC q") == nil {
		t.Error("expected SPC q to be bound")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_LeaderHintsModeFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("SPC s k", tea.Quit, "Kill session", []AppMode{ModeSessions})
	reg.BindWithDesc("SPC t", tea.Quit, "Shell")

	hints := reg.LeaderHints("", ModeSessions)
	if _, ok := hints["s"]; !ok {
		t.Error("expected submenu key s in sessions-mode hints")
	}
	if hints["t"] != "Shell" {
		t.Errorf("expected Shell hint, got %q", hints["t"])
	}

	hints = reg.LeaderHints("", ModeWindows)
	if _, ok := hints["s"]; ok {
		t.Error("sessions-only binding leaked into windows-mode hints")
	}

	hints = reg.LeaderHints("SPC s", ModeSessions)
	if hints["k"] != "Kill session" {
		t.Errorf("second-level hint: got %q", hints["k"])
	}
}

func TestKeyHandler_LeaderSequence(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC s k", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Space -> leader waiting (Bubble Tea reports space as " ")
	consumed, cmd := h.Handle(keyMsg(" "))
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	// s -> still waiting (longer binding exists)
	consumed, cmd = h.Handle(keyMsg("s"))
	if !consumed || cmd != nil {
		t.Errorf("s: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader still waiting after SPC s")
	}

	// k -> execute SPC s k
	consumed, cmd = h.Handle(keyMsg("k"))
	if !consumed {
		t.Error("k: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected command")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_EscCancelsLeaderOnly(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"))
	if !consumed || cmd != nil {
		t.Errorf("esc in leader mode: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}

	// Outside leader mode Esc is not consumed: it belongs to backnav.
	consumed, _ = h.Handle(keyMsg("esc"))
	if consumed {
		t.Error("esc outside leader mode must fall through to back dispatch")
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"))
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

// keyMsg creates a tea.KeyMsg for testing. KeySpace.String() returns " ",
// KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
