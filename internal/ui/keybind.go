package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands.
// Key sequences use spacemacs-style notation: "SPC" for space, "SPC s" for
// SPC then s. Single keys: "q", "ctrl+c", "enter".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	modeFilter   map[string][]AppMode // nil/empty = applies to all modes
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		modeFilter:   make(map[string][]AppMode),
	}
}

// Bind registers a key sequence to a command.
// Overwrites any existing binding for the sequence.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the help
// view. The binding applies to all AppModes.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(seq, cmd, desc, nil)
}

// BindWithDescForMode registers a key sequence with a description and mode
// filter. If modes is nil or empty, the binding applies to all modes;
// otherwise hints are only shown when the current AppMode is in modes.
func (r *KeybindRegistry) BindWithDescForMode(seq string, cmd tea.Cmd, desc string, modes []AppMode) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(modes) > 0 {
		r.modeFilter[n] = modes
	}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// HasPrefix returns true if any binding starts with seq and a space
// (i.e. more keys follow).
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// firstLevelSubmenuLabel maps first-level keys that have sub-bindings to a
// generic display label, instead of showing one specific sub-action.
var firstLevelSubmenuLabel = map[string]string{
	"s": "Session",
}

// LeaderHints returns hints for SPC-prefixed bindings, filtered by mode.
// When currentSeq is empty, returns first-level hints (e.g. "q", "s").
// When currentSeq is e.g. "SPC s", returns next-level hints ("k", "r", "n").
// Bindings with no mode filter apply to all modes.
func (r *KeybindRegistry) LeaderHints(currentSeq string, mode AppMode) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) {
			continue
		}
		if !r.appliesToMode(seq, mode) {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		parts := strings.Fields(rest)
		key := rest
		if len(parts) > 0 {
			key = parts[0]
		}
		if r.HasPrefix(strings.TrimSuffix(prefix, " ") + " " + key) {
			if label, ok := firstLevelSubmenuLabel[key]; ok {
				out[key] = label
			} else {
				out[key] = key + "…"
			}
		} else {
			if d, ok := r.descriptions[seq]; ok && d != "" {
				out[key] = d
			} else {
				out[key] = seq
			}
		}
	}
	return out
}

// appliesToMode returns true if the binding applies to the given mode.
func (r *KeybindRegistry) appliesToMode(seq string, mode AppMode) bool {
	modes, ok := r.modeFilter[seq]
	if !ok || len(modes) == 0 {
		return true
	}
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to our canonical format.
// "space" -> "SPC", "ctrl+c" -> "ctrl+c", "j" -> "j".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" || p == " " {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // " " (tea.KeyMsg.String() format for space)
	LeaderSeq     string   // "SPC" (our format)
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
// Bubble Tea reports space as " " (KeySpace), not "space".
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true, the key was handled by the keybind system and should
// not be passed to views. Esc is consumed only to cancel leader mode; an
// Esc outside leader mode is left for the back-navigation dispatch.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" {
		if h.LeaderWaiting {
			h.LeaderWaiting = false
			h.Buffer = nil
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	// In leader mode: append key and look up
	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")

		if c := h.Registry.Lookup(seq); c != nil {
			h.LeaderWaiting = false
			h.Buffer = nil
			return true, c
		}
		// No exact match; stay in leader mode if a longer binding exists
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		h.LeaderWaiting = false
		h.Buffer = nil
		return true, nil
	}

	// Not in leader mode: check single-key bindings
	if c := h.Registry.Lookup(keyToSeqPart(s)); c != nil {
		return true, c
	}

	return false, nil
}

// keyToSeqPart converts a tea key string to our sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}
