package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"sessnav/internal/backnav"
)

// Overlay is a modal or popup view layered over the current screen.
// Its Binding owns the overlay's back-history entry: pushed when the
// overlay opens, removed when it closes, so dismissal always goes through
// the back registry instead of per-modal Esc handling.
type Overlay struct {
	View    View
	Binding *backnav.Binding
}

// OverlayStack manages layered overlays (topmost receives input first).
// Overlays are held by pointer so back-history closures keep a stable
// identity across pushes.
type OverlayStack struct {
	stack []*Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o *Overlay) {
	s.stack = append(s.stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (*Overlay, bool) {
	if len(s.stack) == 0 {
		return nil, false
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (*Overlay, bool) {
	if len(s.stack) == 0 {
		return nil, false
	}
	return s.stack[len(s.stack)-1], true
}

// Remove takes o out of the stack wherever it sits, preserving the order
// of the rest. Returns false if o is not in the stack.
func (s *OverlayStack) Remove(o *Overlay) bool {
	for i, cur := range s.stack {
		if cur == o {
			s.stack = append(s.stack[:i], s.stack[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether o is currently in the stack. Used as the
// "still active" signal for overlay back bindings.
func (s *OverlayStack) Contains(o *Overlay) bool {
	for _, cur := range s.stack {
		if cur == o {
			return true
		}
	}
	return false
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.stack)
}

// UpdateTop passes msg to the top overlay's Update and replaces its View
// with the result. Returns the cmd from the overlay's Update.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.stack) == 0 {
		return nil, false
	}
	top := s.stack[len(s.stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}
