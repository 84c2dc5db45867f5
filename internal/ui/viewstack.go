package ui

// ViewStack manages a stack of views for navigation (push/pop).
// The bottom view is the application root and is never popped by Back.
type ViewStack struct {
	stack []View
}

// Push adds a view to the top of the stack.
func (s *ViewStack) Push(v View) {
	s.stack = append(s.stack, v)
}

// Pop removes and returns the top view.
// Returns nil if the stack is empty.
func (s *ViewStack) Pop() View {
	if len(s.stack) == 0 {
		return nil
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return top
}

// Peek returns the top view without removing it.
func (s *ViewStack) Peek() View {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

// ReplaceTop swaps the top view for v. Used to store a view's updated
// model after its Update ran.
func (s *ViewStack) ReplaceTop(v View) {
	if len(s.stack) == 0 {
		return
	}
	s.stack[len(s.stack)-1] = v
}

// Len returns the number of views in the stack.
func (s *ViewStack) Len() int {
	return len(s.stack)
}
