package backnav

// Flag is a boolean source read at evaluation time rather than captured
// once. Use Fixed for constants; pass a closure over live state (an input's
// emptiness, an overlay's visibility) for values that change.
type Flag func() bool

// Fixed returns a Flag that always reports v.
func Fixed(v bool) Flag {
	return func() bool { return v }
}

// Binding manages at most one live history Entry on behalf of a single
// usage site (an overlay, a modal). It ties the entry's condition to a live
// autoHide flag and its handler to the site's dismiss callback, and cleans
// up after the site via Dispose.
type Binding struct {
	registry  *Registry
	active    Flag
	onDismiss func()
	autoHide  Flag

	entry *Entry
}

// NewBinding creates a binding against reg.
//
//   - active: whether the usage site is currently showing; consulted only
//     by Dispose to decide whether cleanup is still this binding's job
//   - onDismiss: runs when the entry consumes a back action
//   - autoHide: read on every dispatch as the entry's condition; while it
//     reports false the back action is absorbed without dismissing
//
// Nil flags default to Fixed(true).
func NewBinding(reg *Registry, active Flag, onDismiss func(), autoHide Flag) *Binding {
	if active == nil {
		active = Fixed(true)
	}
	if autoHide == nil {
		autoHide = Fixed(true)
	}
	return &Binding{
		registry:  reg,
		active:    active,
		onDismiss: onDismiss,
		autoHide:  autoHide,
	}
}

// AddToHistory registers a fresh Entry and retains it for later removal.
// The entry's condition reads the autoHide flag at dispatch time, so flag
// changes take effect without re-registering. Calling AddToHistory while an
// entry is already retained replaces the retention; the prior entry, if
// still in the history, is orphaned.
func (b *Binding) AddToHistory() {
	e := &Entry{
		Condition: func() bool { return b.autoHide() },
		Handler:   b.onDismiss,
	}
	b.registry.AddHistory(e)
	b.entry = e
}

// RemoveFromHistory removes the retained entry, if any, and clears the
// retention. Safe when nothing is retained, and safe after the entry was
// already popped by a back action (the registry ignores absent entries).
func (b *Binding) RemoveFromHistory() {
	if b.entry == nil {
		return
	}
	b.registry.RemoveHistory(b.entry)
	b.entry = nil
}

// Dispose is the scope-end hook: call it when the usage site's lifetime
// ends. If the site is still active the retained entry is removed;
// otherwise the history is left alone, on the assumption the entry already
// left through normal flow (popped by a back action, or removed manually).
func (b *Binding) Dispose() {
	if b.active() {
		b.RemoveFromHistory()
	}
}
