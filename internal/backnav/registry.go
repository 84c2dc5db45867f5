package backnav

import "os"

// Entry is one registered back interceptor. Condition is re-evaluated on
// every dispatch; Handler runs when the entry consumes a back action.
// Entries have no identity beyond their pointer: RemoveHistory removes the
// exact *Entry it is given.
type Entry struct {
	Condition func() bool
	Handler   func()
}

// Config supplies the collaborators Install wires the registry to.
type Config struct {
	// DefaultAction runs when a back action arrives with an empty history
	// (e.g. pop the view stack, or quit at the root). Required.
	DefaultAction func()
	// RegisterListener receives the single listener function the registry
	// registers with the platform (the app's Esc dispatch). Required.
	RegisterListener func(listener func())
	// OnAdded/OnRemoved are invoked synchronously with the affected entry
	// whenever the history grows or shrinks, including pops made by the
	// listener itself. Optional.
	OnAdded   func(*Entry)
	OnRemoved func(*Entry)
}

// Registry holds the ordered back-interception history. The zero value is
// usable but uninstalled: AddHistory and RemoveHistory are no-ops until
// Install succeeds, and again after Teardown.
//
// Not safe for concurrent use; confine to the program's update loop.
type Registry struct {
	// EnvCheck gates Install. Defaults to InteractiveTerminal in New.
	// Injected so tests can force either path (same pattern as pty.Runner).
	EnvCheck func() bool

	installed bool
	cfg       Config
	history   []*Entry
}

// New creates an uninstalled registry gated on InteractiveTerminal.
func New() *Registry {
	return &Registry{EnvCheck: InteractiveTerminal}
}

// InteractiveTerminal reports whether the process appears to be attached to
// an interactive terminal. Install is skipped otherwise, so it is safe to
// call unconditionally from code that also runs headless (CI, piped).
func InteractiveTerminal() bool {
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

// Install wires the registry to its platform: it registers exactly one
// listener via cfg.RegisterListener and enables AddHistory/RemoveHistory.
// Idempotent: a second call on an installed registry does nothing, as does
// any call when the environment gate fails.
func (r *Registry) Install(cfg Config) {
	if r.installed {
		return
	}
	if r.EnvCheck != nil && !r.EnvCheck() {
		return
	}
	r.cfg = cfg
	r.installed = true
	cfg.RegisterListener(r.dispatch)
}

// AddHistory pushes e onto the history. A nil Condition is defaulted to
// always-true at add time. No-op while uninstalled.
func (r *Registry) AddHistory(e *Entry) {
	if !r.installed {
		return
	}
	if e.Condition == nil {
		e.Condition = func() bool { return true }
	}
	r.history = append(r.history, e)
	if r.cfg.OnAdded != nil {
		r.cfg.OnAdded(e)
	}
}

// RemoveHistory removes e (matched by pointer) from the history, keeping
// the relative order of the rest. Removing an absent entry, or calling
// while uninstalled, has no effect.
func (r *Registry) RemoveHistory(e *Entry) {
	if !r.installed {
		return
	}
	for i, ent := range r.history {
		if ent == e {
			r.history = append(r.history[:i], r.history[i+1:]...)
			if r.cfg.OnRemoved != nil {
				r.cfg.OnRemoved(e)
			}
			return
		}
	}
}

// Teardown empties the history and returns the registry to the uninstalled
// state; AddHistory/RemoveHistory revert to no-ops so stale references held
// by in-flight callers cannot mutate anything. Safe to call repeatedly.
// A later Install starts fresh.
func (r *Registry) Teardown() {
	r.history = nil
	r.installed = false
	r.cfg = Config{}
}

// Len returns the number of entries currently in the history.
func (r *Registry) Len() int {
	return len(r.history)
}

// dispatch is the listener handed to RegisterListener. One invocation per
// back action:
//   - empty history: run DefaultAction
//   - topmost condition true: pop it and run its handler
//   - topmost condition false: do nothing at all; the event is absorbed
//     and the entry stays put (it does not fall through to lower entries
//     or to the default action)
func (r *Registry) dispatch() {
	if len(r.history) == 0 {
		r.cfg.DefaultAction()
		return
	}
	top := r.history[len(r.history)-1]
	if !top.Condition() {
		return
	}
	r.history = r.history[:len(r.history)-1]
	if r.cfg.OnRemoved != nil {
		r.cfg.OnRemoved(top)
	}
	top.Handler()
}
