// Package ui composes the sessnav terminal interface with Bubble Tea.
//
// Core abstractions:
//   - View: a screen with its own model, update, view (Elm-style)
//   - ViewStack: stack-based navigation between screens (push/pop)
//   - Overlay: modal or popup views layered over the current screen
//   - KeybindRegistry/KeyHandler: SPC-leader key sequences
//
// Back navigation is not handled per-view: the Esc key is routed to a
// backnav.Registry. Every overlay registers a history entry when pushed,
// so the most recent overlay decides whether Esc dismisses it; with no
// overlays, Esc pops the view stack, and at the root it quits.
package ui
