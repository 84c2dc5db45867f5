// Package backnav routes a single logical "back" action (Esc in a terminal
// UI) to the most recently registered interceptor.
//
// Core abstractions:
//   - Entry: one interceptor, a guard condition plus a handler
//   - Registry: ordered history of entries; topmost entry gets first claim
//     on each back action, falling through to a default action when empty
//   - Binding: per-usage-site adapter that manages one Entry on behalf of
//     an overlay or modal, with scope-end cleanup via Dispose
//
// The registry is confined to the Bubble Tea update loop: all calls must
// come from the program goroutine, so no locking is done.
package backnav
