package backnav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func installedRegistry(t *testing.T) (*Registry, func()) {
	t.Helper()
	r := New()
	r.EnvCheck = func() bool { return true }
	var listener func()
	r.Install(Config{
		DefaultAction:    func() {},
		RegisterListener: func(l func()) { listener = l },
	})
	require.NotNil(t, listener)
	return r, listener
}

func TestBindingAddRemoveRoundTrip(t *testing.T) {
	r, _ := installedRegistry(t)
	before := r.Len()

	b := NewBinding(r, nil, func() {}, nil)
	b.AddToHistory()
	assert.Equal(t, before+1, r.Len())

	b.RemoveFromHistory()
	assert.Equal(t, before, r.Len())

	// Removal with nothing retained is a no-op.
	b.RemoveFromHistory()
	assert.Equal(t, before, r.Len())
}

func TestBindingConditionReadsFlagLive(t *testing.T) {
	r, listener := installedRegistry(t)
	dismissed := 0
	autoHide := false
	b := NewBinding(r, nil, func() { dismissed++ }, func() bool { return autoHide })
	b.AddToHistory()

	listener()
	assert.Equal(t, 0, dismissed, "back should be absorbed while flag is false")
	assert.Equal(t, 1, r.Len())

	// Flip the flag after registration; no re-register needed.
	autoHide = true
	listener()
	assert.Equal(t, 1, dismissed)
	assert.Equal(t, 0, r.Len())
}

func TestBindingDisposeWhileActiveRemoves(t *testing.T) {
	r, _ := installedRegistry(t)
	b := NewBinding(r, Fixed(true), func() {}, nil)
	b.AddToHistory()
	require.Equal(t, 1, r.Len())

	b.Dispose()
	assert.Equal(t, 0, r.Len())
}

func TestBindingDisposeWhileInactiveLeavesStack(t *testing.T) {
	r, _ := installedRegistry(t)
	b := NewBinding(r, Fixed(false), func() {}, nil)
	b.AddToHistory()
	require.Equal(t, 1, r.Len())

	b.Dispose()
	assert.Equal(t, 1, r.Len(), "inactive dispose must not touch the history")
}

func TestBindingRemoveAfterBackPopIsNoOp(t *testing.T) {
	r, listener := installedRegistry(t)
	b := NewBinding(r, nil, func() {}, nil)
	b.AddToHistory()

	other := NewBinding(r, nil, func() {}, nil)
	other.AddToHistory()
	require.Equal(t, 2, r.Len())

	// Back pops other's entry; its later explicit removal must not
	// disturb b's entry.
	listener()
	require.Equal(t, 1, r.Len())
	other.RemoveFromHistory()
	assert.Equal(t, 1, r.Len())
}

func TestBindingReAddReplacesRetention(t *testing.T) {
	r, _ := installedRegistry(t)
	b := NewBinding(r, nil, func() {}, nil)
	b.AddToHistory()
	b.AddToHistory()
	// Both entries are in the history; the first is orphaned.
	assert.Equal(t, 2, r.Len())
	b.RemoveFromHistory()
	// Only the retained (second) entry is removed.
	assert.Equal(t, 1, r.Len())
}

func TestFixed(t *testing.T) {
	assert.True(t, Fixed(true)())
	assert.False(t, Fixed(false)())
}
