package tsync

import (
	"sync"
)

type ActionState int

const (
	ActionIdle ActionState = iota
	ActionPending
	ActionError
)

// PendingTracker tracks an in-flight action per key. A key can only be pending
// once; a second Begin for the same key is rejected while other keys remain
// fully operable. Requests are never de-duplicated, only refused.
type PendingTracker[K comparable] struct {
	mu     sync.Mutex
	states map[K]ActionState
}

func NewPendingTracker[K comparable]() *PendingTracker[K] {
	return &PendingTracker[K]{
		states: make(map[K]ActionState),
	}
}

// Begin marks the key pending and reports whether the caller may proceed.
func (t *PendingTracker[K]) Begin(key K) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.states[key] == ActionPending {
		return false
	}
	t.states[key] = ActionPending
	return true
}

// Finish records the outcome of the action started with Begin.
func (t *PendingTracker[K]) Finish(key K, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err != nil {
		t.states[key] = ActionError
		return
	}
	delete(t.states, key)
}

func (t *PendingTracker[K]) State(key K) ActionState {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.states[key]
}
