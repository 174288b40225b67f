package tsync

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPendingTracker(t *testing.T) {
	tracker := NewPendingTracker[int]()

	assert.Equal(t, ActionIdle, tracker.State(1))

	assert.True(t, tracker.Begin(1))
	assert.Equal(t, ActionPending, tracker.State(1))

	// A second begin for the same key is refused while other keys
	// stay operable.
	assert.False(t, tracker.Begin(1))
	assert.True(t, tracker.Begin(2))

	tracker.Finish(1, nil)
	assert.Equal(t, ActionIdle, tracker.State(1))
	assert.True(t, tracker.Begin(1))

	tracker.Finish(2, errors.New("boom"))
	assert.Equal(t, ActionError, tracker.State(2))

	// A failed key can be retried.
	assert.True(t, tracker.Begin(2))
}

func TestPendingTracker_Concurrent(t *testing.T) {
	tracker := NewPendingTracker[string]()

	var wg sync.WaitGroup
	var mu sync.Mutex
	started := 0
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if tracker.Begin("key") {
				mu.Lock()
				started++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, started)
}
