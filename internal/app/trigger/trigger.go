package trigger

import (
	"sync/atomic"
)

// Trigger is a single-slot coalescing signal. Multiple fires before the
// next Consume collapse into one pending trigger; a fire when none is
// pending is never lost.
type Trigger struct {
	pending atomic.Bool
}

// New creates a Trigger with nothing pending
func New() *Trigger {
	return &Trigger{}
}

// Fire marks the trigger pending. Returns false when a trigger was already
// pending and this one coalesced into it.
func (t *Trigger) Fire() bool {
	return t.pending.CompareAndSwap(false, true)
}

// Consume clears the trigger and reports whether one was pending
func (t *Trigger) Consume() bool {
	return t.pending.CompareAndSwap(true, false)
}

// Pending reports whether a trigger is waiting without consuming it
func (t *Trigger) Pending() bool {
	return t.pending.Load()
}
