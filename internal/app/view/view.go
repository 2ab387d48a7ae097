package view

import (
	"sync"

	"logwatch/internal/app/match"
)

// Bounded is a fixed-capacity ordered buffer of the most recent matched
// rows. Insertion appends at the tail; when the buffer is full the oldest
// row is evicted from the head. Only the pipeline goroutine pushes; the
// renderer and exporter read through Snapshot copies.
type Bounded struct {
	mu       sync.RWMutex
	rows     []match.Row
	capacity int
}

// NewBounded creates an empty view with the given capacity. The capacity is
// fixed for the lifetime of the view.
func NewBounded(capacity int) *Bounded {
	return &Bounded{
		rows:     make([]match.Row, 0, capacity),
		capacity: capacity,
	}
}

// Push appends a row, evicting the oldest when the capacity is exceeded
func (b *Bounded) Push(row match.Row) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.rows) == b.capacity {
		copy(b.rows, b.rows[1:])
		b.rows = b.rows[:b.capacity-1]
	}

	b.rows = append(b.rows, row)
}

// Snapshot returns a copy of the current contents, oldest first, safe to
// read while the pipeline keeps pushing
func (b *Bounded) Snapshot() []match.Row {
	b.mu.RLock()
	defer b.mu.RUnlock()

	rows := make([]match.Row, len(b.rows))
	copy(rows, b.rows)

	return rows
}

// Len returns the current number of rows
func (b *Bounded) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.rows)
}

// Capacity returns the fixed capacity
func (b *Bounded) Capacity() int {
	return b.capacity
}
