// Package events holds the ordered event queue between the execute and emit
// phases, and the sinks that consume flushed events.
package events

import (
	"sync"

	"devconsole/pkg/contypes"
)

// DefaultMaxEvents bounds a queue created with a negative size.
const DefaultMaxEvents = 4096

// Queue is a FIFO of console events. When full, the oldest event is dropped
// and counted. It is safe for concurrent use.
type Queue struct {
	mu      sync.Mutex
	items   []contypes.Event
	max     int
	dropped uint64
	onDrop  func(contypes.Event)
}

// NewQueue creates a queue holding at most max events. Zero means unbounded;
// a negative max selects DefaultMaxEvents.
func NewQueue(max int) *Queue {
	if max < 0 {
		max = DefaultMaxEvents
	}
	return &Queue{max: max}
}

// OnDrop registers a callback invoked, outside the lock, for each evicted event.
func (q *Queue) OnDrop(fn func(contypes.Event)) {
	q.mu.Lock()
	q.onDrop = fn
	q.mu.Unlock()
}

// Push appends e, evicting the oldest event when the queue is full.
func (q *Queue) Push(e contypes.Event) {
	q.mu.Lock()
	var evicted contypes.Event
	if q.max > 0 && len(q.items) >= q.max {
		evicted = q.items[0]
		q.items[0] = nil
		q.items = q.items[1:]
		q.dropped++
	}
	q.items = append(q.items, e)
	onDrop := q.onDrop
	q.mu.Unlock()

	if evicted != nil && onDrop != nil {
		onDrop(evicted)
	}
}

// Drain removes and returns every queued event in push order.
func (q *Queue) Drain() []contypes.Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Dropped returns how many events were evicted since creation.
func (q *Queue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

// Cap returns the configured bound, zero for unbounded.
func (q *Queue) Cap() int { return q.max }
