package events

import (
	"sync"

	"devconsole/pkg/contypes"
)

// Sink receives events flushed by the emit phase, one at a time and in order.
type Sink interface {
	Handle(e contypes.Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(e contypes.Event)

// Handle implements Sink.
func (f SinkFunc) Handle(e contypes.Event) { f(e) }

// Collector is a Sink that records everything it receives.
type Collector struct {
	mu     sync.Mutex
	events []contypes.Event
}

// Handle implements Sink.
func (c *Collector) Handle(e contypes.Event) {
	c.mu.Lock()
	c.events = append(c.events, e)
	c.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (c *Collector) Events() []contypes.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]contypes.Event(nil), c.events...)
}

// Outputs returns the text of every recorded output event.
func (c *Collector) Outputs() []string {
	var out []string
	for _, e := range c.Events() {
		if o, ok := e.(contypes.OutputEvent); ok {
			out = append(out, o.Text)
		}
	}
	return out
}

// Reset forgets every recorded event.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.events = nil
	c.mu.Unlock()
}

// Fanout delivers each event to every sink in registration order.
type Fanout struct {
	mu    sync.RWMutex
	sinks []Sink
}

// Add registers a sink.
func (f *Fanout) Add(s Sink) {
	f.mu.Lock()
	f.sinks = append(f.sinks, s)
	f.mu.Unlock()
}

// Handle implements Sink.
func (f *Fanout) Handle(e contypes.Event) {
	f.mu.RLock()
	sinks := f.sinks
	f.mu.RUnlock()
	for _, s := range sinks {
		s.Handle(e)
	}
}

// Len returns the number of sinks.
func (f *Fanout) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.sinks)
}
