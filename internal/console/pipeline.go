package console

import (
	"fmt"

	"devconsole/internal/parser"
	"devconsole/pkg/contypes"
)

// Submit queues one line of raw input for the next Parse. It fails with
// ErrQueueFull when MaxPending inputs and invocations are already waiting.
func (c *Console) Submit(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if max := c.config.MaxPending; max > 0 && len(c.inputs)+len(c.pending) >= max {
		return fmt.Errorf("%w: %d pending", contypes.ErrQueueFull, max)
	}
	c.inputs = append(c.inputs, contypes.NewInputEvent(text))
	return nil
}

// Pending returns the number of waiting inputs plus parsed invocations.
func (c *Console) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.inputs) + len(c.pending)
}

// Parse drains submitted input, tokenizes it and appends the invocations to
// the pending queue in input order. It returns how many were queued.
func (c *Console) Parse() int {
	c.mu.Lock()
	inputs := c.inputs
	c.inputs = nil
	echo := c.config.EchoCommands
	c.mu.Unlock()

	var parsed []parser.Invocation
	for _, in := range inputs {
		invs, warnings := parser.TokenizeDetailed(in.Text)
		c.logger.Debug("Parsed input", "id", in.ID, "input", in.Text, "invocations", len(invs))
		for _, w := range warnings {
			c.output.Push(contypes.Warn(fmt.Sprintf("Parse warning: %v", w)))
		}
		for _, inv := range invs {
			if echo {
				c.output.Push(contypes.OutputEvent{Text: "] " + inv.Raw, Level: contypes.LevelCommand})
			}
			parsed = append(parsed, inv)
		}
	}

	c.mu.Lock()
	c.pending = append(c.pending, parsed...)
	c.mu.Unlock()
	return len(parsed)
}

// Execute runs every pending invocation against env, in order. A failing
// invocation becomes an error output and the batch continues. It returns
// how many invocations ran.
func (c *Console) Execute(env contypes.Environment) int {
	c.execMu.Lock()
	defer c.execMu.Unlock()

	c.mu.Lock()
	batch := c.pending
	c.pending = nil
	perm := c.config.Permission
	c.mu.Unlock()

	r := &run{console: c, env: env, permission: perm, onError: c.reportError}
	for _, inv := range batch {
		r.dispatch(inv, 0)
	}
	return len(batch)
}

// Emit delivers every queued event to the subscribed sinks in the order the
// events were produced. It returns how many were delivered.
func (c *Console) Emit() int {
	evs := c.output.Drain()
	for _, e := range evs {
		c.sinks.Handle(e)
	}
	return len(evs)
}

// Tick runs Parse, Execute and Emit once.
func (c *Console) Tick(env contypes.Environment) {
	c.Parse()
	c.Execute(env)
	c.Emit()
}

// Process submits text and runs one tick.
func (c *Console) Process(env contypes.Environment, text string) error {
	if err := c.Submit(text); err != nil {
		return err
	}
	c.Tick(env)
	return nil
}

func (c *Console) reportError(err error) {
	c.output.Push(contypes.Error(err.Error()))
}
