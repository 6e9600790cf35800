package commands

import (
	"errors"
	"fmt"

	"devconsole/internal/registry"
	"devconsole/pkg/contypes"
)

// ErrNoExecutor is returned by Context.Exec when the context was built
// outside a console pipeline.
var ErrNoExecutor = errors.New("nested execution is not available")

// Context is what a handler sees while it runs: its arguments, the
// registries, the exclusive host environment, and the output channel.
type Context struct {
	Name string
	Args contypes.Args
	// Raw is the source text of the invocation.
	Raw string

	Env        contypes.Environment
	Registry   *registry.Registry
	Handlers   *Store
	Aliases    *Aliases
	Permission contypes.PermissionLevel
	// Depth counts nested Exec and alias expansion levels.
	Depth int

	// Out receives every event the handler produces, in order.
	Out func(contypes.Event)
	// Executor runs a nested line immediately. Set by the console.
	Executor func(ctx *Context, line string) error
}

// Emit queues an arbitrary event.
func (c *Context) Emit(e contypes.Event) {
	if c.Out != nil {
		c.Out(e)
	}
}

// Print queues an info line.
func (c *Context) Print(text string) { c.Emit(contypes.Info(text)) }

// Printf queues a formatted info line.
func (c *Context) Printf(format string, args ...any) { c.Print(fmt.Sprintf(format, args...)) }

// Warnf queues a formatted warning.
func (c *Context) Warnf(format string, args ...any) {
	c.Emit(contypes.Warn(fmt.Sprintf(format, args...)))
}

// Errorf queues a formatted error line.
func (c *Context) Errorf(format string, args ...any) {
	c.Emit(contypes.Error(fmt.Sprintf(format, args...)))
}

// Exec runs line as if it had been typed, before the current handler returns.
// Running the current command again from inside itself fails with ErrReentrant.
func (c *Context) Exec(line string) error {
	if c.Executor == nil {
		return ErrNoExecutor
	}
	return c.Executor(c, line)
}

// Authorize checks that the context's permission level covers e.
func (c *Context) Authorize(e *registry.Entry) error {
	if !c.Permission.Allows(e.Permission()) {
		return contypes.NewEntryError("access", e.Name(),
			fmt.Errorf("%w: requires %s, have %s", contypes.ErrPermissionDenied, e.Permission(), c.Permission))
	}
	return nil
}
