package builtin

import (
	"devconsole/internal/commands"
	"devconsole/pkg/contypes"
)

// EchoCommand implements echo.
type EchoCommand struct{}

// Name returns the command name "echo" for registration and lookup.
func (c *EchoCommand) Name() string { return "echo" }

// Description returns a brief description of what the echo command does.
func (c *EchoCommand) Description() string { return "Print text to console" }

// Usage returns the syntax of the echo command.
func (c *EchoCommand) Usage() string { return "echo <text>" }

// Execute prints the arguments joined by spaces.
func (c *EchoCommand) Execute(ctx *commands.Context) error {
	ctx.Print(ctx.Args.Join())
	return nil
}

// ClearCommand implements clear.
type ClearCommand struct{}

// Name returns the command name "clear" for registration and lookup.
func (c *ClearCommand) Name() string { return "clear" }

// Description returns a brief description of what the clear command does.
func (c *ClearCommand) Description() string { return "Clear console output" }

// Usage returns the syntax of the clear command.
func (c *ClearCommand) Usage() string { return "clear" }

// Execute queues a clear event for the presentation layer.
func (c *ClearCommand) Execute(ctx *commands.Context) error {
	ctx.Emit(contypes.ClearEvent{})
	return nil
}
