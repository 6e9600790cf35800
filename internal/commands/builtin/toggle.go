package builtin

import (
	"devconsole/internal/commands"
	"devconsole/internal/registry"
)

// ToggleCommand implements toggle for boolean and integer variables.
type ToggleCommand struct {
	reg *registry.Registry
}

// Name returns the command name "toggle" for registration and lookup.
func (c *ToggleCommand) Name() string { return "toggle" }

// Description returns a brief description of what the toggle command does.
func (c *ToggleCommand) Description() string { return "Toggle a boolean convar" }

// Usage returns the syntax of the toggle command.
func (c *ToggleCommand) Usage() string { return "toggle <convar>" }

// Execute flips the variable and prints its new value.
func (c *ToggleCommand) Execute(ctx *commands.Context) error {
	name, ok := ctx.Args.Get(0)
	if !ok {
		ctx.Warnf("Usage: %s", c.Usage())
		return nil
	}
	if e, found := ctx.Registry.Lookup(name); found {
		if err := ctx.Authorize(e); err != nil {
			return err
		}
	}
	v, err := ctx.Registry.Toggle(name)
	if err != nil {
		return err
	}
	ctx.Printf("%s = %s", name, v)
	return nil
}

// Complete proposes variable names.
func (c *ToggleCommand) Complete(partial string) []string {
	return completeNames(c.reg, partial, true)
}

// ResetCommand implements reset.
type ResetCommand struct {
	reg *registry.Registry
}

// Name returns the command name "reset" for registration and lookup.
func (c *ResetCommand) Name() string { return "reset" }

// Description returns a brief description of what the reset command does.
func (c *ResetCommand) Description() string { return "Reset a convar to its default value" }

// Usage returns the syntax of the reset command.
func (c *ResetCommand) Usage() string { return "reset <convar>" }

// Execute restores the default and prints it.
func (c *ResetCommand) Execute(ctx *commands.Context) error {
	name, ok := ctx.Args.Get(0)
	if !ok {
		ctx.Warnf("Usage: %s", c.Usage())
		return nil
	}
	e, found := ctx.Registry.Lookup(name)
	if !found || !e.IsVar() {
		ctx.Warnf("Unknown variable: %s", name)
		return nil
	}
	if err := ctx.Authorize(e); err != nil {
		return err
	}
	if err := ctx.Registry.Reset(name); err != nil {
		return err
	}
	ctx.Printf("%s reset to %q", name, e.Var.Value().String())
	return nil
}

// Complete proposes variable names.
func (c *ResetCommand) Complete(partial string) []string {
	return completeNames(c.reg, partial, true)
}
