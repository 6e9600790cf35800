package builtin

import (
	"devconsole/internal/commands"
	"devconsole/internal/registry"
	"devconsole/pkg/contypes"
)

// HelpCommand implements help: a command list, or details for one entry.
type HelpCommand struct {
	reg *registry.Registry
}

// Name returns the command name "help" for registration and lookup.
func (c *HelpCommand) Name() string { return "help" }

// Description returns a brief description of what the help command does.
func (c *HelpCommand) Description() string {
	return "Show help for a command or list all commands"
}

// Usage returns the syntax of the help command.
func (c *HelpCommand) Usage() string { return "help [name]" }

// Execute prints the command list, or the description, usage and values of
// the named entry.
func (c *HelpCommand) Execute(ctx *commands.Context) error {
	name, ok := ctx.Args.Get(0)
	if !ok {
		ctx.Print("Commands:")
		for _, meta := range ctx.Registry.Commands() {
			ctx.Printf("  %s", meta.Name)
		}
		ctx.Print("Use 'help <name>' for details, 'cvarlist' for variables")
		return nil
	}

	e, found := ctx.Registry.Lookup(name)
	if !found {
		ctx.Warnf("Unknown command or variable: %s", name)
		return nil
	}

	desc := e.Description()
	if desc == "" {
		desc = "No description"
	}
	ctx.Printf("%s - %s", name, desc)

	if e.IsCommand() && e.Command.Usage != "" {
		ctx.Printf("  Usage: %s", e.Command.Usage)
	}
	if e.IsVar() {
		ctx.Printf("  Current: %s", e.Var.Value())
		ctx.Printf("  Default: %s", e.Var.Default())
		if rng := e.Var.RangeString(); rng != "" {
			ctx.Printf("  Range: %s", rng)
		}
	}
	if f := e.Flags(); f != contypes.FlagNone {
		ctx.Printf("  Flags: %s", f)
	}
	if p := e.Permission(); p != contypes.PermissionUser {
		ctx.Printf("  Requires: %s", p)
	}
	return nil
}

// Complete proposes entry names.
func (c *HelpCommand) Complete(partial string) []string {
	return completeNames(c.reg, partial, false)
}
