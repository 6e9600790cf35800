package builtin

import (
	"devconsole/internal/commands"
)

// DifferencesCommand implements differences, listing variables not at their default.
type DifferencesCommand struct{}

// Name returns the command name "differences" for registration and lookup.
func (c *DifferencesCommand) Name() string { return "differences" }

// Description returns a brief description of what the differences command does.
func (c *DifferencesCommand) Description() string {
	return "Show convars with non-default values"
}

// Usage returns the syntax of the differences command.
func (c *DifferencesCommand) Usage() string { return "differences" }

// Execute prints each modified variable with its default.
func (c *DifferencesCommand) Execute(ctx *commands.Context) error {
	modified := ctx.Registry.Differences()
	for _, cv := range modified {
		ctx.Printf("%s = %q (default: %q)", cv.Name(), cv.Value().String(), cv.Default().String())
	}
	if len(modified) == 0 {
		ctx.Print("No modified convars")
		return nil
	}
	ctx.Printf("%d modified convars", len(modified))
	return nil
}
