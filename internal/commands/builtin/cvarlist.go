package builtin

import (
	"devconsole/internal/commands"
	"devconsole/internal/registry"
)

// CvarlistCommand implements cvarlist, listing variables with an optional prefix.
type CvarlistCommand struct {
	reg *registry.Registry
}

// Name returns the command name "cvarlist" for registration and lookup.
func (c *CvarlistCommand) Name() string { return "cvarlist" }

// Description returns a brief description of what the cvarlist command does.
func (c *CvarlistCommand) Description() string { return "List console variables" }

// Usage returns the syntax of the cvarlist command.
func (c *CvarlistCommand) Usage() string { return "cvarlist [prefix]" }

// Execute prints `name = "value"` per variable, with a * after modified
// names, then a count.
func (c *CvarlistCommand) Execute(ctx *commands.Context) error {
	vars := ctx.Registry.Vars(ctx.Args.GetOr(0, ""))
	for _, cv := range vars {
		mark := ""
		if cv.Modified() {
			mark = "*"
		}
		ctx.Printf("%s%s = %q", cv.Name(), mark, cv.Value().String())
	}
	ctx.Printf("%d convars", len(vars))
	return nil
}

// Complete proposes variable names as prefixes.
func (c *CvarlistCommand) Complete(partial string) []string {
	return completeNames(c.reg, partial, true)
}
