package builtin

import (
	"devconsole/internal/commands"
)

// FindCommand implements find, a substring search over names and descriptions.
type FindCommand struct{}

// Name returns the command name "find" for registration and lookup.
func (c *FindCommand) Name() string { return "find" }

// Description returns a brief description of what the find command does.
func (c *FindCommand) Description() string {
	return "Search commands and variables by name or description"
}

// Usage returns the syntax of the find command.
func (c *FindCommand) Usage() string { return "find <search term>" }

// Execute lists every match as "[kind] name - description", then a count.
func (c *FindCommand) Execute(ctx *commands.Context) error {
	if ctx.Args.Empty() {
		ctx.Warnf("Usage: %s", c.Usage())
		return nil
	}

	results := ctx.Registry.Search(ctx.Args.Join())
	for _, e := range results {
		if desc := e.Description(); desc != "" {
			ctx.Printf("[%s] %s - %s", e.Kind, e.Name(), desc)
		} else {
			ctx.Printf("[%s] %s", e.Kind, e.Name())
		}
	}
	ctx.Printf("%d results", len(results))
	return nil
}
