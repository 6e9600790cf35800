package builtin

import (
	"fmt"

	"devconsole/internal/commands"
	"devconsole/internal/registry"
	"devconsole/pkg/contypes"
)

// AliasCommand implements alias: list, show, or define.
type AliasCommand struct {
	aliases *commands.Aliases
}

// Name returns the command name "alias" for registration and lookup.
func (c *AliasCommand) Name() string { return "alias" }

// Description returns a brief description of what the alias command does.
func (c *AliasCommand) Description() string { return "Create or list command aliases" }

// Usage returns the syntax of the alias command.
func (c *AliasCommand) Usage() string { return "alias [name [command...]]" }

// Execute lists every alias, shows one, or defines one from the remaining
// arguments. Alias names may not shadow registered names.
func (c *AliasCommand) Execute(ctx *commands.Context) error {
	name, ok := ctx.Args.Get(0)
	if !ok {
		names := c.aliases.Names()
		if len(names) == 0 {
			ctx.Print("No aliases defined")
			return nil
		}
		ctx.Print("Aliases:")
		for _, n := range names {
			expansion, _ := c.aliases.Get(n)
			ctx.Printf("  %s -> %s", n, expansion)
		}
		return nil
	}

	if ctx.Args.Len() == 1 {
		expansion, found := c.aliases.Get(name)
		if !found {
			ctx.Warnf("Alias '%s' not found", name)
			return nil
		}
		ctx.Printf("%s -> %s", name, expansion)
		return nil
	}

	if err := registry.ValidateName(name); err != nil {
		return contypes.NewEntryError("alias", name, err)
	}
	if ctx.Registry.Has(name) {
		return contypes.NewEntryError("alias", name,
			fmt.Errorf("%w: %s is a command or variable", contypes.ErrDuplicateName, name))
	}
	expansion := ctx.Args.JoinFrom(1)
	c.aliases.Set(name, expansion)
	ctx.Printf("Alias '%s' set to '%s'", name, expansion)
	return nil
}

// Complete proposes alias names.
func (c *AliasCommand) Complete(partial string) []string {
	return filterPrefix(c.aliases.Names(), partial)
}

// UnaliasCommand implements unalias.
type UnaliasCommand struct {
	aliases *commands.Aliases
}

// Name returns the command name "unalias" for registration and lookup.
func (c *UnaliasCommand) Name() string { return "unalias" }

// Description returns a brief description of what the unalias command does.
func (c *UnaliasCommand) Description() string { return "Remove a command alias" }

// Usage returns the syntax of the unalias command.
func (c *UnaliasCommand) Usage() string { return "unalias <name>" }

// Execute removes the named alias.
func (c *UnaliasCommand) Execute(ctx *commands.Context) error {
	name, ok := ctx.Args.Get(0)
	if !ok {
		ctx.Warnf("Usage: %s", c.Usage())
		return nil
	}
	if c.aliases.Remove(name) {
		ctx.Printf("Removed alias '%s'", name)
		return nil
	}
	ctx.Warnf("Alias '%s' not found", name)
	return nil
}

// Complete proposes alias names.
func (c *UnaliasCommand) Complete(partial string) []string {
	return filterPrefix(c.aliases.Names(), partial)
}
