// Package builtin provides the console's standard commands. They are thin
// handlers over registry operations.
package builtin

import (
	"strings"

	"devconsole/internal/commands"
	"devconsole/internal/registry"
)

// All returns the standard commands bound to the given registry and alias table.
func All(reg *registry.Registry, aliases *commands.Aliases) []commands.Command {
	return []commands.Command{
		&HelpCommand{reg: reg},
		&FindCommand{},
		&CvarlistCommand{reg: reg},
		&DifferencesCommand{},
		&EchoCommand{},
		&ClearCommand{},
		&ToggleCommand{reg: reg},
		&ResetCommand{reg: reg},
		&AliasCommand{aliases: aliases},
		&UnaliasCommand{aliases: aliases},
	}
}

// Register adds every standard command to reg and store.
func Register(reg *registry.Registry, store *commands.Store, aliases *commands.Aliases) error {
	for _, cmd := range All(reg, aliases) {
		if err := commands.Register(reg, store, cmd); err != nil {
			return err
		}
	}
	return nil
}

// completeNames lists the non-hidden names starting with partial. With
// varsOnly, commands are skipped.
func completeNames(reg *registry.Registry, partial string, varsOnly bool) []string {
	var out []string
	for e := range reg.LookupPrefix(partial) {
		if varsOnly && !e.IsVar() {
			continue
		}
		out = append(out, e.Name())
	}
	return out
}

func filterPrefix(names []string, prefix string) []string {
	var out []string
	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			out = append(out, n)
		}
	}
	return out
}
