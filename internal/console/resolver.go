package console

import (
	"fmt"

	"devconsole/internal/registry"
	"devconsole/pkg/contypes"
)

// resolution is what a name refers to: a registry entry or an alias expansion.
type resolution struct {
	entry *registry.Entry
	alias string
}

// resolve looks name up in the registry, then in the alias table. DEV_ONLY
// entries resolve only in dev mode.
func (c *Console) resolve(name string) (resolution, error) {
	if e, ok := c.reg.Lookup(name); ok {
		if e.Flags().Has(contypes.FlagDevOnly) && !c.config.DevMode {
			return resolution{}, unknown(name)
		}
		return resolution{entry: e}, nil
	}
	if expansion, ok := c.aliases.Get(name); ok {
		return resolution{alias: expansion}, nil
	}
	return resolution{}, unknown(name)
}

// UnknownError reports a name that is neither registered nor an alias.
type UnknownError struct {
	Name string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("Unknown command or variable: '%s'", e.Name)
}

func (e *UnknownError) Unwrap() error { return contypes.ErrNotFound }

func unknown(name string) error {
	return &UnknownError{Name: name}
}
