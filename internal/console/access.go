package console

import (
	"fmt"

	"devconsole/internal/registry"
	"devconsole/pkg/contypes"
)

// checkAccess enforces the cheat gate on commands and the permission level
// on every mutation. Variables get their cheat check from the registry's Set.
func (c *Console) checkAccess(e *registry.Entry, level contypes.PermissionLevel) error {
	if e.IsCommand() && e.Flags().Has(contypes.FlagCheat) && !c.reg.CheatsEnabled() {
		return fmt.Errorf("requires %s to be enabled: %w", registry.CheatsVar, contypes.ErrCheatsDisabled)
	}
	if !level.Allows(e.Permission()) {
		return fmt.Errorf("%w: requires %s, have %s", contypes.ErrPermissionDenied, e.Permission(), level)
	}
	return nil
}
