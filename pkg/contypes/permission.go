package contypes

import (
	"fmt"
	"strings"
)

// PermissionLevel is the privilege required to mutate a variable or run a command.
type PermissionLevel int

const (
	// PermissionUser is the lowest level, granted to every operator.
	PermissionUser PermissionLevel = iota
	// PermissionAdmin gates administrative variables such as sv_cheats.
	PermissionAdmin
	// PermissionServer is the host itself and may do anything.
	PermissionServer
)

// String returns the lowercase level name.
func (p PermissionLevel) String() string {
	switch p {
	case PermissionUser:
		return "user"
	case PermissionAdmin:
		return "admin"
	case PermissionServer:
		return "server"
	default:
		return fmt.Sprintf("permission(%d)", int(p))
	}
}

// Allows reports whether a caller at level p may touch something requiring required.
func (p PermissionLevel) Allows(required PermissionLevel) bool {
	return p >= required
}

// ParsePermission parses a level name as written in configuration.
func ParsePermission(s string) (PermissionLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user":
		return PermissionUser, nil
	case "admin":
		return PermissionAdmin, nil
	case "server", "":
		return PermissionServer, nil
	}
	return PermissionServer, fmt.Errorf("invalid permission level %q (want user, admin or server)", s)
}
