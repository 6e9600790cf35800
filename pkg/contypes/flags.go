// Package contypes defines the shared types of the developer console.
// This file contains the entry flag bitset consulted by the registry,
// the enumeration paths and the persistence boundary.
package contypes

import "strings"

// Flags is a combinable set of boolean capabilities attached to a ConVar or command.
// Flags combine freely; every operation checks only the bits it cares about.
type Flags uint32

// FlagNone is the empty flag set.
const FlagNone Flags = 0

const (
	// FlagArchive marks an entry as eligible for persistence.
	FlagArchive Flags = 1 << iota
	// FlagCheat gates mutation and execution behind the cheats predicate.
	FlagCheat
	// FlagReadOnly rejects every Set.
	FlagReadOnly
	// FlagHidden excludes the entry from prefix, fuzzy and listing enumeration.
	FlagHidden
	// FlagNotify marks change events for presentation-layer notification.
	FlagNotify
	// FlagDevOnly is advisory; enforcement belongs to the host.
	FlagDevOnly
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagArchive, "archive"},
	{FlagCheat, "cheat"},
	{FlagReadOnly, "readonly"},
	{FlagHidden, "hidden"},
	{FlagNotify, "notify"},
	{FlagDevOnly, "devonly"},
}

// Has reports whether every bit of other is set in f.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

// With returns f with the bits of other added.
func (f Flags) With(other Flags) Flags {
	return f | other
}

// Without returns f with the bits of other cleared.
func (f Flags) Without(other Flags) Flags {
	return f &^ other
}

// String renders the set as a pipe separated list, e.g. "archive|notify".
func (f Flags) String() string {
	if f == FlagNone {
		return "none"
	}
	var parts []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}
