package registry

import "devconsole/pkg/contypes"

// EntryID identifies a registry entry for the lifetime of the process.
type EntryID int

// EntryKind discriminates variables from commands.
type EntryKind int

const (
	EntryVar EntryKind = iota
	EntryCommand
)

func (k EntryKind) String() string {
	if k == EntryVar {
		return "var"
	}
	return "cmd"
}

// CommandMeta is the descriptive half of a console command. The behavior
// lives in the command handler store under the same name.
type CommandMeta struct {
	Name        string
	Description string
	Usage       string
	Flags       contypes.Flags
	Permission  contypes.PermissionLevel
}

// Entry is one registered name: exactly one of Var or Command is set.
type Entry struct {
	ID      EntryID
	Kind    EntryKind
	Var     *ConVar
	Command *CommandMeta
}

// Name returns the entry's name.
func (e *Entry) Name() string {
	if e.Var != nil {
		return e.Var.Name()
	}
	return e.Command.Name
}

// Description returns the help text.
func (e *Entry) Description() string {
	if e.Var != nil {
		return e.Var.Description()
	}
	return e.Command.Description
}

// Flags returns the entry's flags.
func (e *Entry) Flags() contypes.Flags {
	if e.Var != nil {
		return e.Var.Flags()
	}
	return e.Command.Flags
}

// Permission returns the level required to mutate or execute.
func (e *Entry) Permission() contypes.PermissionLevel {
	if e.Var != nil {
		return e.Var.Permission()
	}
	return e.Command.Permission
}

// IsVar reports whether the entry is a variable.
func (e *Entry) IsVar() bool { return e.Kind == EntryVar }

// IsCommand reports whether the entry is a command.
func (e *Entry) IsCommand() bool { return e.Kind == EntryCommand }

// Hidden reports whether enumeration skips the entry.
func (e *Entry) Hidden() bool { return e.Flags().Has(contypes.FlagHidden) }
