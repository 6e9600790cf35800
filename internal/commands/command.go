// Package commands provides console command definitions, the handler store
// that executes them, and the context passed to every handler.
package commands

import (
	"devconsole/internal/registry"
	"devconsole/pkg/contypes"
)

// Handler is the executable behavior of a command. A returned error becomes
// one error-level output line.
type Handler func(ctx *Context) error

// CompleterFunc proposes argument values for a partially typed argument.
type CompleterFunc func(partial string) []string

// Command is a registrable console command.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Execute(ctx *Context) error
}

// Flagged is implemented by commands that carry flags or a permission level.
type Flagged interface {
	Flags() contypes.Flags
	Permission() contypes.PermissionLevel
}

// Completer is implemented by commands that complete their arguments.
type Completer interface {
	Complete(partial string) []string
}

// Func is a Command built from a closure. It is how hosts add commands
// without declaring a type.
type Func struct {
	CmdName        string
	CmdDescription string
	CmdUsage       string
	CmdFlags       contypes.Flags
	CmdPermission  contypes.PermissionLevel
	Run            Handler
	CompleteArg    CompleterFunc
}

func (f *Func) Name() string                         { return f.CmdName }
func (f *Func) Description() string                  { return f.CmdDescription }
func (f *Func) Usage() string                        { return f.CmdUsage }
func (f *Func) Flags() contypes.Flags                { return f.CmdFlags }
func (f *Func) Permission() contypes.PermissionLevel { return f.CmdPermission }

// Execute runs the closure.
func (f *Func) Execute(ctx *Context) error { return f.Run(ctx) }

// Complete delegates to CompleteArg when set.
func (f *Func) Complete(partial string) []string {
	if f.CompleteArg == nil {
		return nil
	}
	return f.CompleteArg(partial)
}

// Meta extracts the registry metadata of cmd.
func Meta(cmd Command) registry.CommandMeta {
	meta := registry.CommandMeta{
		Name:        cmd.Name(),
		Description: cmd.Description(),
		Usage:       cmd.Usage(),
	}
	if f, ok := cmd.(Flagged); ok {
		meta.Flags = f.Flags()
		meta.Permission = f.Permission()
	}
	return meta
}

// Register records cmd's metadata in reg and its handler in store. The
// registry rejects duplicates first, so a failed call leaves the store untouched.
func Register(reg *registry.Registry, store *Store, cmd Command) error {
	if err := reg.RegisterCommand(Meta(cmd)); err != nil {
		return err
	}
	var complete CompleterFunc
	if c, ok := cmd.(Completer); ok {
		complete = c.Complete
	}
	if f, ok := cmd.(*Func); ok && f.CompleteArg == nil {
		complete = nil
	}
	return store.Register(cmd.Name(), cmd.Execute, complete)
}
