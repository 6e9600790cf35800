package console

import (
	"errors"
	"fmt"
	"strings"

	"devconsole/internal/commands"
	"devconsole/internal/logger"
	"devconsole/internal/parser"
	"devconsole/internal/registry"
	"devconsole/pkg/contypes"
)

// ErrTooDeep is returned when alias expansion or nested execution exceeds MaxDepth.
var ErrTooDeep = errors.New("expansion too deep")

// PanicError reports a handler that panicked. The handler was still reinserted.
type PanicError struct {
	Command string
	Value   any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("Command '%s' panicked: %v", e.Command, e.Value)
}

// run carries the state of one execute pass: the environment, the caller's
// permission, and where per-invocation errors go.
type run struct {
	console    *Console
	env        contypes.Environment
	permission contypes.PermissionLevel
	onError    func(error)
}

// dispatch executes one invocation and routes its error to onError.
func (r *run) dispatch(inv parser.Invocation, depth int) {
	if err := r.execute(inv, depth); err != nil {
		r.onError(err)
	}
}

func (r *run) execute(inv parser.Invocation, depth int) error {
	c := r.console
	name, args := inv.Name(), inv.Args()

	res, err := c.resolve(name)
	if err != nil {
		return err
	}
	switch {
	case res.alias != "":
		return r.expandAlias(name, res.alias, args, depth)
	case res.entry.IsVar():
		return r.variable(res.entry, args)
	default:
		return r.command(res.entry, inv, depth)
	}
}

// variable queries with no arguments and sets otherwise.
func (r *run) variable(e *registry.Entry, args []string) error {
	c := r.console
	cv := e.Var
	if len(args) == 0 {
		c.output.Push(contypes.Info(fmt.Sprintf("%q = %q", cv.Name(), cv.Value().String())))
		if desc := cv.Description(); desc != "" {
			c.output.Push(contypes.Info(" - " + desc))
		}
		return nil
	}

	if err := c.checkAccess(e, r.permission); err != nil {
		return fmt.Errorf("Cannot set '%s': %w", cv.Name(), err)
	}
	if err := c.reg.SetString(cv.Name(), strings.Join(args, " ")); err != nil {
		return fmt.Errorf("Cannot set '%s': %w", cv.Name(), err)
	}
	c.output.Push(contypes.Info(fmt.Sprintf("%q = %q", cv.Name(), cv.Value().String())))
	return nil
}

// command takes the handler out of the store, runs it, and puts it back
// whether it returned, failed or panicked.
func (r *run) command(e *registry.Entry, inv parser.Invocation, depth int) (err error) {
	c := r.console
	name := e.Name()
	if err := c.checkAccess(e, r.permission); err != nil {
		return fmt.Errorf("Cannot execute '%s': %w", name, err)
	}

	h, err := c.handlers.Take(name)
	if err != nil {
		return err
	}
	defer func() {
		c.handlers.Put(name, h)
		if v := recover(); v != nil {
			c.logger.Error("Handler panicked", "command", name, "error", v)
			err = &PanicError{Command: name, Value: v}
		}
	}()

	logger.CommandExecution(name, inv.Args())
	ctx := &commands.Context{
		Name:       name,
		Args:       contypes.NewArgs(inv.Args()),
		Raw:        inv.Raw,
		Env:        r.env,
		Registry:   c.reg,
		Handlers:   c.handlers,
		Aliases:    c.aliases,
		Permission: r.permission,
		Depth:      depth,
		Out:        c.output.Push,
		Executor:   r.nested,
	}
	return h(ctx)
}

// nested runs line from inside a handler. Errors are collected and returned
// to the handler instead of being reported.
func (r *run) nested(ctx *commands.Context, line string) error {
	if ctx.Depth+1 > r.console.config.MaxDepth {
		return fmt.Errorf("%w: nested execution of %q", ErrTooDeep, line)
	}
	var errs []error
	inner := &run{
		console:    r.console,
		env:        r.env,
		permission: r.permission,
		onError:    func(err error) { errs = append(errs, err) },
	}
	invs, _ := parser.TokenizeDetailed(line)
	for _, inv := range invs {
		inner.dispatch(inv, ctx.Depth+1)
	}
	return errors.Join(errs...)
}

// expandAlias tokenizes the expansion, appends the caller's arguments to its
// last invocation, and runs the result in place.
func (r *run) expandAlias(name, expansion string, args []string, depth int) error {
	if depth+1 > r.console.config.MaxDepth {
		return fmt.Errorf("%w: alias '%s' exceeds %d levels", ErrTooDeep, name, r.console.config.MaxDepth)
	}
	invs, _ := parser.TokenizeDetailed(expansion)
	if len(invs) > 0 && len(args) > 0 {
		last := &invs[len(invs)-1]
		last.Tokens = append(last.Tokens, args...)
		last.Raw = strings.TrimSpace(last.Raw + " " + parser.Quote(args))
	}
	r.console.logger.Debug("Expanding alias", "name", name, "depth", depth+1)
	for _, inv := range invs {
		r.dispatch(inv, depth+1)
	}
	return nil
}
