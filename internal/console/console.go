// Package console drives the developer console: it owns the registry, the
// handler store and the event queues, and runs submitted text through the
// parse, execute and emit phases.
package console

import (
	"sync"

	"github.com/charmbracelet/log"

	"devconsole/internal/commands"
	"devconsole/internal/commands/builtin"
	"devconsole/internal/events"
	"devconsole/internal/logger"
	"devconsole/internal/parser"
	"devconsole/internal/registry"
	"devconsole/pkg/contypes"
)

// Console is the embeddable developer console.
//
// The host calls Parse, Execute and Emit in that order once per tick, or Tick
// to run all three. Execute is the only phase that touches the environment
// and is never run concurrently with itself.
type Console struct {
	config Config
	cheats registry.CheatsPredicate

	reg      *registry.Registry
	handlers *commands.Store
	aliases  *commands.Aliases
	output   *events.Queue
	sinks    events.Fanout

	mu      sync.Mutex // guards inputs, pending and config.Permission
	inputs  []contypes.InputEvent
	pending []parser.Invocation

	execMu sync.Mutex
	logger *log.Logger
}

// New creates a console with sv_cheats and the standard commands registered.
func New(opts ...Option) (*Console, error) {
	c := &Console{
		config:   DefaultConfig(),
		handlers: commands.NewStore(),
		aliases:  commands.NewAliases(),
		logger:   logger.NewStyledLogger("Pipeline"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.config.MaxDepth <= 0 {
		c.config.MaxDepth = commands.MaxAliasDepth
	}

	c.output = events.NewQueue(c.config.MaxEvents)
	c.output.OnDrop(func(e contypes.Event) {
		c.logger.Warn("Event queue full, dropped oldest event", "kind", e.Kind())
	})

	regOpts := []registry.Option{registry.WithEventQueue(c.output)}
	if c.cheats != nil {
		regOpts = append(regOpts, registry.WithCheatsPredicate(c.cheats))
	}
	c.reg = registry.New(regOpts...)

	if err := c.reg.RegisterVar(registry.NewVar(registry.CheatsVar, 0,
		registry.WithDescription("Enable cheat-protected commands and variables"),
		registry.WithRange(0, 1),
		registry.WithPermission(contypes.PermissionAdmin))); err != nil {
		return nil, err
	}
	if err := builtin.Register(c.reg, c.handlers, c.aliases); err != nil {
		return nil, err
	}
	return c, nil
}

// RegisterVar adds a variable.
func (c *Console) RegisterVar(cv *registry.ConVar) error {
	return c.reg.RegisterVar(cv)
}

// RegisterCommand adds a command's metadata and handler.
func (c *Console) RegisterCommand(cmd commands.Command) error {
	return commands.Register(c.reg, c.handlers, cmd)
}

// RegisterFunc adds a closure command.
func (c *Console) RegisterFunc(name, description string, run commands.Handler) error {
	return c.RegisterCommand(&commands.Func{CmdName: name, CmdDescription: description, Run: run})
}

// Subscribe adds a sink that receives every emitted event.
func (c *Console) Subscribe(s events.Sink) { c.sinks.Add(s) }

// Registry returns the console's registry.
func (c *Console) Registry() *registry.Registry { return c.reg }

// Handlers returns the console's handler store.
func (c *Console) Handlers() *commands.Store { return c.handlers }

// Aliases returns the console's alias table.
func (c *Console) Aliases() *commands.Aliases { return c.aliases }

// Config returns a copy of the current configuration.
func (c *Console) Config() Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.config
}

// Permission returns the current permission level.
func (c *Console) Permission() contypes.PermissionLevel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.config.Permission
}

// SetPermission changes the level applied to subsequent invocations.
func (c *Console) SetPermission(level contypes.PermissionLevel) {
	c.mu.Lock()
	c.config.Permission = level
	c.mu.Unlock()
}

// Dropped returns how many output events were evicted by the queue bound.
func (c *Console) Dropped() uint64 { return c.output.Dropped() }
