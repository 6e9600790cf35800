package console

import (
	"devconsole/internal/commands"
	"devconsole/internal/registry"
	"devconsole/pkg/contypes"
)

// Config holds the console's behavior switches.
type Config struct {
	// EchoCommands queues "] <invocation>" for each parsed invocation.
	EchoCommands bool
	// DevMode makes DEV_ONLY entries resolvable.
	DevMode bool
	// Permission is the caller's current level.
	Permission contypes.PermissionLevel
	// MaxPending bounds waiting inputs plus parsed invocations; zero is unbounded.
	MaxPending int
	// MaxEvents bounds the output event queue; zero is unbounded.
	MaxEvents int
	// MaxDepth bounds alias expansion and nested execution.
	MaxDepth int
}

// DefaultConfig returns the configuration used by New.
func DefaultConfig() Config {
	return Config{
		EchoCommands: false,
		DevMode:      true,
		Permission:   contypes.PermissionServer,
		MaxPending:   1024,
		MaxEvents:    4096,
		MaxDepth:     commands.MaxAliasDepth,
	}
}

// Option configures a Console.
type Option func(*Console)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Console) { c.config = cfg }
}

// WithEchoCommands toggles command echo.
func WithEchoCommands(enabled bool) Option {
	return func(c *Console) { c.config.EchoCommands = enabled }
}

// WithDevMode toggles resolution of DEV_ONLY entries.
func WithDevMode(enabled bool) Option {
	return func(c *Console) { c.config.DevMode = enabled }
}

// WithPermission sets the initial permission level.
func WithPermission(level contypes.PermissionLevel) Option {
	return func(c *Console) { c.config.Permission = level }
}

// WithMaxPending bounds the input side; Submit fails with ErrQueueFull beyond it.
func WithMaxPending(n int) Option {
	return func(c *Console) { c.config.MaxPending = n }
}

// WithMaxEvents bounds the output side; the oldest event is dropped beyond it.
func WithMaxEvents(n int) Option {
	return func(c *Console) { c.config.MaxEvents = n }
}

// WithCheatsPredicate replaces the default sv_cheats check.
func WithCheatsPredicate(p registry.CheatsPredicate) Option {
	return func(c *Console) { c.cheats = p }
}
