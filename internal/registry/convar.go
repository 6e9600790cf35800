package registry

import (
	"fmt"
	"math"
	"sync"

	"devconsole/pkg/contypes"
)

// ConVar is a named, typed console variable. Its kind is fixed at creation.
// Name, description, flags, permission and constraints never change after
// registration; the value is guarded by the ConVar's own lock.
type ConVar struct {
	name        string
	description string
	flags       contypes.Flags
	permission  contypes.PermissionLevel
	kind        contypes.Kind
	def         contypes.Value
	min, max    float64
	hasMin      bool
	hasMax      bool

	mu    sync.RWMutex
	value contypes.Value
}

// VarOption configures a ConVar under construction.
type VarOption func(*ConVar)

// WithDescription sets the help text.
func WithDescription(desc string) VarOption {
	return func(cv *ConVar) { cv.description = desc }
}

// WithFlags adds flags.
func WithFlags(flags contypes.Flags) VarOption {
	return func(cv *ConVar) { cv.flags = cv.flags.With(flags) }
}

// WithRange constrains numeric values to [min, max].
func WithRange(min, max float64) VarOption {
	return func(cv *ConVar) {
		cv.min, cv.hasMin = min, true
		cv.max, cv.hasMax = max, true
	}
}

// WithMin sets only a lower bound.
func WithMin(min float64) VarOption {
	return func(cv *ConVar) { cv.min, cv.hasMin = min, true }
}

// WithMax sets only an upper bound.
func WithMax(max float64) VarOption {
	return func(cv *ConVar) { cv.max, cv.hasMax = max, true }
}

// WithPermission sets the level needed to change the variable.
func WithPermission(level contypes.PermissionLevel) VarOption {
	return func(cv *ConVar) { cv.permission = level }
}

// NewVar creates a variable whose kind follows the Go type of def.
func NewVar[T contypes.Primitive](name string, def T, opts ...VarOption) *ConVar {
	return NewVarValue(name, contypes.ValueOf(def), opts...)
}

// NewVarValue creates a variable from an already built default value.
func NewVarValue(name string, def contypes.Value, opts ...VarOption) *ConVar {
	cv := &ConVar{
		name:       name,
		kind:       def.Kind(),
		def:        def,
		value:      def,
		permission: contypes.PermissionUser,
	}
	for _, opt := range opts {
		opt(cv)
	}
	return cv
}

// Name returns the registered name.
func (cv *ConVar) Name() string { return cv.name }

// Description returns the help text.
func (cv *ConVar) Description() string { return cv.description }

// Flags returns the variable's flags.
func (cv *ConVar) Flags() contypes.Flags { return cv.flags }

// Permission returns the level needed to change the variable.
func (cv *ConVar) Permission() contypes.PermissionLevel { return cv.permission }

// Kind returns the fixed value kind.
func (cv *ConVar) Kind() contypes.Kind { return cv.kind }

// Default returns the value set at creation, used by reset and differences.
func (cv *ConVar) Default() contypes.Value { return cv.def }

// Min returns the lower bound, if any.
func (cv *ConVar) Min() (float64, bool) { return cv.min, cv.hasMin }

// Max returns the upper bound, if any.
func (cv *ConVar) Max() (float64, bool) { return cv.max, cv.hasMax }

// Value returns the current value.
func (cv *ConVar) Value() contypes.Value {
	cv.mu.RLock()
	defer cv.mu.RUnlock()
	return cv.value
}

// Modified reports whether the current value differs from the default.
func (cv *ConVar) Modified() bool {
	return !cv.Value().Equal(cv.def)
}

// RangeString renders the constraint, e.g. "[0, 1]" or "[10, inf]".
func (cv *ConVar) RangeString() string {
	if !cv.hasMin && !cv.hasMax {
		return ""
	}
	lo, hi := "-inf", "inf"
	if cv.hasMin {
		lo = contypes.Float(cv.min).String()
	}
	if cv.hasMax {
		hi = contypes.Float(cv.max).String()
	}
	return fmt.Sprintf("[%s, %s]", lo, hi)
}

// inRange applies min and max to numeric kinds only. NaN is outside any
// bound.
func (cv *ConVar) inRange(v contypes.Value) bool {
	if !cv.kind.Numeric() {
		return true
	}
	n := v.Number()
	if math.IsNaN(n) && (cv.hasMin || cv.hasMax) {
		return false
	}
	if cv.hasMin && n < cv.min {
		return false
	}
	if cv.hasMax && n > cv.max {
		return false
	}
	return true
}

// swap stores v and returns the previous value. Callers hold no lock.
func (cv *ConVar) swap(v contypes.Value) contypes.Value {
	cv.mu.Lock()
	defer cv.mu.Unlock()
	old := cv.value
	cv.value = v
	return old
}
