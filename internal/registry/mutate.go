package registry

import (
	"fmt"

	"devconsole/internal/logger"
	"devconsole/pkg/contypes"
)

// Get returns the current value of a variable as T.
func Get[T contypes.Primitive](r *Registry, name string) (T, error) {
	v, err := r.GetValue(name)
	if err != nil {
		var zero T
		return zero, err
	}
	out, err := contypes.As[T](v)
	if err != nil {
		return out, contypes.NewEntryError("get", name, err)
	}
	return out, nil
}

// Set assigns a Go value to a variable of the matching kind.
func Set[T contypes.Primitive](r *Registry, name string, value T) error {
	return r.SetValue(name, contypes.ValueOf(value))
}

// GetValue returns the current value of a variable.
func (r *Registry) GetValue(name string) (contypes.Value, error) {
	cv, err := r.varFor("get", name)
	if err != nil {
		return contypes.Value{}, err
	}
	return cv.Value(), nil
}

// SetValue validates and assigns v. Checks run in the order: existence,
// kind, read-only, cheats, range. A failed Set never changes the value.
func (r *Registry) SetValue(name string, v contypes.Value) error {
	cv, err := r.varFor("set", name)
	if err != nil {
		return err
	}
	if v.Kind() != cv.kind {
		return contypes.NewEntryError("set", name,
			fmt.Errorf("%w: %s expects %s, got %s", contypes.ErrTypeMismatch, name, cv.kind, v.Kind()))
	}
	if err := r.checkWritable("set", cv); err != nil {
		return err
	}
	if !cv.inRange(v) {
		return contypes.NewEntryError("set", name,
			fmt.Errorf("%w: %s not in %s", contypes.ErrOutOfRange, v, cv.RangeString()))
	}
	r.commit("set", cv, v)
	return nil
}

// SetString parses raw according to the variable's kind, then sets it.
func (r *Registry) SetString(name, raw string) error {
	cv, err := r.varFor("set", name)
	if err != nil {
		return err
	}
	v, err := contypes.ParseValue(cv.kind, raw)
	if err != nil {
		return contypes.NewEntryError("set", name, err)
	}
	return r.SetValue(name, v)
}

// Toggle flips a boolean, or moves an integer to (v+1) mod 2. The write
// goes through the same checks as Set. It returns the new value.
func (r *Registry) Toggle(name string) (contypes.Value, error) {
	cv, err := r.varFor("toggle", name)
	if err != nil {
		return contypes.Value{}, err
	}

	var next contypes.Value
	switch cur := cv.Value(); cv.kind {
	case contypes.KindBool:
		next = contypes.Bool(!cur.AsBool())
	case contypes.KindInt:
		next = contypes.Int(((cur.AsInt()+1)%2 + 2) % 2)
	default:
		return contypes.Value{}, contypes.NewEntryError("toggle", name,
			fmt.Errorf("%w: cannot toggle %s variable", contypes.ErrTypeMismatch, cv.kind))
	}

	if err := r.checkWritable("toggle", cv); err != nil {
		return contypes.Value{}, err
	}
	if !cv.inRange(next) {
		return contypes.Value{}, contypes.NewEntryError("toggle", name,
			fmt.Errorf("%w: %s not in %s", contypes.ErrOutOfRange, next, cv.RangeString()))
	}
	r.commit("toggle", cv, next)
	r.events.Push(contypes.VarToggledEvent{Name: name, Value: next.String()})
	return next, nil
}

// Reset restores the default, skipping the read-only, cheat and range checks.
func (r *Registry) Reset(name string) error {
	cv, err := r.varFor("reset", name)
	if err != nil {
		return err
	}
	r.commit("reset", cv, cv.def)
	return nil
}

func (r *Registry) varFor(op, name string) (*ConVar, error) {
	e, ok := r.Lookup(name)
	if !ok {
		return nil, contypes.NewEntryError(op, name, contypes.ErrNotFound)
	}
	if !e.IsVar() {
		return nil, contypes.NewEntryError(op, name,
			fmt.Errorf("%w: %s is a command", contypes.ErrTypeMismatch, name))
	}
	return e.Var, nil
}

func (r *Registry) checkWritable(op string, cv *ConVar) error {
	if cv.flags.Has(contypes.FlagReadOnly) {
		return contypes.NewEntryError(op, cv.name, contypes.ErrReadOnly)
	}
	if cv.flags.Has(contypes.FlagCheat) && !r.cheats() {
		return contypes.NewEntryError(op, cv.name, contypes.ErrCheatsDisabled)
	}
	return nil
}

// commit is the single path that writes a value and records the change event.
func (r *Registry) commit(op string, cv *ConVar, v contypes.Value) {
	old := cv.swap(v)
	logger.VariableOperation(op, cv.name, v.String())
	r.events.Push(contypes.VarChangedEvent{
		Name:     cv.name,
		OldValue: old.String(),
		NewValue: v.String(),
		Notify:   cv.flags.Has(contypes.FlagNotify),
	})
}
