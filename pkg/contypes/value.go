package contypes

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the primitive type of a ConVar value. It is fixed at registration.
type Kind int

const (
	// KindBool is a boolean value rendered as 1 or 0.
	KindBool Kind = iota
	// KindInt is a signed 64-bit integer.
	KindInt
	// KindFloat is a 64-bit float.
	KindFloat
	// KindString is free text.
	KindString
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Numeric reports whether min/max constraints apply to the kind.
func (k Kind) Numeric() bool {
	return k == KindInt || k == KindFloat
}

// Primitive lists the Go types accepted by the typed Get and Set helpers.
type Primitive interface {
	bool | int | int32 | int64 | float32 | float64 | string
}

// Value is a closed tagged union over the supported primitive kinds.
// The zero Value is the boolean false.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Int returns an integer Value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float returns a float Value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// String returns a string Value.
func String(v string) Value { return Value{kind: KindString, s: v} }

// ValueOf converts a Go primitive into a Value of the matching kind.
func ValueOf[T Primitive](v T) Value {
	switch x := any(v).(type) {
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case string:
		return String(x)
	}
	panic("unreachable")
}

// KindOf returns the kind a Go primitive type maps to.
func KindOf[T Primitive]() Kind {
	var zero T
	return ValueOf(zero).kind
}

// As extracts the value as T. It fails with ErrTypeMismatch when T maps to a
// different kind than the stored one.
func As[T Primitive](v Value) (T, error) {
	var zero T
	if want := KindOf[T](); want != v.kind {
		return zero, fmt.Errorf("%w: have %s, want %s", ErrTypeMismatch, v.kind, want)
	}
	var out any
	switch any(zero).(type) {
	case bool:
		out = v.b
	case int:
		out = int(v.i)
	case int32:
		out = int32(v.i)
	case int64:
		out = v.i
	case float32:
		out = float32(v.f)
	case float64:
		out = v.f
	case string:
		out = v.s
	}
	return out.(T), nil
}

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// AsBool returns the boolean payload; meaningful only for KindBool.
func (v Value) AsBool() bool { return v.b }

// AsInt returns the integer payload; meaningful only for KindInt.
func (v Value) AsInt() int64 { return v.i }

// AsFloat returns the float payload; meaningful only for KindFloat.
func (v Value) AsFloat() float64 { return v.f }

// Number returns the numeric payload as a float64 for constraint checks.
func (v Value) Number() float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i)
	case KindFloat:
		return v.f
	case KindBool:
		if v.b {
			return 1
		}
	}
	return 0
}

// Equal reports whether both values carry the same kind and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f || (math.IsNaN(v.f) && math.IsNaN(other.f))
	default:
		return v.s == other.s
	}
}

// String renders the value for display and transport.
// Booleans render as 1/0 and integral floats drop their fraction.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "1"
		}
		return "0"
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return v.s
	}
}

// ParseValue parses raw console text into a Value of the given kind.
func ParseValue(kind Kind, raw string) (Value, error) {
	switch kind {
	case KindBool:
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "true", "1", "yes", "on":
			return Bool(true), nil
		case "false", "0", "no", "off":
			return Bool(false), nil
		}
		return Value{}, fmt.Errorf("%w: %q is not a boolean", ErrTypeMismatch, raw)
	case KindInt:
		i, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not an integer", ErrTypeMismatch, raw)
		}
		return Int(i), nil
	case KindFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a number", ErrTypeMismatch, raw)
		}
		return Float(f), nil
	case KindString:
		return String(raw), nil
	}
	return Value{}, fmt.Errorf("%w: unknown kind %s", ErrTypeMismatch, kind)
}
