package contypes

import (
	"fmt"
	"strconv"
	"strings"
)

// Environment is the opaque, exclusively held host state passed to handlers.
// The console never inspects it.
type Environment = any

// Args are the tokens that followed the command name in one invocation.
type Args struct {
	tokens []string
}

// NewArgs wraps a token list. The slice is copied.
func NewArgs(tokens []string) Args {
	return Args{tokens: append([]string(nil), tokens...)}
}

// Len returns the number of arguments.
func (a Args) Len() int { return len(a.tokens) }

// Empty reports whether no arguments were given.
func (a Args) Empty() bool { return len(a.tokens) == 0 }

// Get returns argument i, or false when it is missing.
func (a Args) Get(i int) (string, bool) {
	if i < 0 || i >= len(a.tokens) {
		return "", false
	}
	return a.tokens[i], true
}

// GetOr returns argument i or def when it is missing.
func (a Args) GetOr(i int, def string) string {
	if s, ok := a.Get(i); ok {
		return s
	}
	return def
}

// Int parses argument i as an integer.
func (a Args) Int(i int) (int64, error) {
	s, ok := a.Get(i)
	if !ok {
		return 0, fmt.Errorf("missing argument %d", i+1)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("argument %d: %q is not an integer", i+1, s)
	}
	return n, nil
}

// Float parses argument i as a float.
func (a Args) Float(i int) (float64, error) {
	s, ok := a.Get(i)
	if !ok {
		return 0, fmt.Errorf("missing argument %d", i+1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("argument %d: %q is not a number", i+1, s)
	}
	return f, nil
}

// Join joins every argument with single spaces.
func (a Args) Join() string { return strings.Join(a.tokens, " ") }

// JoinFrom joins the arguments starting at index i.
func (a Args) JoinFrom(i int) string {
	if i >= len(a.tokens) {
		return ""
	}
	if i < 0 {
		i = 0
	}
	return strings.Join(a.tokens[i:], " ")
}

// Slice returns a copy of the raw tokens.
func (a Args) Slice() []string { return append([]string(nil), a.tokens...) }
