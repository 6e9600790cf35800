// Package registry owns console variable and command metadata and the trie
// index over their shared namespace.
package registry

import (
	"fmt"
	"iter"
	"strings"
	"sync"
	"unicode"

	"github.com/charmbracelet/log"

	"devconsole/internal/events"
	"devconsole/internal/logger"
	"devconsole/internal/trie"
	"devconsole/pkg/contypes"
)

// CheatsVar is the variable consulted by the default cheats predicate.
const CheatsVar = "sv_cheats"

// CheatsPredicate reports whether CHEAT-flagged entries may be used.
type CheatsPredicate func() bool

// Registry maps every console name to its entry. Names of variables and
// commands share one namespace. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	index   *trie.Trie[EntryID]
	entries []*Entry

	events *events.Queue
	cheats CheatsPredicate
	logger *log.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithEventQueue makes the registry record change events into q.
func WithEventQueue(q *events.Queue) Option {
	return func(r *Registry) { r.events = q }
}

// WithCheatsPredicate replaces the default sv_cheats check.
func WithCheatsPredicate(p CheatsPredicate) Option {
	return func(r *Registry) { r.cheats = p }
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		index:  trie.New[EntryID](),
		logger: logger.NewStyledLogger("Registry"),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.events == nil {
		r.events = events.NewQueue(-1)
	}
	if r.cheats == nil {
		r.cheats = r.defaultCheats
	}
	return r
}

// Events returns the queue receiving change events.
func (r *Registry) Events() *events.Queue { return r.events }

// ValidateName checks that name is non-empty and has no whitespace.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", contypes.ErrInvalidName)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q contains whitespace", contypes.ErrInvalidName, name)
	}
	return nil
}

// RegisterVar adds a variable. The default must satisfy the variable's range.
func (r *Registry) RegisterVar(cv *ConVar) error {
	if cv == nil {
		return fmt.Errorf("%w: nil variable", contypes.ErrInvalidName)
	}
	if !cv.inRange(cv.def) {
		return contypes.NewEntryError("register", cv.name,
			fmt.Errorf("%w: default %s not in %s", contypes.ErrOutOfRange, cv.def, cv.RangeString()))
	}
	return r.insert(&Entry{Kind: EntryVar, Var: cv})
}

// RegisterCommand adds command metadata.
func (r *Registry) RegisterCommand(meta CommandMeta) error {
	m := meta
	return r.insert(&Entry{Kind: EntryCommand, Command: &m})
}

func (r *Registry) insert(e *Entry) error {
	name := e.Name()
	if err := ValidateName(name); err != nil {
		r.logger.Warn("Rejected registration", "name", name, "error", err)
		return contypes.NewEntryError("register", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.index.Contains(name) {
		r.logger.Warn("Rejected registration", "name", name, "error", contypes.ErrDuplicateName)
		return contypes.NewEntryError("register", name, contypes.ErrDuplicateName)
	}
	e.ID = EntryID(len(r.entries))
	r.entries = append(r.entries, e)
	r.index.Insert(name, e.ID)
	r.logger.Debug("Registered", "name", name, "kind", e.Kind, "flags", e.Flags())
	return nil
}

// LookupExact resolves a name in O(len(name)). Hidden entries resolve too.
func (r *Registry) LookupExact(name string) (*Entry, error) {
	if e, ok := r.Lookup(name); ok {
		return e, nil
	}
	return nil, contypes.NewEntryError("lookup", name, contypes.ErrNotFound)
}

// Lookup is LookupExact with a boolean result.
func (r *Registry) Lookup(name string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.index.Get(name)
	if !ok {
		return nil, false
	}
	return r.entries[id], true
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Var returns the variable registered under name.
func (r *Registry) Var(name string) (*ConVar, error) {
	e, err := r.LookupExact(name)
	if err != nil {
		return nil, err
	}
	if !e.IsVar() {
		return nil, contypes.NewEntryError("lookup", name,
			fmt.Errorf("%w: %s is a command", contypes.ErrTypeMismatch, name))
	}
	return e.Var, nil
}

// LookupPrefix lazily yields the non-hidden entries whose names start with
// prefix, in lexicographic order. The registry lock is not held while the
// caller consumes the sequence.
func (r *Registry) LookupPrefix(prefix string) iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		r.mu.RLock()
		var found []*Entry
		for _, id := range r.index.PrefixIter(prefix) {
			if e := r.entries[id]; !e.Hidden() {
				found = append(found, e)
			}
		}
		r.mu.RUnlock()

		for _, e := range found {
			if !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of entries, hidden ones included.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Entries returns every non-hidden entry sorted by name.
func (r *Registry) Entries() []*Entry {
	var out []*Entry
	for e := range r.LookupPrefix("") {
		out = append(out, e)
	}
	return out
}

// Vars returns the non-hidden variables whose names start with prefix.
func (r *Registry) Vars(prefix string) []*ConVar {
	var out []*ConVar
	for e := range r.LookupPrefix(prefix) {
		if e.IsVar() {
			out = append(out, e.Var)
		}
	}
	return out
}

// Commands returns the non-hidden command metadata sorted by name.
func (r *Registry) Commands() []*CommandMeta {
	var out []*CommandMeta
	for e := range r.LookupPrefix("") {
		if e.IsCommand() {
			out = append(out, e.Command)
		}
	}
	return out
}

// Names returns every non-hidden name with the given prefix.
func (r *Registry) Names(prefix string) []string {
	var out []string
	for e := range r.LookupPrefix(prefix) {
		out = append(out, e.Name())
	}
	return out
}

// CheatsEnabled evaluates the cheats predicate.
func (r *Registry) CheatsEnabled() bool { return r.cheats() }

func (r *Registry) defaultCheats() bool {
	cv, err := r.Var(CheatsVar)
	if err != nil {
		return false
	}
	v := cv.Value()
	switch v.Kind() {
	case contypes.KindBool:
		return v.AsBool()
	case contypes.KindInt, contypes.KindFloat:
		return v.Number() != 0
	}
	return false
}
