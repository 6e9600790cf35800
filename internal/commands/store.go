package commands

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"devconsole/internal/logger"
	"devconsole/pkg/contypes"
)

// Store holds the executable half of each command, keyed by command name.
// A handler is absent from the store while it runs: Take removes it and marks
// the name running, Put reinserts it. It is safe for concurrent use.
type Store struct {
	mu         sync.Mutex
	handlers   map[string]Handler
	completers map[string]CompleterFunc
	running    map[string]bool
	logger     *log.Logger
}

// NewStore creates an empty handler store.
func NewStore() *Store {
	return &Store{
		handlers:   make(map[string]Handler),
		completers: make(map[string]CompleterFunc),
		running:    make(map[string]bool),
		logger:     logger.NewStyledLogger("Handlers"),
	}
}

// Register binds a handler, and optionally an argument completer, to name.
// It fails if the name is empty, the handler is nil, or the name is bound.
func (s *Store) Register(name string, h Handler, c CompleterFunc) error {
	if name == "" {
		return fmt.Errorf("%w: command name cannot be empty", contypes.ErrInvalidName)
	}
	if h == nil {
		return fmt.Errorf("%w: command %s has no handler", contypes.ErrInvalidName, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.handlers[name]; exists || s.running[name] {
		return fmt.Errorf("%w: command %s already registered", contypes.ErrDuplicateName, name)
	}
	s.handlers[name] = h
	if c != nil {
		s.completers[name] = c
	}
	return nil
}

// Take removes the handler bound to name and marks the name running.
// It fails with ErrReentrant while the name is already running and with
// ErrNotFound when no handler is bound.
func (s *Store) Take(name string) (Handler, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running[name] {
		return nil, contypes.NewEntryError("take", name, contypes.ErrReentrant)
	}
	h, ok := s.handlers[name]
	if !ok {
		return nil, contypes.NewEntryError("take", name, contypes.ErrNotFound)
	}
	delete(s.handlers, name)
	s.running[name] = true
	s.logger.Debug("Taken", "name", name)
	return h, nil
}

// Put reinserts a handler and clears the running mark.
func (s *Store) Put(name string, h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[name] = h
	delete(s.running, name)
	s.logger.Debug("Reinserted", "name", name)
}

// Has reports whether a handler is currently in the store for name.
func (s *Store) Has(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.handlers[name]
	return ok
}

// Running reports whether name's handler is taken out.
func (s *Store) Running(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running[name]
}

// Len returns the number of bound names, running ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handlers) + len(s.running)
}

// Names returns the bound names sorted.
func (s *Store) Names() []string {
	s.mu.Lock()
	names := make([]string, 0, len(s.handlers)+len(s.running))
	for n := range s.handlers {
		names = append(names, n)
	}
	for n := range s.running {
		names = append(names, n)
	}
	s.mu.Unlock()
	sort.Strings(names)
	return names
}

// HasCompleter reports whether name has an argument completer.
func (s *Store) HasCompleter(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.completers[name]
	return ok
}

// Complete asks name's completer for candidates for partial. The completer
// runs without the store lock held.
func (s *Store) Complete(name, partial string) []string {
	s.mu.Lock()
	c := s.completers[name]
	s.mu.Unlock()
	if c == nil {
		return nil
	}
	return c(partial)
}
