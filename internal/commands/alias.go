package commands

import (
	"sort"
	"sync"
)

// MaxAliasDepth bounds alias expansion and nested execution.
const MaxAliasDepth = 16

// Aliases maps alias names to the command text they expand to.
type Aliases struct {
	mu    sync.RWMutex
	table map[string]string
}

// NewAliases creates an empty alias table.
func NewAliases() *Aliases {
	return &Aliases{table: make(map[string]string)}
}

// Set defines or replaces an alias.
func (a *Aliases) Set(name, expansion string) {
	a.mu.Lock()
	a.table[name] = expansion
	a.mu.Unlock()
}

// Get returns an alias expansion.
func (a *Aliases) Get(name string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	s, ok := a.table[name]
	return s, ok
}

// Remove deletes an alias and reports whether it existed.
func (a *Aliases) Remove(name string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.table[name]
	delete(a.table, name)
	return ok
}

// Names returns every alias name sorted.
func (a *Aliases) Names() []string {
	a.mu.RLock()
	names := make([]string, 0, len(a.table))
	for n := range a.table {
		names = append(names, n)
	}
	a.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Len returns the number of aliases.
func (a *Aliases) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.table)
}
