package registry

import (
	"errors"
	"sort"

	"devconsole/pkg/contypes"
)

// ArchivedVar is one persisted name/value pair.
type ArchivedVar struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// Archived lists every ARCHIVE-flagged variable, hidden ones included,
// with its current display value, sorted by name.
func (r *Registry) Archived() []ArchivedVar {
	r.mu.RLock()
	var out []ArchivedVar
	for _, e := range r.entries {
		if e.IsVar() && e.Var.flags.Has(contypes.FlagArchive) {
			out = append(out, ArchivedVar{Name: e.Var.name, Value: e.Var.Value().String()})
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Apply assigns one loaded pair through SetString, so every Set check applies.
func (r *Registry) Apply(name, raw string) error {
	return r.SetString(name, raw)
}

// ApplyAll applies pairs in order and joins the failures. A failed pair does
// not stop the rest.
func (r *Registry) ApplyAll(vars []ArchivedVar) error {
	var errs []error
	for _, v := range vars {
		if err := r.Apply(v.Name, v.Value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
