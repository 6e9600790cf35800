package registry

import (
	"strings"

	"devconsole/internal/matcher"
)

// Match is a fuzzy search hit.
type Match struct {
	Entry  *Entry
	Result matcher.Result
}

// FuzzySearch scores every non-hidden name against query. Results are
// ordered by descending score, ties by name.
func (r *Registry) FuzzySearch(query string) []Match {
	entries := r.Entries()
	names := make([]string, len(entries))
	byName := make(map[string]*Entry, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
		byName[names[i]] = e
	}

	ranked := matcher.MatchAndSort(query, names)
	out := make([]Match, len(ranked))
	for i, rk := range ranked {
		out[i] = Match{Entry: byName[rk.Candidate], Result: rk.Result}
	}
	return out
}

// Search returns the non-hidden entries whose name or description contains
// term, case-insensitively, sorted by name.
func (r *Registry) Search(term string) []*Entry {
	needle := strings.ToLower(term)
	var out []*Entry
	for e := range r.LookupPrefix("") {
		if strings.Contains(strings.ToLower(e.Name()), needle) ||
			strings.Contains(strings.ToLower(e.Description()), needle) {
			out = append(out, e)
		}
	}
	return out
}

// Differences returns the non-hidden variables whose value differs from the
// default, sorted by name.
func (r *Registry) Differences() []*ConVar {
	var out []*ConVar
	for _, cv := range r.Vars("") {
		if cv.Modified() {
			out = append(out, cv)
		}
	}
	return out
}
