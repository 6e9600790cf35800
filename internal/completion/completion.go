// Package completion suggests names and arguments for a partially typed
// console line, and adapts the suggestions to readline's tab completion.
package completion

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/log"

	"devconsole/internal/commands"
	"devconsole/internal/logger"
	"devconsole/internal/matcher"
	"devconsole/internal/registry"
)

// MaxSuggestions caps the length of every suggestion list.
const MaxSuggestions = 6

// Suggestion is one candidate for the word under the cursor.
type Suggestion struct {
	// Text is the full replacement for the word.
	Text string
	// Indices are the rune positions in Text that matched the typed word.
	Indices []int
	// Description is the entry's help text, if any.
	Description string
	// Start is the rune offset in the line where the word begins.
	Start int
}

// Completer produces suggestions from the registry and the handler store.
type Completer struct {
	reg    *registry.Registry
	store  *commands.Store
	logger *log.Logger
}

// New creates a Completer.
func New(reg *registry.Registry, store *commands.Store) *Completer {
	return &Completer{reg: reg, store: store, logger: logger.NewStyledLogger("Completion")}
}

// Suggest returns up to MaxSuggestions candidates for the word ending at
// cursor. The first word of an invocation completes against fuzzy-ranked
// registry names; later words ask the command's argument completer.
func (c *Completer) Suggest(line string, cursor int) []Suggestion {
	runes := []rune(line)
	if cursor < 0 || cursor > len(runes) {
		cursor = len(runes)
	}
	w := locate(runes[:cursor])

	var out []Suggestion
	if w.index == 0 {
		out = c.names(w)
	} else {
		out = c.arguments(w)
	}
	c.logger.Debug("Suggest", "input", line, "word", w.text, "count", len(out))
	return out
}

func (c *Completer) names(w word) []Suggestion {
	var out []Suggestion
	for _, m := range c.reg.FuzzySearch(w.text) {
		if len(out) == MaxSuggestions {
			break
		}
		out = append(out, Suggestion{
			Text:        m.Entry.Name(),
			Indices:     m.Result.Indices,
			Description: m.Entry.Description(),
			Start:       w.start,
		})
	}
	return out
}

func (c *Completer) arguments(w word) []Suggestion {
	var out []Suggestion
	for _, cand := range c.store.Complete(w.command, w.text) {
		if len(out) == MaxSuggestions {
			break
		}
		res, ok := matcher.Match(w.text, cand)
		if !ok {
			continue
		}
		s := Suggestion{Text: cand, Indices: res.Indices, Start: w.start}
		if e, found := c.reg.Lookup(cand); found {
			s.Description = e.Description()
		}
		out = append(out, s)
	}
	return out
}

// word is the token under the cursor within the current invocation.
type word struct {
	command string // first token of the invocation
	text    string // typed part of the word
	index   int    // position of the word within the invocation
	start   int    // rune offset in the line
}

// locate finds the word that ends at the end of before. Only the invocation
// after the last unquoted separator is considered.
func locate(before []rune) word {
	segStart := 0
	inQuote := false
	for i, r := range before {
		switch {
		case r == '"':
			inQuote = !inQuote
		case r == ';' && !inQuote && (i == 0 || before[i-1] != '\\'):
			segStart = i + 1
		}
	}

	var w word
	tokenStart := -1
	inQuote = false
	for i := segStart; i < len(before); i++ {
		r := before[i]
		if r == '"' {
			inQuote = !inQuote
		}
		if unicode.IsSpace(r) && !inQuote {
			if tokenStart >= 0 {
				tok := strings.Trim(string(before[tokenStart:i]), `"`)
				if w.index == 0 {
					w.command = tok
				}
				w.index++
				tokenStart = -1
			}
			continue
		}
		if tokenStart < 0 {
			tokenStart = i
		}
	}

	if tokenStart < 0 {
		w.start = len(before)
		return w
	}
	w.start = tokenStart
	w.text = strings.TrimPrefix(string(before[tokenStart:]), `"`)
	if w.index == 0 {
		w.command = w.text
	}
	return w
}
