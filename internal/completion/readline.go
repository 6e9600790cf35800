package completion

import (
	"strings"

	"github.com/abiosoft/readline"
)

var _ readline.AutoCompleter = (*ReadlineAdapter)(nil)

// ReadlineAdapter implements readline.AutoCompleter on top of a Completer.
type ReadlineAdapter struct {
	completer *Completer
}

// NewReadlineAdapter wraps c for use as a readline or ishell completer.
func NewReadlineAdapter(c *Completer) *ReadlineAdapter {
	return &ReadlineAdapter{completer: c}
}

// Do returns the suffixes that complete the word before pos, and the length
// of that word. Readline can only extend the typed text, so fuzzy candidates
// that do not start with the word are left out.
func (a *ReadlineAdapter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	if pos > len(line) {
		pos = len(line)
	}
	suggestions := a.completer.Suggest(string(line), pos)
	typed := string(line[:pos])

	var current string
	if len(suggestions) > 0 {
		current = strings.TrimPrefix(string([]rune(typed)[suggestions[0].Start:]), `"`)
	}
	for _, s := range suggestions {
		if !strings.HasPrefix(s.Text, current) {
			continue
		}
		newLine = append(newLine, []rune(strings.TrimPrefix(s.Text, current)+" "))
	}
	return newLine, len([]rune(current))
}
