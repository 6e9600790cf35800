// Package parser splits raw console lines into command invocations.
package parser

import (
	"fmt"
	"strings"
	"unicode"

	"devconsole/pkg/contypes"
)

// Invocation is one command call taken from a line.
type Invocation struct {
	Tokens []string
	// Raw is the trimmed source text of the invocation, comment excluded.
	Raw string
}

// Name returns the first token.
func (inv Invocation) Name() string {
	if len(inv.Tokens) == 0 {
		return ""
	}
	return inv.Tokens[0]
}

// Args returns every token after the name.
func (inv Invocation) Args() []string {
	if len(inv.Tokens) < 2 {
		return nil
	}
	return inv.Tokens[1:]
}

// Tokenize splits line into invocations and discards tokenizer warnings.
func Tokenize(line string) [][]string {
	invs, _ := TokenizeDetailed(line)
	out := make([][]string, len(invs))
	for i, inv := range invs {
		out[i] = inv.Tokens
	}
	return out
}

// TokenizeDetailed splits line into invocations.
//
// Invocations are separated by ';' outside double quotes. Tokens are separated
// by whitespace; a double quoted span is part of one token with the quotes
// removed. '//' outside quotes discards the rest of the invocation, and '\;'
// outside quotes is a literal semicolon. Invocations without tokens are
// dropped.
//
// An unterminated quote takes the rest of the line as its content. The line
// is still tokenized and a warning wrapping ErrTokenizeAmbiguous is returned.
func TokenizeDetailed(line string) ([]Invocation, []error) {
	var (
		invs     []Invocation
		warnings []error
		tokens   []string
		current  strings.Builder
		raw      strings.Builder
		inToken  bool
		inQuote  bool
		comment  bool
		quoteAt  int
	)

	endToken := func() {
		if inToken {
			tokens = append(tokens, current.String())
			current.Reset()
			inToken = false
		}
	}
	endInvocation := func() {
		endToken()
		if len(tokens) > 0 {
			invs = append(invs, Invocation{Tokens: tokens, Raw: strings.TrimSpace(raw.String())})
		}
		tokens = nil
		raw.Reset()
		comment = false
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if comment {
			if r == ';' {
				endInvocation()
			}
			continue
		}

		if inQuote {
			raw.WriteRune(r)
			if r == '"' {
				inQuote = false
				continue
			}
			current.WriteRune(r)
			continue
		}

		switch {
		case r == '"':
			inQuote = true
			inToken = true
			quoteAt = i
			raw.WriteRune(r)
		case r == ';':
			endInvocation()
		case r == '\\' && i+1 < len(runes) && runes[i+1] == ';':
			current.WriteRune(';')
			raw.WriteString(`\;`)
			inToken = true
			i++
		case r == '/' && i+1 < len(runes) && runes[i+1] == '/':
			endToken()
			comment = true
			i++
		case unicode.IsSpace(r):
			endToken()
			raw.WriteRune(r)
		default:
			current.WriteRune(r)
			raw.WriteRune(r)
			inToken = true
		}
	}

	if inQuote {
		warnings = append(warnings, fmt.Errorf("%w at position %d", contypes.ErrTokenizeAmbiguous, quoteAt))
	}
	endInvocation()
	return invs, warnings
}

// Quote renders tokens so that TokenizeDetailed reproduces them.
func Quote(tokens []string) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		if t == "" || strings.ContainsAny(t, " \t;\"") || strings.Contains(t, "//") {
			parts[i] = `"` + strings.ReplaceAll(t, `"`, "") + `"`
			continue
		}
		parts[i] = t
	}
	return strings.Join(parts, " ")
}
