// Package output renders console events to a terminal or a pipe.
// The Printer depends only on the StyleProvider interface, so the same
// rendering path serves plain, styled and JSON output.
package output

import (
	"fmt"
	"strings"
)

// StyleProvider supplies a TextStyle per semantic type.
type StyleProvider interface {
	// GetStyle returns the style for a semantic type such as "info" or "error".
	GetStyle(semantic SemanticType) TextStyle
	// IsAvailable reports whether styles can be applied right now.
	IsAvailable() bool
}

// TextStyle renders text. lipgloss.Style satisfies it.
type TextStyle interface {
	Render(strs ...string) string
}

// Mode selects how the printer renders.
type Mode int

const (
	// ModeAuto styles output only when the terminal supports color.
	ModeAuto Mode = iota
	// ModeStyled always applies the style provider.
	ModeStyled
	// ModePlain never applies styles.
	ModePlain
	// ModeJSON writes one JSON object per line.
	ModeJSON
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeStyled:
		return "styled"
	case ModePlain:
		return "plain"
	case ModeJSON:
		return "json"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode parses the style names accepted in configuration.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "styled":
		return ModeStyled, nil
	case "plain":
		return ModePlain, nil
	case "json":
		return ModeJSON, nil
	}
	return ModeAuto, fmt.Errorf("unknown output mode %q", s)
}

// SemanticType is the meaning of a piece of output, used to pick its style.
type SemanticType string

const (
	SemanticPlain     SemanticType = "plain"
	SemanticInfo      SemanticType = "info"
	SemanticWarning   SemanticType = "warning"
	SemanticError     SemanticType = "error"
	SemanticCommand   SemanticType = "command"
	SemanticVariable  SemanticType = "variable"
	SemanticHighlight SemanticType = "highlight"
	SemanticMuted     SemanticType = "muted"
)
