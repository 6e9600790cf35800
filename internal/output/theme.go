package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Theme maps semantic types to lipgloss styles.
type Theme struct {
	Name   string
	styles map[SemanticType]lipgloss.Style
}

// ThemeFile is the YAML form of a theme.
type ThemeFile struct {
	Name   string                 `yaml:"name"`
	Styles map[string]StyleConfig `yaml:"styles"`
}

// StyleConfig is the YAML form of one style. Colors are either a single
// value or a {light, dark} pair.
type StyleConfig struct {
	Foreground any  `yaml:"foreground,omitempty"`
	Background any  `yaml:"background,omitempty"`
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underline  bool `yaml:"underline,omitempty"`
	Faint      bool `yaml:"faint,omitempty"`
}

// DefaultTheme returns the built-in console theme.
func DefaultTheme() *Theme {
	return &Theme{
		Name: "default",
		styles: map[SemanticType]lipgloss.Style{
			SemanticPlain:     lipgloss.NewStyle(),
			SemanticInfo:      lipgloss.NewStyle(),
			SemanticWarning:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "130", Dark: "214"}),
			SemanticError:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Bold(true),
			SemanticCommand:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"}),
			SemanticVariable:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "39"}),
			SemanticHighlight: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "202", Dark: "208"}).Bold(true),
			SemanticMuted:     lipgloss.NewStyle().Faint(true),
		},
	}
}

// ParseTheme builds a theme from YAML. Semantic types the file leaves out
// keep their default style.
func ParseTheme(data []byte) (*Theme, error) {
	var file ThemeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	theme := DefaultTheme()
	if file.Name != "" {
		theme.Name = file.Name
	}
	for name, cfg := range file.Styles {
		style, err := cfg.style()
		if err != nil {
			return nil, fmt.Errorf("style %s: %w", name, err)
		}
		theme.styles[SemanticType(name)] = style
	}
	return theme, nil
}

func (c StyleConfig) style() (lipgloss.Style, error) {
	style := lipgloss.NewStyle().
		Bold(c.Bold).
		Italic(c.Italic).
		Underline(c.Underline).
		Faint(c.Faint)
	if c.Foreground != nil {
		color, err := parseColor(c.Foreground)
		if err != nil {
			return style, err
		}
		style = style.Foreground(color)
	}
	if c.Background != nil {
		color, err := parseColor(c.Background)
		if err != nil {
			return style, err
		}
		style = style.Background(color)
	}
	return style, nil
}

func parseColor(v any) (lipgloss.TerminalColor, error) {
	switch c := v.(type) {
	case string:
		return lipgloss.Color(c), nil
	case int:
		return lipgloss.Color(fmt.Sprint(c)), nil
	case map[string]any:
		light, okLight := c["light"]
		dark, okDark := c["dark"]
		if okLight && okDark {
			return lipgloss.AdaptiveColor{Light: fmt.Sprint(light), Dark: fmt.Sprint(dark)}, nil
		}
	}
	return nil, fmt.Errorf("invalid color %v", v)
}

// GetStyle implements StyleProvider.
func (t *Theme) GetStyle(semantic SemanticType) TextStyle {
	if s, ok := t.styles[semantic]; ok {
		return s
	}
	return t.styles[SemanticPlain]
}

// IsAvailable implements StyleProvider.
func (t *Theme) IsAvailable() bool { return t != nil }

// Highlight renders text with the runes at indices in the highlight style
// and the rest in base.
func Highlight(text string, indices []int, base, highlight TextStyle) string {
	if len(indices) == 0 {
		return base.Render(text)
	}
	marked := make(map[int]bool, len(indices))
	for _, i := range indices {
		marked[i] = true
	}

	var out, run []rune
	runMarked := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		style := base
		if runMarked {
			style = highlight
		}
		out = append(out, []rune(style.Render(string(run)))...)
		run = run[:0]
	}
	for i, r := range []rune(text) {
		if marked[i] != runMarked {
			flush()
			runMarked = marked[i]
		}
		run = append(run, r)
	}
	flush()
	return string(out)
}
