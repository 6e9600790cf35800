package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Printer writes semantic lines to a writer. It is safe for concurrent use.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	mode          Mode
	silent        bool
	prefix        string
	colorCheck    func() bool

	mu sync.Mutex
}

// NewPrinter creates a Printer writing to os.Stdout in ModeAuto.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer:     os.Stdout,
		mode:       ModeAuto,
		colorCheck: SupportsColor,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Println writes an unstyled line.
func (p *Printer) Println(text string) { p.Line(SemanticPlain, text) }

// Info writes an info line.
func (p *Printer) Info(text string) { p.Line(SemanticInfo, text) }

// Warning writes a warning line.
func (p *Printer) Warning(text string) { p.Line(SemanticWarning, text) }

// Error writes an error line.
func (p *Printer) Error(text string) { p.Line(SemanticError, text) }

// Command writes the echo of an invocation.
func (p *Printer) Command(text string) { p.Line(SemanticCommand, text) }

// Line writes text as one line styled for semantic.
func (p *Printer) Line(semantic SemanticType, text string) {
	if p.silent {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	var out string
	if p.mode == ModeJSON {
		out = renderJSON(semantic, text)
	} else {
		out = p.style(semantic).Render(text)
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
	}
	if p.prefix != "" {
		out = p.prefix + out
	}
	_, _ = fmt.Fprint(p.writer, out)
}

// Clear clears the terminal. Outside a styled terminal it writes nothing, or
// a clear record in JSON mode.
func (p *Printer) Clear() {
	if p.silent {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case p.mode == ModeJSON:
		_, _ = fmt.Fprint(p.writer, renderJSON("clear", ""))
	case p.stylable():
		termenv.NewOutput(p.writer).ClearScreen()
	}
}

// Style returns the style the printer would apply to semantic.
func (p *Printer) Style(semantic SemanticType) TextStyle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.style(semantic)
}

func (p *Printer) style(semantic SemanticType) TextStyle {
	if p.stylable() {
		return p.styleProvider.GetStyle(semantic)
	}
	return plainStyle{}
}

// stylable requires p.mu held.
func (p *Printer) stylable() bool {
	if p.styleProvider == nil || !p.styleProvider.IsAvailable() {
		return false
	}
	switch p.mode {
	case ModeStyled:
		return true
	case ModeAuto:
		return p.colorCheck()
	}
	return false
}

func renderJSON(semantic SemanticType, text string) string {
	data, err := json.Marshal(map[string]any{"type": semantic, "message": text})
	if err != nil {
		return text + "\n"
	}
	return string(data) + "\n"
}

// SetWriter changes the destination.
func (p *Printer) SetWriter(writer io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writer = writer
}

// SetMode changes the rendering mode.
func (p *Printer) SetMode(mode Mode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = mode
}

// IsStylable reports whether styles are currently applied.
func (p *Printer) IsStylable() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stylable()
}

func (p *Printer) String() string {
	return fmt.Sprintf("Printer{mode: %v, styled: %t, writer: %T}", p.mode, p.IsStylable(), p.writer)
}

type plainStyle struct{}

func (plainStyle) Render(strs ...string) string { return strings.Join(strs, " ") }

// SupportsColor reports whether stdout is a terminal with a color profile.
// NO_COLOR disables color.
func SupportsColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return termenv.NewOutput(os.Stdout).ColorProfile() != termenv.Ascii
}
