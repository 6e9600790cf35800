package output

import "io"

// Option configures a Printer.
type Option func(*Printer)

// WithStyles sets the style provider. An unavailable provider is ignored.
func WithStyles(provider StyleProvider) Option {
	return func(p *Printer) {
		if provider != nil && provider.IsAvailable() {
			p.styleProvider = provider
		}
	}
}

// WithWriter sets the destination. Default is os.Stdout.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// WithMode sets the rendering mode.
func WithMode(mode Mode) Option {
	return func(p *Printer) { p.mode = mode }
}

// PlainText forces unstyled output.
func PlainText() Option {
	return func(p *Printer) { p.mode = ModePlain }
}

// JSON switches to line-delimited JSON.
func JSON() Option {
	return func(p *Printer) { p.mode = ModeJSON }
}

// TestMode gives deterministic output regardless of the terminal.
func TestMode() Option {
	return func(p *Printer) {
		p.mode = ModePlain
		p.colorCheck = func() bool { return false }
	}
}

// Silent discards all output.
func Silent() Option {
	return func(p *Printer) { p.silent = true }
}

// WithPrefix prepends prefix to every line.
func WithPrefix(prefix string) Option {
	return func(p *Printer) { p.prefix = prefix }
}
