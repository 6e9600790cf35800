// Package shell hosts a console in an interactive ishell session, or runs
// console scripts line by line.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/abiosoft/ishell/v2"
	"github.com/abiosoft/readline"
	"github.com/charmbracelet/log"

	"devconsole/internal/commands"
	"devconsole/internal/completion"
	"devconsole/internal/console"
	"devconsole/internal/logger"
	"devconsole/internal/output"
)

// Stopper is implemented by the environment handed to console handlers.
type Stopper interface {
	Stop()
}

// Host drives a console from line input. It is the environment every
// handler receives.
type Host struct {
	console   *console.Console
	printer   *output.Printer
	completer *completion.Completer
	prompt    string
	logger    *log.Logger

	mu      sync.Mutex
	stopped bool
}

// New wires c to printer and registers the host commands.
func New(c *console.Console, printer *output.Printer, prompt string) (*Host, error) {
	h := &Host{
		console:   c,
		printer:   printer,
		completer: completion.New(c.Registry(), c.Handlers()),
		prompt:    prompt,
		logger:    logger.NewStyledLogger("Shell"),
	}
	c.Subscribe(output.NewSink(printer))

	if err := c.RegisterCommand(&commands.Func{
		CmdName:        "quit",
		CmdDescription: "Leave the console",
		CmdUsage:       "quit",
		Run:            quit,
	}); err != nil {
		return nil, err
	}
	return h, nil
}

func quit(ctx *commands.Context) error {
	s, ok := ctx.Env.(Stopper)
	if !ok {
		return fmt.Errorf("quit is not supported by this host")
	}
	s.Stop()
	return nil
}

// Console returns the hosted console.
func (h *Host) Console() *console.Console { return h.console }

// Stop ends Run or RunScript after the current line.
func (h *Host) Stop() {
	h.mu.Lock()
	h.stopped = true
	h.mu.Unlock()
}

// Stopped reports whether Stop was called.
func (h *Host) Stopped() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopped
}

// Process runs one line through the console with the host as environment.
func (h *Host) Process(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	h.logger.Debug("Processing input", "input", line)
	return h.console.Process(h, line)
}

// suggestPrefix starts a line that asks for completion suggestions instead
// of running anything.
const suggestPrefix = "?"

// HandleLine is the interactive entry point for one raw line. The line goes
// to the console untouched, so the console tokenizer is its only parser.
// A line starting with "?" prints suggestions for the rest of the line.
func (h *Host) HandleLine(line string) {
	trimmed := strings.TrimSpace(line)
	if rest, ok := strings.CutPrefix(trimmed, suggestPrefix); ok {
		h.Suggest(strings.TrimLeft(rest, " \t"))
		return
	}
	if err := h.Process(line); err != nil {
		h.logger.Error("Input rejected", "error", err)
		h.printer.Error(err.Error())
	}
}

// Suggest prints the completion candidates for line with matched runes
// highlighted.
func (h *Host) Suggest(line string) {
	suggestions := h.completer.Suggest(line, len([]rune(line)))
	if len(suggestions) == 0 {
		h.printer.Warning("No suggestions")
		return
	}
	base := h.printer.Style(output.SemanticPlain)
	hl := h.printer.Style(output.SemanticHighlight)
	muted := h.printer.Style(output.SemanticMuted)
	for _, s := range suggestions {
		text := output.Highlight(s.Text, s.Indices, base, hl)
		if s.Description != "" {
			text += " " + muted.Render("- "+s.Description)
		}
		h.printer.Println(text)
	}
}

// Run starts the interactive session and returns when it ends. Lines are
// read raw from readline; ishell's own command parsing is not used.
func (h *Host) Run(banner string) {
	sh := ishell.NewWithConfig(&readline.Config{Prompt: h.prompt})
	sh.CustomCompleter(completion.NewReadlineAdapter(h.completer))
	defer sh.Close()

	if banner != "" {
		sh.Println(banner)
	}

	interrupts := 0
	for !h.Stopped() {
		line, err := sh.ReadLineErr()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			interrupts++
			if interrupts >= 2 {
				h.Stop()
				continue
			}
			sh.Println("Input Ctrl-c once more to exit")
			continue
		case errors.Is(err, io.EOF):
			h.Stop()
			continue
		case err != nil:
			h.logger.Error("Read failed", "error", err)
			h.Stop()
			continue
		}
		interrupts = 0
		h.HandleLine(line)
	}
}

// RunScript processes r line by line until it ends or a handler stops the
// host. A rejected line is returned as an error with its line number.
func (h *Host) RunScript(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := h.Process(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if h.Stopped() {
			h.logger.Debug("Script stopped", "line", lineNo)
			return nil
		}
	}
	return scanner.Err()
}
