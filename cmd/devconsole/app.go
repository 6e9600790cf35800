package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"devconsole/internal/config"
	"devconsole/internal/console"
	"devconsole/internal/events"
	"devconsole/internal/logger"
	"devconsole/internal/output"
	"devconsole/internal/registry"
	"devconsole/internal/shell"
	"devconsole/internal/version"
	"devconsole/pkg/contypes"
)

// newConsole builds a console from the loaded settings, with the standard
// variables registered and the configured values applied.
func newConsole(s *config.Settings) (*console.Console, error) {
	c, err := console.New(s.ConsoleOptions()...)
	if err != nil {
		return nil, err
	}
	if err := registerStandardVars(c.Registry()); err != nil {
		return nil, err
	}
	c.Subscribe(events.SinkFunc(applyLogVars))
	if err := s.ApplyCVars(c.Registry()); err != nil {
		logger.Warn("Some configured variables were not applied", "error", err)
	}
	c.Emit()
	return c, nil
}

// applyLogVars keeps the process logger in step with developer and
// con_timestamp.
func applyLogVars(e contypes.Event) {
	ev, ok := e.(contypes.VarChangedEvent)
	if !ok {
		return
	}
	switch ev.Name {
	case "developer":
		if ev.NewValue == "0" {
			logger.Logger.SetLevel(log.InfoLevel)
		} else {
			logger.Logger.SetLevel(log.DebugLevel)
		}
	case "con_timestamp":
		if ev.NewValue == "1" {
			logger.Logger.SetReportTimestamp(true)
			logger.Logger.SetTimeFormat(time.TimeOnly)
		} else {
			logger.Logger.SetReportTimestamp(false)
		}
	}
}

func registerStandardVars(reg *registry.Registry) error {
	vars := []*registry.ConVar{
		registry.NewVar("version", version.GetBaseVersion(),
			registry.WithDescription("Console build version"),
			registry.WithFlags(contypes.FlagReadOnly)),
		registry.NewVar("developer", 0,
			registry.WithDescription("Log debug output when non-zero"),
			registry.WithRange(0, 2),
			registry.WithFlags(contypes.FlagArchive|contypes.FlagDevOnly)),
		registry.NewVar("con_timestamp", false,
			registry.WithDescription("Prefix log lines with a timestamp"),
			registry.WithFlags(contypes.FlagArchive|contypes.FlagNotify)),
	}
	for _, cv := range vars {
		if err := reg.RegisterVar(cv); err != nil {
			return err
		}
	}
	return nil
}

func newPrinter(s *config.Settings) (*output.Printer, error) {
	if s.TestMode {
		return output.NewPrinter(output.TestMode()), nil
	}
	mode, err := output.ParseMode(s.Style)
	if err != nil {
		return nil, err
	}
	theme := output.DefaultTheme()
	if s.Theme != "" {
		data, err := os.ReadFile(s.Theme)
		if err != nil {
			return nil, fmt.Errorf("failed to read theme file: %w", err)
		}
		if theme, err = output.ParseTheme(data); err != nil {
			return nil, err
		}
	}
	return output.NewPrinter(output.WithMode(mode), output.WithStyles(theme)), nil
}

func newHost() (*shell.Host, error) {
	c, err := newConsole(settings)
	if err != nil {
		return nil, err
	}
	printer, err := newPrinter(settings)
	if err != nil {
		return nil, err
	}
	return shell.New(c, printer, settings.Prompt)
}

func runShell(_ *cobra.Command, _ []string) error {
	logger.Info("Starting devconsole", "version", version.Version)
	h, err := newHost()
	if err != nil {
		return err
	}
	h.Run(fmt.Sprintf("%s\nType 'help' for commands, '? <text>' for suggestions, 'quit' to leave.",
		version.GetFormattedVersion()))
	return nil
}

func runScript(cmd *cobra.Command, args []string) error {
	path := args[0]
	keepGoing, _ := cmd.Flags().GetBool("keep-going")
	logger.Info("Running script", "script", path)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	h, err := newHost()
	if err != nil {
		return err
	}
	if err := h.RunScript(f); err != nil {
		if !keepGoing {
			return err
		}
		logger.Warn("Script line rejected", "script", path, "error", err)
	}
	return nil
}

func runDocs(cmd *cobra.Command, _ []string) error {
	raw, _ := cmd.Flags().GetBool("raw")
	c, err := newConsole(settings)
	if err != nil {
		return err
	}
	doc := output.Reference(c.Registry())
	if raw {
		_, err = fmt.Fprint(cmd.OutOrStdout(), doc)
		return err
	}

	r, err := output.NewMarkdownRenderer(!settings.TestMode && output.SupportsColor(), 100)
	if err != nil {
		return err
	}
	rendered, err := r.Render(doc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
	return err
}

func runDump(cmd *cobra.Command, _ []string) error {
	c, err := newConsole(settings)
	if err != nil {
		return err
	}
	cvars := make(map[string]string)
	for _, v := range c.Registry().Archived() {
		cvars[v.Name] = v.Value
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(map[string]map[string]string{config.KeyCVars: cvars}); err != nil {
		return fmt.Errorf("failed to encode archive: %w", err)
	}
	return enc.Close()
}

func runVersion(cmd *cobra.Command, _ []string) {
	fmt.Fprintln(cmd.OutOrStdout(), version.GetDetailedVersion())
}
