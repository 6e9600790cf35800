package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"devconsole/internal/config"
	"devconsole/internal/logger"
	"devconsole/internal/registry"
	"devconsole/pkg/contypes"
)

func testSettings(t *testing.T) *config.Settings {
	t.Helper()
	old := settings
	settings = &config.Settings{
		Permission: contypes.PermissionServer,
		DevMode:    true,
		MaxPending: 16,
		MaxEvents:  64,
		Style:      "plain",
		Prompt:     "] ",
		TestMode:   true,
	}
	t.Cleanup(func() { settings = old })
	return settings
}

func TestNewConsole_StandardVars(t *testing.T) {
	s := testSettings(t)
	c, err := newConsole(s)
	require.NoError(t, err)

	reg := c.Registry()
	for _, name := range []string{"version", "developer", "con_timestamp", registry.CheatsVar} {
		assert.True(t, reg.Has(name), name)
	}
	assert.ErrorIs(t, reg.SetString("version", "9.9.9"), contypes.ErrReadOnly)
}

func TestNewConsole_AppliesConfiguredVars(t *testing.T) {
	s := testSettings(t)
	s.CVars = map[string]string{"developer": "1", "unknown_var": "x"}
	t.Cleanup(func() { logger.Logger.SetLevel(log.InfoLevel) })

	c, err := newConsole(s)
	require.NoError(t, err, "bad configured values are logged, not fatal")

	v, err := registry.Get[int](c.Registry(), "developer")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, log.DebugLevel, logger.Logger.GetLevel())
}

func TestApplyLogVars(t *testing.T) {
	t.Cleanup(func() {
		logger.Logger.SetLevel(log.InfoLevel)
		logger.Logger.SetReportTimestamp(false)
	})

	applyLogVars(contypes.VarChangedEvent{Name: "developer", OldValue: "0", NewValue: "2"})
	assert.Equal(t, log.DebugLevel, logger.Logger.GetLevel())
	applyLogVars(contypes.VarChangedEvent{Name: "developer", OldValue: "2", NewValue: "0"})
	assert.Equal(t, log.InfoLevel, logger.Logger.GetLevel())
	applyLogVars(contypes.Info("ignored"))
}

func TestRunDump(t *testing.T) {
	s := testSettings(t)
	s.CVars = map[string]string{"con_timestamp": "0", "developer": "2"}

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	t.Cleanup(func() { logger.Logger.SetLevel(log.InfoLevel) })
	require.NoError(t, runDump(cmd, nil))

	var doc map[string]map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, map[string]string{"con_timestamp": "0", "developer": "2"}, doc["cvars"])
}

func TestRunDocs(t *testing.T) {
	testSettings(t)

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.Flags().Bool("raw", true, "")
	cmd.SetOut(&buf)
	require.NoError(t, runDocs(cmd, nil))
	assert.Contains(t, buf.String(), "# Console reference")
	assert.Contains(t, buf.String(), "| `help` |")

	buf.Reset()
	require.NoError(t, cmd.Flags().Set("raw", "false"))
	require.NoError(t, runDocs(cmd, nil))
	assert.Contains(t, buf.String(), "Console reference")
}

func TestRunScript(t *testing.T) {
	testSettings(t)
	path := filepath.Join(t.TempDir(), "setup.cfg")
	require.NoError(t, os.WriteFile(path, []byte("developer 0\nquit\n"), 0o600))

	cmd := &cobra.Command{}
	cmd.Flags().Bool("keep-going", false, "")
	assert.NoError(t, runScript(cmd, []string{path}))
	assert.Error(t, runScript(cmd, []string{filepath.Join(t.TempDir(), "missing")}))
}

func TestNewPrinter(t *testing.T) {
	s := testSettings(t)
	s.TestMode = false

	p, err := newPrinter(s)
	require.NoError(t, err)
	assert.False(t, p.IsStylable(), "plain style never applies the theme")

	s.Style = "bogus"
	_, err = newPrinter(s)
	assert.Error(t, err)

	s.Style = "styled"
	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte("name: mine\nstyles:\n  error:\n    bold: true\n"), 0o600))
	s.Theme = themePath
	p, err = newPrinter(s)
	require.NoError(t, err)
	assert.True(t, p.IsStylable())

	s.Theme = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = newPrinter(s)
	assert.Error(t, err)

	s.TestMode = true
	p, err = newPrinter(s)
	require.NoError(t, err)
	assert.False(t, p.IsStylable())
}
