// Package config loads host settings from flags, the environment, an optional
// .env file and an optional devconsole.yaml, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"devconsole/internal/console"
	"devconsole/internal/registry"
	"devconsole/pkg/contypes"
)

const (
	// EnvPrefix is prepended to every key looked up in the environment,
	// e.g. DEVCONSOLE_LOG_LEVEL.
	EnvPrefix = "DEVCONSOLE"
	// FileName is the config file base name, without extension.
	FileName = "devconsole"
)

// Keys known to the loader.
const (
	KeyLogLevel     = "log-level"
	KeyLogFile      = "log-file"
	KeyTestMode     = "test-mode"
	KeyPrompt       = "prompt"
	KeyPermission   = "permission"
	KeyDevMode      = "dev-mode"
	KeyEchoCommands = "echo-commands"
	KeyMaxPending   = "max-pending"
	KeyMaxEvents    = "max-events"
	KeyStyle        = "style"
	KeyTheme        = "theme"
	KeyCVars        = "cvars"
)

// Styles lists the accepted values of the style key.
var Styles = []string{"auto", "plain", "styled", "json"}

// Settings is the decoded host configuration.
type Settings struct {
	LogLevel     string
	LogFile      string
	TestMode     bool
	Prompt       string
	Permission   contypes.PermissionLevel
	DevMode      bool
	EchoCommands bool
	MaxPending   int
	MaxEvents    int
	Style        string

	// Theme is the path of an optional YAML theme file.
	Theme string
	// CVars are applied to the registry at startup.
	CVars map[string]string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	def := console.DefaultConfig()
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyTestMode, false)
	v.SetDefault(KeyPrompt, "] ")
	v.SetDefault(KeyPermission, def.Permission.String())
	v.SetDefault(KeyDevMode, def.DevMode)
	v.SetDefault(KeyEchoCommands, def.EchoCommands)
	v.SetDefault(KeyMaxPending, def.MaxPending)
	v.SetDefault(KeyMaxEvents, def.MaxEvents)
	v.SetDefault(KeyStyle, "auto")
	v.SetDefault(KeyTheme, "")
}

// LoadDotEnv reads a .env file and exports its variables into the process
// environment. Variables that are already set win. A missing file is not an
// error.
func LoadDotEnv(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read .env file %s: %w", path, err)
	}

	envMap, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return fmt.Errorf("failed to parse .env file %s: %w", path, err)
	}
	for key, value := range envMap {
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to export %s: %w", key, err)
		}
	}
	return nil
}

// Load reads configFile, or devconsole.yaml from the working directory and
// $HOME/.config/devconsole when configFile is empty, and decodes v into
// Settings. A missing default config file is not an error.
func Load(v *viper.Viper, configFile string) (*Settings, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", FileName))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Settings, error) {
	perm, err := contypes.ParsePermission(v.GetString(KeyPermission))
	if err != nil {
		return nil, err
	}
	style := strings.ToLower(v.GetString(KeyStyle))
	if !validStyle(style) {
		return nil, fmt.Errorf("invalid style %q (expected one of %s)", style, strings.Join(Styles, ", "))
	}

	s := &Settings{
		LogLevel:     v.GetString(KeyLogLevel),
		LogFile:      v.GetString(KeyLogFile),
		TestMode:     v.GetBool(KeyTestMode),
		Prompt:       v.GetString(KeyPrompt),
		Permission:   perm,
		DevMode:      v.GetBool(KeyDevMode),
		EchoCommands: v.GetBool(KeyEchoCommands),
		MaxPending:   v.GetInt(KeyMaxPending),
		MaxEvents:    v.GetInt(KeyMaxEvents),
		Style:        style,
		Theme:        v.GetString(KeyTheme),
		CVars:        v.GetStringMapString(KeyCVars),
	}
	if s.MaxPending < 0 || s.MaxEvents < 0 {
		return nil, fmt.Errorf("queue bounds must not be negative (max-pending=%d, max-events=%d)", s.MaxPending, s.MaxEvents)
	}
	return s, nil
}

func validStyle(style string) bool {
	for _, s := range Styles {
		if s == style {
			return true
		}
	}
	return false
}

// ConsoleOptions translates the settings into console options.
func (s *Settings) ConsoleOptions() []console.Option {
	cfg := console.DefaultConfig()
	cfg.EchoCommands = s.EchoCommands
	cfg.DevMode = s.DevMode
	cfg.Permission = s.Permission
	cfg.MaxPending = s.MaxPending
	cfg.MaxEvents = s.MaxEvents
	return []console.Option{console.WithConfig(cfg)}
}

// ApplyCVars assigns the configured variables through the registry's normal
// validation, in name order. Every failure is reported; none stops the rest.
func (s *Settings) ApplyCVars(reg *registry.Registry) error {
	names := make([]string, 0, len(s.CVars))
	for name := range s.CVars {
		names = append(names, name)
	}
	sort.Strings(names)

	vars := make([]registry.ArchivedVar, len(names))
	for i, name := range names {
		vars[i] = registry.ArchivedVar{Name: name, Value: s.CVars[name]}
	}
	return reg.ApplyAll(vars)
}
