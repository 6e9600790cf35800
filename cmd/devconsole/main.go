// Package main provides the devconsole CLI: an interactive developer console,
// batch script execution and reference generation over the same registry.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"devconsole/internal/config"
	"devconsole/internal/logger"
)

var (
	cfgFile  string
	envFile  string
	settings *config.Settings
)

// rootCmd runs the interactive shell when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "devconsole",
	Short: "Developer console with console variables and commands",
	Long: `devconsole is an embeddable developer console: typed console variables,
named commands, fuzzy completion, and a parse/execute/emit pipeline.`,
	SilenceUsage: true,
	RunE:         runShell,
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive console",
	RunE:  runShell,
}

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Execute a console script line by line",
	Args:  cobra.ExactArgs(1),
	RunE:  runScript,
}

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Print the command and variable reference",
	RunE:  runDocs,
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print archived variables as YAML",
	RunE:  runDump,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run:   runVersion,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file [default: ./devconsole.yaml or ~/.config/devconsole/devconsole.yaml]")
	flags.StringVar(&envFile, "env-file", ".env", "Load environment variables from this file if it exists")
	flags.String(config.KeyLogLevel, "", "Set log level (debug|info|warn|error) [default: info]")
	flags.String(config.KeyLogFile, "", "Write logs to file instead of stderr")
	flags.Bool(config.KeyTestMode, false, "Run in deterministic test mode")
	flags.String(config.KeyPermission, "", "Permission level (user|admin|server) [default: server]")
	flags.String(config.KeyStyle, "", "Output style (auto|plain|styled|json) [default: auto]")
	flags.String(config.KeyPrompt, "", "Interactive prompt")
	flags.Bool(config.KeyEchoCommands, false, "Echo each invocation before running it")
	flags.Bool(config.KeyDevMode, true, "Expose development-only variables and commands")

	for _, key := range []string{
		config.KeyLogLevel, config.KeyLogFile, config.KeyTestMode, config.KeyPermission,
		config.KeyStyle, config.KeyPrompt, config.KeyEchoCommands, config.KeyDevMode,
	} {
		if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", key, err)
			os.Exit(1)
		}
	}

	docsCmd.Flags().Bool("raw", false, "Print markdown without rendering")
	runCmd.Flags().Bool("keep-going", false, "Continue after a rejected line")

	rootCmd.AddCommand(shellCmd, runCmd, docsCmd, dumpCmd, versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := config.LoadDotEnv(envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading env file: %v\n", err)
		os.Exit(1)
	}
	s, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Configure(s.LogLevel, s.LogFile, s.TestMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
	settings = s
}
