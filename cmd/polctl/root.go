package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/polkit/pkg/pol"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	outputFlag string
	configPath string
	rootDir    string

	// Resolved before each command runs
	cfg    = defaultSettings()
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:   "polctl",
	Short: "Inspect Group Policy Registry.pol files",
	Long: `polctl reads Group Policy registry-policy files (Registry.pol), lists
their records, looks up values, validates files and exports them as .reg text.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format (same as --output json)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "GroupPolicy directory holding the User and Machine stores")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup merges the config file, environment and flags, then builds the logger.
func setup() error {
	s := defaultSettings()
	if configPath != "" {
		loaded, err := loadSettings(configPath)
		if err != nil {
			return err
		}
		s = loaded
	}
	applyEnvOverrides(&s)

	if rootDir != "" {
		s.GroupPolicyDir = rootDir
	}
	if jsonOut {
		s.Output = outputJSON
	}
	if outputFlag != "" {
		s.Output = outputFlag
	}
	if verbose {
		s.LogLevel = "debug"
	}
	if err := validateSettings(&s); err != nil {
		return err
	}

	cfg = s
	logger = newLogger(os.Stderr, cfg.LogLevel)
	return nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func newLoader() *pol.Loader {
	return &pol.Loader{Logger: logger, Root: cfg.GroupPolicyDir}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printStructured writes v in the configured machine-readable format.
// It reports false for text output so the caller can render its own.
func printStructured(v interface{}) (bool, error) {
	switch cfg.Output {
	case outputJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return true, encoder.Encode(v)
	case outputYAML:
		encoder := yaml.NewEncoder(os.Stdout)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return true, err
		}
		return true, encoder.Close()
	default:
		return false, nil
	}
}
