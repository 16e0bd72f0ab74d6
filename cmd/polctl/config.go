package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/polkit/pkg/pol"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// settings is the effective polctl configuration.
type settings struct {
	GroupPolicyDir string `toml:"group_policy_dir" yaml:"group_policy_dir"`
	DefaultScope   string `toml:"default_scope" yaml:"default_scope"`
	Output         string `toml:"output" yaml:"output"`
	LogLevel       string `toml:"log_level" yaml:"log_level"`
	HiveRoot       string `toml:"hive_root" yaml:"hive_root"`
}

func defaultSettings() settings {
	return settings{
		DefaultScope: string(pol.Machine),
		Output:       outputText,
		LogLevel:     "warn",
	}
}

// loadSettings reads a .toml or .yaml/.yml file over the defaults.
func loadSettings(path string) (settings, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return loadTOML(path)
	case ".yaml", ".yml":
		return loadYAML(path)
	default:
		return settings{}, fmt.Errorf("config %s: unsupported extension (want .toml, .yaml or .yml)", path)
	}
}

func loadTOML(path string) (settings, error) {
	s := defaultSettings()

	var raw settings
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return settings{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return settings{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("group_policy_dir") {
		s.GroupPolicyDir = strings.TrimSpace(raw.GroupPolicyDir)
	}
	if meta.IsDefined("default_scope") {
		s.DefaultScope = strings.TrimSpace(raw.DefaultScope)
	}
	if meta.IsDefined("output") {
		s.Output = strings.TrimSpace(raw.Output)
	}
	if meta.IsDefined("log_level") {
		s.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("hive_root") {
		s.HiveRoot = strings.TrimSpace(raw.HiveRoot)
	}
	return s, nil
}

func loadYAML(path string) (settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return settings{}, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var s settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return settings{}, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}
	applyDefaults(&s)
	return s, nil
}

func applyDefaults(s *settings) {
	d := defaultSettings()
	if s.DefaultScope == "" {
		s.DefaultScope = d.DefaultScope
	}
	if s.Output == "" {
		s.Output = d.Output
	}
	if s.LogLevel == "" {
		s.LogLevel = d.LogLevel
	}
}

// applyEnvOverrides lets POLCTL_<KEY> variables override file values.
func applyEnvOverrides(s *settings) {
	if val := os.Getenv("POLCTL_GROUP_POLICY_DIR"); val != "" {
		s.GroupPolicyDir = val
	}
	if val := os.Getenv("POLCTL_DEFAULT_SCOPE"); val != "" {
		s.DefaultScope = val
	}
	if val := os.Getenv("POLCTL_OUTPUT"); val != "" {
		s.Output = val
	}
	if val := os.Getenv("POLCTL_LOG_LEVEL"); val != "" {
		s.LogLevel = val
	}
	if val := os.Getenv("POLCTL_HIVE_ROOT"); val != "" {
		s.HiveRoot = val
	}
}

func validateSettings(s *settings) error {
	s.Output = strings.ToLower(s.Output)
	switch s.Output {
	case outputText, outputJSON, outputYAML:
	default:
		return fmt.Errorf("unknown output format %q (must be text, json or yaml)", s.Output)
	}
	scope, err := pol.ParseScope(s.DefaultScope)
	if err != nil {
		return fmt.Errorf("default_scope: %w", err)
	}
	s.DefaultScope = string(scope)
	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q (must be debug, info, warn or error)", s.LogLevel)
	}
	return nil
}
