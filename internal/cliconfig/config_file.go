package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileConfig mirrors Config for TOML and YAML config files.
// Pointers distinguish "unset" from zero values.
type FileConfig struct {
	InputDir    string   `toml:"input_dir" yaml:"input_dir"`
	OutputDir   string   `toml:"output_dir" yaml:"output_dir"`
	MaxWords    *int     `toml:"max_words" yaml:"max_words"`
	OnePerFile  *bool    `toml:"one_per_file" yaml:"one_per_file"`
	Extensions  []string `toml:"extensions" yaml:"extensions"`
	ExcludeDirs []string `toml:"exclude_dirs" yaml:"exclude_dirs"`
	Names       string   `toml:"names" yaml:"names"`
	Oversized   string   `toml:"oversized" yaml:"oversized"`
	Watch       *bool    `toml:"watch" yaml:"watch"`
	LogLevel    string   `toml:"log_level" yaml:"log_level"`
}

// LoadFileConfig reads and parses a config file from the given path.
// Files ending in .yaml or .yml are parsed as YAML, everything else as TOML.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &fc)
	default:
		err = toml.Unmarshal(b, &fc)
	}
	if err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.srcpack/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".srcpack", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString(FlagInput, fc.InputDir, &cfg.InputDir)
	s.setString(FlagOutput, fc.OutputDir, &cfg.OutputDir)
	s.setString(FlagLogLevel, fc.LogLevel, &cfg.LogLevel)

	if fc.Names != "" && !changed[FlagNames] {
		cfg.Names = nameStyle(fc.Names)
	}
	if fc.Oversized != "" && !changed[FlagOversized] {
		cfg.Oversized = policy(fc.Oversized)
	}

	if err := s.setMaxWords(FlagMaxWords, fc.MaxWords, &cfg.MaxWords); err != nil {
		return err
	}

	s.setStrings(FlagExt, fc.Extensions, &cfg.Extensions)
	s.setStrings(FlagExcludeDir, fc.ExcludeDirs, &cfg.ExcludeDirs)

	s.setBool(FlagOnePerFile, fc.OnePerFile, &cfg.OnePerFile)
	s.setBool(FlagWatch, fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
