package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bft-labs/srcpack/internal/adapters/fs"
	"github.com/bft-labs/srcpack/internal/batch"
	"github.com/bft-labs/srcpack/internal/domain"
	"github.com/bft-labs/srcpack/pkg/log"
)

// DefaultOutputDirName is the folder created under the input folder when no
// output folder is configured.
const DefaultOutputDirName = "out"

// Config holds CLI configuration for srcpack.
type Config struct {
	InputDir  string
	OutputDir string

	// MaxWords is the word limit per output file; batch.Unbounded means unlimited.
	MaxWords   int
	OnePerFile bool

	Extensions  []string
	ExcludeDirs []string

	Names     fs.NameStyle
	Oversized domain.OversizedPolicy

	Watch       bool
	Interactive bool
	LogLevel    string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		InputDir:   ".",
		MaxWords:   batch.Unbounded,
		Extensions: append([]string(nil), fs.DefaultSuffixes...),
		Names:      fs.NameBase,
		Oversized:  domain.OversizedIsolate,
		LogLevel:   "info",
	}
}

// DefaultOutputDir returns the output folder used when none is configured.
func DefaultOutputDir(inputDir string) string {
	return filepath.Join(inputDir, DefaultOutputDirName)
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		c.InputDir = "."
	}
	abs, err := filepath.Abs(c.InputDir)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, c.InputDir, err)
	}
	c.InputDir = abs

	info, err := os.Stat(c.InputDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, c.InputDir)
	}

	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir(c.InputDir)
	}
	if abs, err := filepath.Abs(c.OutputDir); err == nil {
		c.OutputDir = abs
	}

	if c.MaxWords < batch.Unbounded {
		return fmt.Errorf("%w: max words must be 0 or more, or %d for unlimited", domain.ErrInvalidConfig, batch.Unbounded)
	}

	c.Extensions = normalizeList(c.Extensions, true)
	if len(c.Extensions) == 0 {
		return fmt.Errorf("%w: at least one file extension is required", domain.ErrInvalidConfig)
	}
	c.ExcludeDirs = normalizeList(c.ExcludeDirs, false)

	if c.Names == "" {
		c.Names = fs.NameBase
	}
	if !c.Names.Valid() {
		return fmt.Errorf("%w: names must be %q or %q, got %q", domain.ErrInvalidConfig, fs.NameBase, fs.NameRelative, c.Names)
	}

	if c.Oversized == "" {
		c.Oversized = domain.OversizedIsolate
	}
	if !c.Oversized.Valid() {
		return fmt.Errorf("%w: oversized must be %q or %q, got %q", domain.ErrInvalidConfig, domain.OversizedIsolate, domain.OversizedSkip, c.Oversized)
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	return nil
}

// MaxWordsLabel renders the word limit for humans.
func (c Config) MaxWordsLabel() string {
	if c.MaxWords < 0 {
		return "unlimited"
	}
	return strconv.Itoa(c.MaxWords)
}

// ParseMaxWords reads a word limit written by a person. Blank, "unlimited",
// "inf" and -1 mean batch.Unbounded; 0 is a real limit.
func ParseMaxWords(value string) (int, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "", "unlimited", "inf", "infinite", "-1":
		return batch.Unbounded, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return batch.Unbounded, fmt.Errorf("invalid word limit %q", value)
	}
	if n < 0 {
		return batch.Unbounded, fmt.Errorf("negative word limit %d", n)
	}
	return n, nil
}

// normalizeList trims entries, drops empties and duplicates, and optionally lowercases.
func normalizeList(in []string, lower bool) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if lower {
			v = strings.ToLower(v)
		}
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// splitList splits a comma separated value.
func splitList(value string) []string {
	return normalizeList(strings.Split(value, ","), false)
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a list value if not empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), value...)
}

// setMaxWords sets a word limit from a pointer if not nil and flag not changed.
// Zero is a meaningful value, so presence is signalled by the pointer.
func (s *configSetter) setMaxWords(flag string, value *int, dst *int) error {
	if value == nil || s.changed[flag] {
		return nil
	}
	if *value < batch.Unbounded {
		return fmt.Errorf("%s must be 0 or more, or %d for unlimited: %d", flag, batch.Unbounded, *value)
	}
	*dst = *value
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setMaxWordsFromString parses a word limit and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setMaxWordsFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	n, err := ParseMaxWords(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = n
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1", "yes", "y" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = parseYes(value)
}

// setStringsFromString splits a comma separated list and sets the destination.
func (s *configSetter) setStringsFromString(flag, value string, dst *[]string) {
	s.setStrings(flag, splitList(value), dst)
}

// parseYes interprets the answers accepted for boolean settings.
func parseYes(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}
