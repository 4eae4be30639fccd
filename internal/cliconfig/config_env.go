package cliconfig

import "os"

// EnvPrefix prefixes every environment variable read by srcpack.
const EnvPrefix = "SRCPACK_"

// ApplyEnvConfig applies configuration from environment variables (SRCPACK_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	return applyEnv(cfg, changed, os.Getenv)
}

func applyEnv(cfg *Config, changed map[string]bool, getenv func(string) string) error {
	s := newConfigSetter(changed)
	env := func(name string) string { return getenv(EnvPrefix + name) }

	s.setString(FlagInput, env("INPUT_DIR"), &cfg.InputDir)
	s.setString(FlagOutput, env("OUTPUT_DIR"), &cfg.OutputDir)
	s.setString(FlagLogLevel, env("LOG_LEVEL"), &cfg.LogLevel)

	if v := env("NAMES"); v != "" && !changed[FlagNames] {
		cfg.Names = nameStyle(v)
	}
	if v := env("OVERSIZED"); v != "" && !changed[FlagOversized] {
		cfg.Oversized = policy(v)
	}

	if err := s.setMaxWordsFromString(FlagMaxWords, env("MAX_WORDS"), &cfg.MaxWords); err != nil {
		return err
	}

	s.setStringsFromString(FlagExt, env("EXTENSIONS"), &cfg.Extensions)
	s.setStringsFromString(FlagExcludeDir, env("EXCLUDE_DIRS"), &cfg.ExcludeDirs)

	s.setBoolFromString(FlagOnePerFile, env("ONE_PER_FILE"), &cfg.OnePerFile)
	s.setBoolFromString(FlagWatch, env("WATCH"), &cfg.Watch)

	return nil
}
