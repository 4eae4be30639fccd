package cliconfig

import (
	"strings"

	"github.com/bft-labs/srcpack/internal/adapters/fs"
	"github.com/bft-labs/srcpack/internal/domain"
)

// Flag names shared by the CLI, the config layers and the prompt.
const (
	FlagConfig      = "config"
	FlagInput       = "input"
	FlagOutput      = "output"
	FlagMaxWords    = "max-words"
	FlagOnePerFile  = "one-per-file"
	FlagExt         = "ext"
	FlagExcludeDir  = "exclude-dir"
	FlagNames       = "names"
	FlagOversized   = "oversized"
	FlagWatch       = "watch"
	FlagInteractive = "interactive"
	FlagLogLevel    = "log-level"
)

func nameStyle(v string) fs.NameStyle {
	return fs.NameStyle(strings.ToLower(strings.TrimSpace(v)))
}

func policy(v string) domain.OversizedPolicy {
	return domain.OversizedPolicy(strings.ToLower(strings.TrimSpace(v)))
}
