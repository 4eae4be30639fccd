package cliconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/srcpack/internal/adapters/fs"
	"github.com/bft-labs/srcpack/internal/batch"
	"github.com/bft-labs/srcpack/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".", cfg.InputDir)
	assert.Equal(t, batch.Unbounded, cfg.MaxWords)
	assert.Equal(t, []string{"js", "html", "css"}, cfg.Extensions)
	assert.Equal(t, fs.NameBase, cfg.Names)
	assert.Equal(t, domain.OversizedIsolate, cfg.Oversized)
	assert.Equal(t, "unlimited", cfg.MaxWordsLabel())

	// Defaults must not alias the package level suffix list.
	cfg.Extensions[0] = "go"
	assert.Equal(t, "js", fs.DefaultSuffixes[0])
}

func TestConfig_Validate(t *testing.T) {
	input := t.TempDir()
	file := filepath.Join(input, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		check   func(*testing.T, Config)
	}{
		{
			name:   "derives output folder",
			mutate: func(c *Config) {},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, filepath.Join(input, "out"), c.OutputDir)
			},
		},
		{
			name: "keeps explicit output folder",
			mutate: func(c *Config) {
				c.OutputDir = filepath.Join(input, "elsewhere")
			},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, filepath.Join(input, "elsewhere"), c.OutputDir)
			},
		},
		{
			name: "normalises extensions",
			mutate: func(c *Config) {
				c.Extensions = []string{" JS", "css", "", "js"}
				c.ExcludeDirs = []string{"node_modules", " ", "node_modules"}
			},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, []string{"js", "css"}, c.Extensions)
				assert.Equal(t, []string{"node_modules"}, c.ExcludeDirs)
			},
		},
		{
			name: "empty policy values fall back to defaults",
			mutate: func(c *Config) {
				c.Names = ""
				c.Oversized = ""
			},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, fs.NameBase, c.Names)
				assert.Equal(t, domain.OversizedIsolate, c.Oversized)
			},
		},
		{
			name:   "zero max words is a limit",
			mutate: func(c *Config) { c.MaxWords = 0 },
			check: func(t *testing.T, c Config) {
				assert.Equal(t, 0, c.MaxWords)
				assert.Equal(t, "0", c.MaxWordsLabel())
			},
		},
		{
			name:    "missing input folder",
			mutate:  func(c *Config) { c.InputDir = filepath.Join(input, "missing") },
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "input is a file",
			mutate:  func(c *Config) { c.InputDir = file },
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "max words below unbounded",
			mutate:  func(c *Config) { c.MaxWords = -5 },
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "no extensions",
			mutate:  func(c *Config) { c.Extensions = []string{" ", ""} },
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "unknown names style",
			mutate:  func(c *Config) { c.Names = "full" },
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "unknown oversized policy",
			mutate:  func(c *Config) { c.Oversized = "truncate" },
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "chatty" },
			wantErr: domain.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.InputDir = input
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestConfig_ValidateRelativeInput(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, cfg.InputDir)
	assert.Equal(t, filepath.Join(wd, "out"), cfg.OutputDir)
}

func TestMaxWordsLabel(t *testing.T) {
	assert.Equal(t, "4000", Config{MaxWords: 4000}.MaxWordsLabel())
	assert.Equal(t, "0", Config{MaxWords: 0}.MaxWordsLabel())
	assert.Equal(t, "unlimited", Config{MaxWords: batch.Unbounded}.MaxWordsLabel())
}

func TestParseMaxWords(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "", want: batch.Unbounded},
		{in: " Unlimited ", want: batch.Unbounded},
		{in: "inf", want: batch.Unbounded},
		{in: "-1", want: batch.Unbounded},
		{in: "0", want: 0},
		{in: " 4000 ", want: 4000},
		{in: "-2", want: batch.Unbounded, wantErr: true},
		{in: "lots", want: batch.Unbounded, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMaxWords(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseYes(t *testing.T) {
	for _, v := range []string{"y", "Y", "yes", "true", "1", " YES "} {
		assert.True(t, parseYes(v), v)
	}
	for _, v := range []string{"", "n", "no", "0", "nah"} {
		assert.False(t, parseYes(v), v)
	}
}
