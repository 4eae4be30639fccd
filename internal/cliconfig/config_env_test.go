package cliconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/srcpack/internal/adapters/fs"
	"github.com/bft-labs/srcpack/internal/batch"
	"github.com/bft-labs/srcpack/internal/domain"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"SRCPACK_INPUT_DIR":    "/env/in",
				"SRCPACK_OUTPUT_DIR":   "/env/out",
				"SRCPACK_MAX_WORDS":    "4000",
				"SRCPACK_ONE_PER_FILE": "true",
				"SRCPACK_EXTENSIONS":   "go, ts ,",
				"SRCPACK_EXCLUDE_DIRS": "vendor,node_modules",
				"SRCPACK_NAMES":        "Relative",
				"SRCPACK_OVERSIZED":    "skip",
				"SRCPACK_WATCH":        "1",
				"SRCPACK_LOG_LEVEL":    "debug",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				InputDir:    "/env/in",
				OutputDir:   "/env/out",
				MaxWords:    4000,
				OnePerFile:  true,
				Extensions:  []string{"go", "ts"},
				ExcludeDirs: []string{"vendor", "node_modules"},
				Names:       fs.NameRelative,
				Oversized:   domain.OversizedSkip,
				Watch:       true,
				LogLevel:    "debug",
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"SRCPACK_INPUT_DIR": "/env/in",
				"SRCPACK_MAX_WORDS": "10",
				"SRCPACK_OVERSIZED": "skip",
			},
			changed: map[string]bool{FlagInput: true, FlagOversized: true},
			initial: Config{InputDir: "/flag/in", Oversized: domain.OversizedIsolate},
			expected: Config{
				InputDir:  "/flag/in",
				MaxWords:  10,
				Oversized: domain.OversizedIsolate,
			},
		},
		{
			name:     "zero max words is a limit",
			envVars:  map[string]string{"SRCPACK_MAX_WORDS": "0"},
			changed:  map[string]bool{},
			initial:  Config{MaxWords: 50},
			expected: Config{MaxWords: 0},
		},
		{
			name:     "unlimited max words",
			envVars:  map[string]string{"SRCPACK_MAX_WORDS": "unlimited"},
			changed:  map[string]bool{},
			initial:  Config{MaxWords: 50},
			expected: Config{MaxWords: batch.Unbounded},
		},
		{
			name:     "minus one max words is unlimited",
			envVars:  map[string]string{"SRCPACK_MAX_WORDS": "-1"},
			changed:  map[string]bool{},
			initial:  Config{MaxWords: 50},
			expected: Config{MaxWords: batch.Unbounded},
		},
		{
			name:    "returns error for invalid int",
			envVars: map[string]string{"SRCPACK_MAX_WORDS": "lots"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "returns error for other negative values",
			envVars: map[string]string{"SRCPACK_MAX_WORDS": "-2"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:     "handles bool 'no' as false",
			envVars:  map[string]string{"SRCPACK_ONE_PER_FILE": "no"},
			changed:  map[string]bool{},
			initial:  Config{OnePerFile: true},
			expected: Config{OnePerFile: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

// Integration test: precedence order (CLI > Env > File)
func TestConfigPrecedence(t *testing.T) {
	trueVal := true
	fileWords := 100

	fileConf := FileConfig{
		InputDir:   "/file/in",
		OutputDir:  "/file/out",
		MaxWords:   &fileWords,
		OnePerFile: &trueVal,
	}

	t.Setenv("SRCPACK_INPUT_DIR", "/env/in")
	t.Setenv("SRCPACK_OUTPUT_DIR", "/env/out")

	changed := map[string]bool{
		FlagInput: true,
	}

	cfg := DefaultConfig()
	cfg.InputDir = "/cli/in"

	require.NoError(t, ApplyFileConfig(&cfg, fileConf, changed))
	require.NoError(t, ApplyEnvConfig(&cfg, changed))

	assert.Equal(t, "/cli/in", cfg.InputDir, "CLI should win")
	assert.Equal(t, "/env/out", cfg.OutputDir, "env should override file")
	assert.Equal(t, 100, cfg.MaxWords, "file should set")
	assert.True(t, cfg.OnePerFile, "file should set")
	assert.Equal(t, []string{"js", "html", "css"}, cfg.Extensions)
}
