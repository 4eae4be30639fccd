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

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false
	zero := 0
	unbounded := batch.Unbounded
	words := 2500
	negative := -3

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				InputDir:    "/test/in",
				OutputDir:   "/test/out",
				MaxWords:    &words,
				OnePerFile:  &trueVal,
				Extensions:  []string{"go"},
				ExcludeDirs: []string{"vendor"},
				Names:       "relative",
				Oversized:   "SKIP",
				Watch:       &falseVal,
				LogLevel:    "warn",
			},
			changed: map[string]bool{},
			initial: Config{Watch: true},
			expected: Config{
				InputDir:    "/test/in",
				OutputDir:   "/test/out",
				MaxWords:    2500,
				OnePerFile:  true,
				Extensions:  []string{"go"},
				ExcludeDirs: []string{"vendor"},
				Names:       fs.NameRelative,
				Oversized:   domain.OversizedSkip,
				Watch:       false,
				LogLevel:    "warn",
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				InputDir:   "/config/in",
				MaxWords:   &words,
				Extensions: []string{"go"},
			},
			changed: map[string]bool{FlagInput: true, FlagExt: true},
			initial: Config{
				InputDir:   "/flag/in",
				Extensions: []string{"rs"},
			},
			expected: Config{
				InputDir:   "/flag/in", // unchanged because flag was set
				MaxWords:   2500,
				Extensions: []string{"rs"},
			},
		},
		{
			name:       "explicit zero max words is a limit",
			fileConfig: FileConfig{MaxWords: &zero},
			changed:    map[string]bool{},
			initial:    Config{MaxWords: 10},
			expected:   Config{MaxWords: 0},
		},
		{
			name:       "minus one max words is unlimited",
			fileConfig: FileConfig{MaxWords: &unbounded},
			changed:    map[string]bool{},
			initial:    Config{MaxWords: 10},
			expected:   Config{MaxWords: batch.Unbounded},
		},
		{
			name:       "unset fields leave config alone",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    Config{MaxWords: 10, OnePerFile: true},
			expected:   Config{MaxWords: 10, OnePerFile: true},
		},
		{
			name:       "max words below unbounded is an error",
			fileConfig: FileConfig{MaxWords: &negative},
			changed:    map[string]bool{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()

	tomlPath := filepath.Join(tmpDir, "srcpack.toml")
	tomlContent := `
input_dir = "/tmp/site"
max_words = 3000
one_per_file = true
extensions = ["js", "ts"]
oversized = "skip"
`
	yamlPath := filepath.Join(tmpDir, "srcpack.yaml")
	yamlContent := `
input_dir: /tmp/site
max_words: 3000
one_per_file: true
extensions: [js, ts]
oversized: skip
`
	for path, content := range map[string]string{tomlPath: tomlContent, yamlPath: yamlContent} {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	for _, path := range []string{tomlPath, yamlPath} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			fc, err := LoadFileConfig(path)
			require.NoError(t, err)

			assert.Equal(t, "/tmp/site", fc.InputDir)
			require.NotNil(t, fc.MaxWords)
			assert.Equal(t, 3000, *fc.MaxWords)
			require.NotNil(t, fc.OnePerFile)
			assert.True(t, *fc.OnePerFile)
			assert.Equal(t, []string{"js", "ts"}, fc.Extensions)
			assert.Equal(t, "skip", fc.Oversized)
			assert.Nil(t, fc.Watch)
		})
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.toml")
	assert.Error(t, err)
}

func TestLoadFileConfig_Invalid(t *testing.T) {
	tmpDir := t.TempDir()

	cases := map[string]string{
		"invalid.toml": "input_dir = \"/test\"\nthis is not valid toml\n",
		"invalid.yml":  "input_dir: [unterminated\n",
	}
	for name, content := range cases {
		path := filepath.Join(tmpDir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		_, err := LoadFileConfig(path)
		assert.Error(t, err, name)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if path != "" {
		assert.Contains(t, path, ".srcpack")
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")
	require.NoError(t, os.WriteFile(existingFile, []byte("test"), 0o644))

	assert.True(t, FileExists(existingFile))
	assert.False(t, FileExists(filepath.Join(tmpDir, "nonexistent.txt")))
}
