// Package prompt asks for run settings on the terminal.
//
// Only settings that were not given as flags are asked for. Values from the
// config file or environment are offered as defaults, so pressing Enter keeps
// them.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bft-labs/srcpack/internal/cliconfig"
)

// ErrAborted is returned when the user cancels the questionnaire.
var ErrAborted = errors.New("prompt: aborted")

const (
	keyConfirm    = "confirm"
	keyInput      = cliconfig.FlagInput
	keyMaxWords   = cliconfig.FlagMaxWords
	keyOnePerFile = cliconfig.FlagOnePerFile
	keyOutput     = cliconfig.FlagOutput
)

var noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

// Ask runs the questionnaire on in/out and writes the answers into cfg.
// Questions whose flag is set in changed are not asked.
func Ask(cfg *cliconfig.Config, changed map[string]bool, in io.Reader, out io.Writer) error {
	questions := buildQuestions(*cfg, changed)

	p := tea.NewProgram(newModel(questions), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}

	m, ok := final.(model)
	if !ok || m.aborted {
		return ErrAborted
	}

	for _, n := range Apply(cfg, m.answers) {
		fmt.Fprintln(out, noticeStyle.Render(n))
	}
	return nil
}

// buildQuestions builds the questionnaire for cfg in the order the tool asks them.
func buildQuestions(cfg cliconfig.Config, changed map[string]bool) []question {
	qs := []question{{
		key:    keyConfirm,
		kind:   kindConfirm,
		title:  "Current file extensions to search: " + strings.Join(cfg.Extensions, ", "),
		detail: "Press Enter to continue with these, or Ctrl+C to abort...",
	}}

	if !changed[cliconfig.FlagInput] {
		qs = append(qs, question{
			key:   keyInput,
			title: "Path to the input folder containing files to be read:",
			def:   func(map[string]string) string { return absOrSelf(cfg.InputDir) },
		})
	}

	if !changed[cliconfig.FlagMaxWords] {
		qs = append(qs, question{
			key:    keyMaxWords,
			title:  "Maximum number of words allowed per output file:",
			detail: "a whole number, blank for unlimited",
			def:    func(map[string]string) string { return cfg.MaxWordsLabel() },
		})
	}

	if !changed[cliconfig.FlagOnePerFile] {
		qs = append(qs, question{
			key:   keyOnePerFile,
			title: "Should every file create a new output file? (y/N)",
			def: func(map[string]string) string {
				if cfg.OnePerFile {
					return "y"
				}
				return "n"
			},
		})
	}

	if !changed[cliconfig.FlagOutput] {
		qs = append(qs, question{
			key:   keyOutput,
			title: "Path to the output folder for the text files:",
			def: func(answers map[string]string) string {
				if cfg.OutputDir != "" {
					return absOrSelf(cfg.OutputDir)
				}
				input := cfg.InputDir
				if v := answers[keyInput]; v != "" {
					input = v
				}
				return cliconfig.DefaultOutputDir(absOrSelf(input))
			},
		})
	}

	return qs
}

// Apply copies answers into cfg and returns notices for the user.
func Apply(cfg *cliconfig.Config, answers map[string]string) []string {
	var notices []string

	if v, ok := answers[keyInput]; ok && v != "" {
		cfg.InputDir = v
	}

	if v, ok := answers[keyMaxWords]; ok {
		n, err := cliconfig.ParseMaxWords(v)
		if err != nil {
			notices = append(notices, "Invalid number, using unlimited.")
		}
		cfg.MaxWords = n
	}

	if v, ok := answers[keyOnePerFile]; ok {
		cfg.OnePerFile = strings.EqualFold(strings.TrimSpace(v), "y") || strings.EqualFold(strings.TrimSpace(v), "yes")
	}

	if v, ok := answers[keyOutput]; ok && v != "" {
		cfg.OutputDir = v
	}

	return notices
}

func absOrSelf(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
