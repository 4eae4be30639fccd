// Package report prints run progress for the person at the terminal.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bft-labs/srcpack/internal/ports"
)

// printer formats counts with thousands separators.
var printer = message.NewPrinter(language.English)

// Terminal implements ports.Reporter with styled lines on a writer.
// Colours are dropped automatically when the writer is not a terminal.
type Terminal struct {
	out io.Writer

	info  lipgloss.Style
	ok    lipgloss.Style
	warn  lipgloss.Style
	fail  lipgloss.Style
	muted lipgloss.Style
}

var _ ports.Reporter = (*Terminal)(nil)

// NewTerminal creates a reporter writing to out.
func NewTerminal(out io.Writer) *Terminal {
	r := lipgloss.NewRenderer(out)
	return &Terminal{
		out:   out,
		info:  r.NewStyle().Foreground(lipgloss.Color("12")),
		ok:    r.NewStyle().Foreground(lipgloss.Color("10")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("11")),
		fail:  r.NewStyle().Foreground(lipgloss.Color("9")),
		muted: r.NewStyle().Faint(true),
	}
}

// FormatCount formats n with thousands separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

func (t *Terminal) Found(files int) {
	t.line(t.info, "Found %s file(s).", FormatCount(files))
}

func (t *Terminal) ReadFailed(path string, err error) {
	t.line(t.fail, "Error reading %s: %v", path, err)
}

func (t *Terminal) SkippedOversized(path string, words, limit int) {
	t.line(t.warn, "Skipping %s (contains %s words, which exceeds the per-file limit of %s).",
		path, FormatCount(words), FormatCount(limit))
}

func (t *Terminal) Ready(units, skipped int) {
	t.line(t.info, "Total files to process: %s (skipped %s file(s) due to length).",
		FormatCount(units), FormatCount(skipped))
}

func (t *Terminal) OutputDirCreated(dir string) {
	t.line(t.muted, "Created output folder: %s", dir)
}

func (t *Terminal) BatchWritten(number int, path string, units, words int) {
	t.line(t.ok, "Batch %d written to %s", number, path)
	t.line(t.muted, "  %s file(s), %s words", FormatCount(units), FormatCount(words))
}

// Done prints the closing line of a run.
func (t *Terminal) Done(batches, words int) {
	t.line(t.ok, "Done: %s output file(s), %s words.", FormatCount(batches), FormatCount(words))
}

// Failed prints a fatal run error.
func (t *Terminal) Failed(err error) {
	t.line(t.fail, "%v", err)
}

func (t *Terminal) line(style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(t.out, style.Render(fmt.Sprintf(format, args...)))
}

// Discard implements ports.Reporter by dropping every notification.
type Discard struct{}

var _ ports.Reporter = Discard{}

func (Discard) Found(int)                          {}
func (Discard) ReadFailed(string, error)           {}
func (Discard) SkippedOversized(string, int, int)  {}
func (Discard) Ready(int, int)                     {}
func (Discard) OutputDirCreated(string)            {}
func (Discard) BatchWritten(int, string, int, int) {}
