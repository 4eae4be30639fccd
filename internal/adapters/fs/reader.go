package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/bft-labs/srcpack/internal/domain"
)

// NameStyle selects the label written in the output marker line.
type NameStyle string

const (
	// NameBase labels a unit with the file's base name.
	NameBase NameStyle = "base"

	// NameRelative labels a unit with its slash separated path relative to the input root.
	NameRelative NameStyle = "relative"
)

// Valid reports whether s is a known name style.
func (s NameStyle) Valid() bool {
	return s == NameBase || s == NameRelative
}

// Reader loads files as UTF-8 text units.
type Reader struct {
	root  string
	style NameStyle
}

// NewReader creates a Reader. root is only used by NameRelative.
func NewReader(root string, style NameStyle) *Reader {
	if !style.Valid() {
		style = NameBase
	}
	return &Reader{root: root, style: style}
}

// Read returns the unit for path with line endings normalised to LF. Content
// that is not valid UTF-8 is rejected with domain.ErrNotText.
func (r *Reader) Read(path string) (domain.FileUnit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.FileUnit{}, err
	}
	if !utf8.Valid(data) {
		return domain.FileUnit{}, fmt.Errorf("read %s: %w", path, domain.ErrNotText)
	}
	return domain.NewFileUnit(r.name(path), path, domain.NormalizeNewlines(string(data))), nil
}

func (r *Reader) name(path string) string {
	if r.style == NameRelative && r.root != "" {
		if rel, err := filepath.Rel(r.root, path); err == nil {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.Base(path)
}
