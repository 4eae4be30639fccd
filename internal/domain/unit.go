package domain

import (
	"strings"
	"unicode"
)

// FileUnit is a single input file ready for packing.
// A unit is the atomic item placed into output batches.
type FileUnit struct {
	// Name is the label written in the output marker line (e.g., "app.js")
	Name string

	// Path is the source path the content was read from
	Path string

	// Content is the full text of the file
	Content string

	// Size is the number of whitespace-delimited words in Content
	Size int
}

// NewFileUnit builds a unit and computes its word count.
func NewFileUnit(name, path, content string) FileUnit {
	return FileUnit{
		Name:    name,
		Path:    path,
		Content: content,
		Size:    CountWords(content),
	}
}

// CountWords returns the number of runs of non-whitespace characters in s.
// The information separators U+001C to U+001F count as whitespace too.
func CountWords(s string) int {
	return len(strings.FieldsFunc(s, isSpace))
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}

// NormalizeNewlines turns CRLF and lone CR line endings into LF.
func NormalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
