package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bft-labs/srcpack/internal/domain"
)

const (
	outputPrefix = "output"
	outputExt    = ".txt"
	tmpExt       = ".tmp"
)

// FileName returns the output file name for batch n: "output.txt" for the
// first batch and "output_NN.txt" (at least two digits) after that.
func FileName(n int) string {
	if n <= 1 {
		return outputPrefix + outputExt
	}
	return fmt.Sprintf("%s_%02d%s", outputPrefix, n, outputExt)
}

// BatchNumber returns the batch number of an output file name produced by
// FileName, or false for any other name.
func BatchNumber(name string) (int, bool) {
	if name == FileName(1) {
		return 1, true
	}
	digits, ok := strings.CutPrefix(name, outputPrefix+"_")
	if !ok {
		return 0, false
	}
	digits, ok = strings.CutSuffix(digits, outputExt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 2 || FileName(n) != name {
		return 0, false
	}
	return n, true
}

// IsOutputName reports whether name is an output file, or the temporary file
// one is written through.
func IsOutputName(name string) bool {
	_, ok := BatchNumber(strings.TrimSuffix(name, tmpExt))
	return ok
}

// Render serialises a batch in the output text format.
func Render(b domain.Batch) string {
	var sb strings.Builder
	for _, u := range b.Units {
		sb.WriteString("=== ")
		sb.WriteString(u.Name)
		sb.WriteString(" ===\n")
		sb.WriteString(u.Content)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// BatchWriter implements ports.BatchWriter with one text file per batch.
type BatchWriter struct {
	dir string
}

// NewBatchWriter creates a writer targeting dir. The directory must exist.
func NewBatchWriter(dir string) *BatchWriter {
	return &BatchWriter{dir: dir}
}

// Write stores the batch atomically, replacing any existing file.
func (w *BatchWriter) Write(ctx context.Context, b domain.Batch) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := w.Path(b.Number)
	tmp := path + tmpExt

	if err := os.WriteFile(tmp, []byte(Render(b)), 0o644); err != nil {
		return "", fmt.Errorf("write batch %d: %w", b.Number, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("write batch %d: %w", b.Number, err)
	}
	return path, nil
}

// Prune removes the output files numbered above keep, left behind by an
// earlier pass that produced more batches. It returns the removed paths.
func (w *BatchWriter) Prune(ctx context.Context, keep int) ([]string, error) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return nil, fmt.Errorf("prune outputs: %w", err)
	}

	var removed []string
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if !e.Type().IsRegular() {
			continue
		}
		n, ok := BatchNumber(e.Name())
		if !ok || n <= keep {
			continue
		}
		path := filepath.Join(w.dir, e.Name())
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("prune outputs: %w", err)
		}
		removed = append(removed, path)
	}
	return removed, nil
}

// Path returns the full path of the file for batch n.
func (w *BatchWriter) Path(n int) string {
	return filepath.Join(w.dir, FileName(n))
}
