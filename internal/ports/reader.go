package ports

import "github.com/bft-labs/srcpack/internal/domain"

// Reader loads a single file as a unit.
type Reader interface {
	// Read returns the unit for path. Errors are per file; the caller skips
	// the file and continues.
	Read(path string) (domain.FileUnit, error)
}
