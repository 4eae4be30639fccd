// Package srcpack concatenates the files of a directory tree into numbered,
// word-bounded text files.
//
// Example usage:
//
//	cfg := srcpack.DefaultConfig()
//	cfg.InputDir = "/path/to/site"
//	cfg.MaxWords = 4000
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	sum, err := srcpack.Run(context.Background(), cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sum.Outputs)
package srcpack

import (
	"context"

	"github.com/bft-labs/srcpack/internal/app"
	"github.com/bft-labs/srcpack/internal/batch"
	"github.com/bft-labs/srcpack/internal/cliconfig"
	"github.com/bft-labs/srcpack/internal/domain"
	"github.com/bft-labs/srcpack/pkg/log"
)

// Config holds the settings of a run.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = cliconfig.Config

// Summary describes what a run did.
type Summary = app.Summary

// FileUnit is one input file with its word count.
type FileUnit = domain.FileUnit

// Batch is a group of units destined for one output file.
type Batch = domain.Batch

// Unbounded disables the word limit.
const Unbounded = batch.Unbounded

// Policies for files larger than the word limit.
const (
	OversizedIsolate = domain.OversizedIsolate
	OversizedSkip    = domain.OversizedSkip
)

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return cliconfig.DefaultConfig()
}

// Run performs a single pass with cfg. cfg must have been validated.
// A nil logger discards log output.
func Run(ctx context.Context, cfg Config, logger log.Logger) (Summary, error) {
	r := app.New(app.Config{
		InputDir:    cfg.InputDir,
		OutputDir:   cfg.OutputDir,
		Extensions:  cfg.Extensions,
		ExcludeDirs: cfg.ExcludeDirs,
		Names:       cfg.Names,
		MaxWords:    cfg.MaxWords,
		OnePerFile:  cfg.OnePerFile,
		Oversized:   cfg.Oversized,
	}, app.WithLogger(logger))
	return r.Run(ctx)
}

// Pack groups units in order so that no multi-file batch exceeds maxWords.
// A negative maxWords, such as Unbounded, means unlimited; 0 is a real limit.
func Pack(units []FileUnit, maxWords int, onePerFile bool) []Batch {
	return batch.PackAll(units, batch.Config{MaxSize: maxWords, OneUnitPerBatch: onePerFile})
}
