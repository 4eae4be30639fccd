package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bft-labs/srcpack/internal/adapters/fs"
	"github.com/bft-labs/srcpack/internal/batch"
	"github.com/bft-labs/srcpack/internal/domain"
	"github.com/bft-labs/srcpack/internal/ports"
	"github.com/bft-labs/srcpack/internal/report"
	"github.com/bft-labs/srcpack/pkg/log"
)

// Config contains everything a single pass needs.
type Config struct {
	InputDir    string
	OutputDir   string
	Extensions  []string
	ExcludeDirs []string
	Names       fs.NameStyle

	// MaxWords is the word limit per output file; batch.Unbounded means unlimited.
	MaxWords   int
	OnePerFile bool
	Oversized  domain.OversizedPolicy

	// PruneStale removes output files numbered above the last batch of a pass.
	PruneStale bool
}

// Packing returns the packer configuration for this run.
func (c Config) Packing() batch.Config {
	return batch.Config{MaxSize: c.MaxWords, OneUnitPerBatch: c.OnePerFile}
}

// Summary describes the outcome of one pass.
type Summary struct {
	Found      int
	Read       int
	ReadErrors int
	Skipped    int
	Batches    int
	Words      int
	Outputs    []string
	Removed    []string
}

// Runner performs discover, read, pack and write for one input folder.
type Runner struct {
	cfg Config

	logger     log.Logger
	reporter   ports.Reporter
	discoverer ports.Discoverer
	reader     ports.Reader
	writer     ports.BatchWriter
}

// New creates a Runner. Collaborators not supplied through options default to
// the file system adapters configured from cfg.
func New(cfg Config, opts ...Option) *Runner {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.NewNoopLogger()
	}
	if o.reporter == nil {
		o.reporter = report.Discard{}
	}
	if o.discoverer == nil {
		o.discoverer = fs.NewDiscoverer(cfg.Extensions,
			fs.WithOutputDir(cfg.OutputDir),
			fs.WithExcludeNames(cfg.ExcludeDirs...),
			fs.WithDiscoveryLogger(o.logger),
		)
	}
	if o.reader == nil {
		o.reader = fs.NewReader(cfg.InputDir, cfg.Names)
	}
	if o.writer == nil {
		o.writer = fs.NewBatchWriter(cfg.OutputDir)
	}

	return &Runner{
		cfg:        cfg,
		logger:     o.logger,
		reporter:   o.reporter,
		discoverer: o.discoverer,
		reader:     o.reader,
		writer:     o.writer,
	}
}

// Run executes one full pass. Per file read errors are reported and skipped;
// everything else aborts the pass.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	paths, err := r.discoverer.Discover(ctx, r.cfg.InputDir)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return sum, err
		}
		return sum, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	sum.Found = len(paths)
	if len(paths) == 0 {
		return sum, fmt.Errorf("%w in %s", domain.ErrNoFiles, r.cfg.InputDir)
	}
	r.reporter.Found(len(paths))
	r.logger.Debug("discovery finished",
		log.Int("files", len(paths)),
		log.String("root", r.cfg.InputDir),
		log.Strings("extensions", r.cfg.Extensions),
	)

	units := r.load(paths, &sum)
	r.reporter.Ready(len(units), sum.Skipped)

	if err := r.ensureOutputDir(); err != nil {
		return sum, err
	}

	r.logger.Debug("packing",
		log.Int("max_words", r.cfg.MaxWords),
		log.Bool("one_per_file", r.cfg.OnePerFile),
		log.String("oversized", string(r.cfg.Oversized)),
	)
	for b := range batch.Pack(units, r.cfg.Packing()) {
		path, err := r.writer.Write(ctx, b)
		if err != nil {
			return sum, err
		}
		sum.Batches++
		sum.Words += b.Size
		sum.Outputs = append(sum.Outputs, path)
		r.reporter.BatchWritten(b.Number, path, b.Len(), b.Size)
		r.logger.Debug("batch written",
			log.Int("batch", b.Number),
			log.Int("files", b.Len()),
			log.Int("words", b.Size),
			log.String("path", path),
		)
	}

	if r.cfg.PruneStale {
		removed, err := r.writer.Prune(ctx, sum.Batches)
		sum.Removed = removed
		if err != nil {
			return sum, err
		}
		for _, p := range removed {
			r.logger.Info("removed stale output", log.String("path", p))
		}
	}

	r.logger.Info("pass complete",
		log.Int("found", sum.Found),
		log.Int("read_errors", sum.ReadErrors),
		log.Int("skipped", sum.Skipped),
		log.Int("batches", sum.Batches),
		log.Int("words", sum.Words),
	)
	return sum, nil
}

// load reads every path and applies the oversized policy.
func (r *Runner) load(paths []string, sum *Summary) []domain.FileUnit {
	packing := r.cfg.Packing()
	units := make([]domain.FileUnit, 0, len(paths))
	for _, p := range paths {
		u, err := r.reader.Read(p)
		if err != nil {
			sum.ReadErrors++
			r.logger.Warn("skip unreadable file", log.String("path", p), log.Err(err))
			r.reporter.ReadFailed(p, err)
			continue
		}
		sum.Read++

		if r.cfg.Oversized == domain.OversizedSkip && packing.Oversized(u.Size) {
			sum.Skipped++
			r.logger.Debug("skip oversized file", log.String("path", p), log.Int("words", u.Size))
			r.reporter.SkippedOversized(p, u.Size, r.cfg.MaxWords)
			continue
		}
		units = append(units, u)
	}
	return units
}

func (r *Runner) ensureOutputDir() error {
	info, err := os.Stat(r.cfg.OutputDir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%w: %s is not a directory", domain.ErrOutputDir, r.cfg.OutputDir)
		}
		return nil
	}
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrOutputDir, err)
	}
	r.reporter.OutputDirCreated(r.cfg.OutputDir)
	return nil
}
