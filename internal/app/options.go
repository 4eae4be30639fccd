package app

import (
	"github.com/bft-labs/srcpack/internal/ports"
	"github.com/bft-labs/srcpack/pkg/log"
)

// Option configures optional behavior of a Runner.
type Option func(*options)

// options holds the collaborators of a Runner.
// Nil entries are filled with file system adapters built from Config.
type options struct {
	logger     log.Logger
	reporter   ports.Reporter
	discoverer ports.Discoverer
	reader     ports.Reader
	writer     ports.BatchWriter
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithReporter sets where user facing progress goes.
// If not provided, progress is discarded.
func WithReporter(r ports.Reporter) Option {
	return func(o *options) {
		o.reporter = r
	}
}

// WithDiscoverer replaces the file system walker.
func WithDiscoverer(d ports.Discoverer) Option {
	return func(o *options) {
		o.discoverer = d
	}
}

// WithReader replaces the file reader.
func WithReader(r ports.Reader) Option {
	return func(o *options) {
		o.reader = r
	}
}

// WithWriter replaces the batch writer.
func WithWriter(w ports.BatchWriter) Option {
	return func(o *options) {
		o.writer = w
	}
}
