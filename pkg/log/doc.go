// Package log provides the logging abstraction used across srcpack.
//
// Components depend on the [Logger] interface only. The CLI wires a zerolog
// adapter writing human readable lines to stderr; tests use the no-op logger.
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	logger.Warn("skip file", log.String("path", p), log.Err(err))
package log
