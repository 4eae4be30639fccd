package domain

import "errors"

// Domain errors represent error conditions in the srcpack domain.
// They are wrapped with context by the layers above and can be checked with errors.Is.
var (
	// ErrInvalidInput is returned when the input folder does not exist or is not a directory.
	ErrInvalidInput = errors.New("srcpack: invalid input folder")

	// ErrNoFiles is returned when discovery finds no file with a matching suffix.
	ErrNoFiles = errors.New("srcpack: no matching files found")

	// ErrOutputDir is returned when the output folder cannot be created.
	ErrOutputDir = errors.New("srcpack: cannot create output folder")

	// ErrNotText is returned by readers when a file is not valid UTF-8 text.
	ErrNotText = errors.New("srcpack: file is not valid utf-8 text")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("srcpack: invalid configuration")
)
