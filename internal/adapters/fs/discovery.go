package fs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bft-labs/srcpack/pkg/log"
)

// DefaultSuffixes are the file endings collected when none are configured.
var DefaultSuffixes = []string{"js", "html", "css"}

// Discoverer walks a directory tree and keeps files whose names end with one
// of the configured suffixes. Matching is a case-insensitive suffix test on the
// base name, so "js" matches both "app.js" and "worker.mjs".
type Discoverer struct {
	suffixes     []string
	outputDir    string
	skipPaths    map[string]struct{}
	excludeNames map[string]struct{}
	logger       log.Logger
}

// DiscovererOption configures a Discoverer.
type DiscovererOption func(*Discoverer)

// WithSkipPaths never descends into the given directories.
func WithSkipPaths(paths ...string) DiscovererOption {
	return func(d *Discoverer) {
		for _, p := range paths {
			if p == "" {
				continue
			}
			d.skipPaths[cleanAbs(p)] = struct{}{}
		}
	}
}

// WithOutputDir never descends into dir and ignores the output files written
// directly in it, including when dir is the walked root.
func WithOutputDir(dir string) DiscovererOption {
	return func(d *Discoverer) {
		if dir == "" {
			return
		}
		WithSkipPaths(dir)(d)
		d.outputDir = cleanAbs(dir)
	}
}

// WithExcludeNames skips every directory whose base name is listed.
func WithExcludeNames(names ...string) DiscovererOption {
	return func(d *Discoverer) {
		for _, n := range names {
			if n = strings.TrimSpace(n); n != "" {
				d.excludeNames[n] = struct{}{}
			}
		}
	}
}

// WithDiscoveryLogger sets the logger used for unreadable subdirectories.
func WithDiscoveryLogger(l log.Logger) DiscovererOption {
	return func(d *Discoverer) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDiscoverer creates a Discoverer for the given suffixes.
func NewDiscoverer(suffixes []string, opts ...DiscovererOption) *Discoverer {
	d := &Discoverer{
		skipPaths:    make(map[string]struct{}),
		excludeNames: make(map[string]struct{}),
		logger:       log.NewNoopLogger(),
	}
	for _, s := range suffixes {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			d.suffixes = append(d.suffixes, s)
		}
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Matches reports whether name ends with one of the suffixes.
func (d *Discoverer) Matches(name string) bool {
	lower := strings.ToLower(name)
	for _, s := range d.suffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}

// Skips reports whether the directory at path is excluded from the walk.
func (d *Discoverer) Skips(path string) bool {
	if _, ok := d.excludeNames[filepath.Base(path)]; ok {
		return true
	}
	_, ok := d.skipPaths[cleanAbs(path)]
	return ok
}

// IsOutput reports whether the file at path was written by the batch writer
// into the output folder.
func (d *Discoverer) IsOutput(path string) bool {
	if d.outputDir == "" || !IsOutputName(filepath.Base(path)) {
		return false
	}
	return cleanAbs(filepath.Dir(path)) == d.outputDir
}

// Discover returns matching regular files under root in lexical walk order.
func (d *Discoverer) Discover(ctx context.Context, root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return err
			}
			d.logger.Warn("skip unreadable path", log.String("path", path), log.Err(err))
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			if path != root && d.Skips(path) {
				d.logger.Debug("skip directory", log.String("path", path))
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Matches(entry.Name()) || !isRegular(path, entry) {
			return nil
		}
		if d.IsOutput(path) {
			d.logger.Debug("skip own output", log.String("path", path))
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func cleanAbs(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// isRegular accepts regular files and symlinks that resolve to one.
func isRegular(path string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
