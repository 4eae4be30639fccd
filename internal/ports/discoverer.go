package ports

import "context"

// Discoverer lists the files a run should consider.
type Discoverer interface {
	// Discover walks root and returns matching file paths in walk order.
	// An error is returned only when root itself cannot be walked.
	Discover(ctx context.Context, root string) ([]string, error)
}
