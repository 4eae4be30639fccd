package ports

import (
	"context"

	"github.com/bft-labs/srcpack/internal/domain"
)

// BatchWriter persists a packed batch.
type BatchWriter interface {
	// Write stores the batch and returns the location it was written to.
	Write(ctx context.Context, b domain.Batch) (string, error)

	// Prune deletes outputs numbered above keep and returns their locations.
	Prune(ctx context.Context, keep int) ([]string, error)
}
