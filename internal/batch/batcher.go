package batch

import "github.com/bft-labs/srcpack/internal/domain"

// Batcher accumulates units until a batch is ready to be written.
// It tracks the size limit and decides when to flush.
type Batcher interface {
	// Add feeds the next unit and returns the batches completed by it, in order.
	Add(unit domain.FileUnit) []domain.Batch

	// Flush returns the pending batch, if any, and resets the batcher.
	Flush() (domain.Batch, bool)

	// HasPending returns true if there are units waiting to be emitted.
	HasPending() bool
}

// Unbounded is the MaxSize that disables the word limit.
const Unbounded = -1

// Config controls how units are grouped.
type Config struct {
	// MaxSize is the word limit per batch. Zero is a real limit that only
	// lets empty units share a batch; any negative value means Unbounded.
	MaxSize int

	// OneUnitPerBatch emits every unit as its own batch.
	OneUnitPerBatch bool
}

// Bounded reports whether a size limit applies.
func (c Config) Bounded() bool {
	return c.MaxSize >= 0
}

// Oversized reports whether a unit of the given size can never share a batch.
func (c Config) Oversized(size int) bool {
	return c.Bounded() && size > c.MaxSize
}
