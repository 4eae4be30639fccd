package batch

import (
	"iter"

	"github.com/bft-labs/srcpack/internal/domain"
)

// Packer groups units first-fit in input order.
// Units are never reordered; a unit larger than the limit gets a batch of its own.
type Packer struct {
	cfg     Config
	current domain.Batch
	next    int
}

var _ Batcher = (*Packer)(nil)

// NewPacker creates a packer with the given configuration.
func NewPacker(cfg Config) *Packer {
	return &Packer{cfg: cfg, next: 1}
}

// Add feeds one unit and returns the batches it completed.
func (p *Packer) Add(u domain.FileUnit) []domain.Batch {
	if p.cfg.OneUnitPerBatch {
		return []domain.Batch{p.single(u)}
	}

	if p.cfg.Oversized(u.Size) {
		var out []domain.Batch
		if b, ok := p.Flush(); ok {
			out = append(out, b)
		}
		return append(out, p.single(u))
	}

	var out []domain.Batch
	if p.cfg.Bounded() && !p.current.Empty() && p.current.Size+u.Size > p.cfg.MaxSize {
		b, _ := p.Flush()
		out = append(out, b)
	}
	p.current.Add(u)
	return out
}

// Flush emits the pending batch, if any.
func (p *Packer) Flush() (domain.Batch, bool) {
	if p.current.Empty() {
		return domain.Batch{}, false
	}
	b := p.current
	b.Number = p.take()
	p.current.Reset()
	return b, true
}

// HasPending returns true if units are waiting in the accumulator.
func (p *Packer) HasPending() bool {
	return !p.current.Empty()
}

func (p *Packer) single(u domain.FileUnit) domain.Batch {
	b := domain.Batch{Number: p.take()}
	b.Add(u)
	return b
}

func (p *Packer) take() int {
	n := p.next
	p.next++
	return n
}

// Pack returns the batches for units as a lazy sequence.
// Batches are computed as the caller ranges over the sequence; stopping early
// leaves the remaining units unpacked.
func Pack(units []domain.FileUnit, cfg Config) iter.Seq[domain.Batch] {
	return func(yield func(domain.Batch) bool) {
		p := NewPacker(cfg)
		for _, u := range units {
			for _, b := range p.Add(u) {
				if !yield(b) {
					return
				}
			}
		}
		if b, ok := p.Flush(); ok {
			yield(b)
		}
	}
}

// PackAll collects every batch of Pack into a slice.
func PackAll(units []domain.FileUnit, cfg Config) []domain.Batch {
	var out []domain.Batch
	for b := range Pack(units, cfg) {
		out = append(out, b)
	}
	return out
}
