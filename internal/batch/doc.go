// Package batch groups file units into size-bounded output batches.
//
// Packing is a single left-to-right pass. Units keep their input order and
// are added to the current batch until the next one would push it over the
// word limit, at which point the batch is emitted and a new one begins. A unit
// that alone exceeds the limit is emitted on its own.
//
// # Usage
//
// Range over a lazy sequence:
//
//	for b := range batch.Pack(units, batch.Config{MaxSize: 4000}) {
//	    // write b...
//	}
//
// Or feed units one at a time:
//
//	p := batch.NewPacker(cfg)
//	for _, u := range units {
//	    for _, b := range p.Add(u) {
//	        // write b...
//	    }
//	}
//	if b, ok := p.Flush(); ok {
//	    // write b...
//	}
//
// # Configuration
//
// - MaxSize: word limit per batch, Unbounded (-1) for no limit
// - OneUnitPerBatch: emit every unit separately
package batch
