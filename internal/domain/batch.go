package domain

// Batch is an ordered group of units written to one output file.
// Size always equals the sum of the unit sizes.
type Batch struct {
	// Number is the 1-based position of the batch in emission order
	Number int

	// Units holds the files of the batch in input order
	Units []FileUnit

	// Size is the sum of all unit sizes
	Size int
}

// Add appends a unit to the batch.
func (b *Batch) Add(u FileUnit) {
	b.Units = append(b.Units, u)
	b.Size += u.Size
}

// Len returns the number of units in the batch.
func (b *Batch) Len() int {
	return len(b.Units)
}

// Empty returns true if the batch has no units.
func (b *Batch) Empty() bool {
	return len(b.Units) == 0
}

// Reset clears the batch for reuse.
// The backing array is dropped because emitted batches keep referencing it.
func (b *Batch) Reset() {
	b.Units = nil
	b.Size = 0
}
