package domain

// OversizedPolicy decides what happens to a file whose word count exceeds the
// per-batch limit.
type OversizedPolicy string

const (
	// OversizedIsolate writes the file into a batch of its own.
	OversizedIsolate OversizedPolicy = "isolate"

	// OversizedSkip drops the file before packing and counts it as skipped.
	OversizedSkip OversizedPolicy = "skip"
)

// Valid reports whether p is a known policy.
func (p OversizedPolicy) Valid() bool {
	return p == OversizedIsolate || p == OversizedSkip
}
