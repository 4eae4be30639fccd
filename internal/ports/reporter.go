package ports

// Reporter receives progress notifications meant for the person running the tool.
// Calls happen synchronously on the run goroutine.
type Reporter interface {
	// Found is called once discovery has finished.
	Found(files int)

	// ReadFailed is called for each file that could not be read.
	ReadFailed(path string, err error)

	// SkippedOversized is called for each file dropped by the skip policy.
	SkippedOversized(path string, words, limit int)

	// Ready is called before packing with the number of units to pack.
	Ready(units, skipped int)

	// OutputDirCreated is called when the output folder had to be created.
	OutputDirCreated(dir string)

	// BatchWritten is called after each batch file is written.
	BatchWritten(number int, path string, units, words int)
}
