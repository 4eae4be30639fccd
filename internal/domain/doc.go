// Package domain contains the core entities and errors for srcpack.
//
// This package is the innermost layer. It has no dependencies on the file
// system, logging or the terminal and holds only the data that flows between
// discovery, packing and writing.
//
// # Entities
//
//   - [FileUnit]: one input file with its content and word count
//   - [Batch]: an ordered group of units destined for one output file
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (units) or owned by a single producer (batches)
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
