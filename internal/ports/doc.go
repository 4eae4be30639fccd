// Package ports defines the interfaces that connect the application layer to
// infrastructure adapters.
//
// # Port Interfaces
//
//   - [Discoverer]: finds candidate files under the input folder
//   - [Reader]: turns a path into a file unit
//   - [BatchWriter]: persists a packed batch
//   - [Reporter]: tells the user what happened
//
// The application layer (internal/app) depends only on these interfaces.
// Adapters in internal/adapters and internal/report implement them.
package ports
