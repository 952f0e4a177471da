// Package kernel provides the shared primitives of the fulfillment domain model.
//
// The package includes:
//   - UUID: an immutable identifier value object backed by github.com/google/uuid
//   - Clock: the time source injected into aggregates that record history
//
// Everything here is immutable and safe for concurrent use.
package kernel
