// Package kernel provides core domain primitives shared by every aggregate of
// the food-ordering backend.
//
// The package currently contains a single building block:
//   - UUID: a value object for unique identifiers with validation and
//     comparison capabilities
//
// Kernel primitives are immutable and thread-safe, and enforce their own
// invariants so aggregates built on top of them are always in a valid state.
package kernel
