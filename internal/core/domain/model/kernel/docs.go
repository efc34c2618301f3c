// Package kernel provides core domain primitives shared across the model.
//
// The package includes:
//   - UUID: a value object for entity identifiers with validation and comparison
//   - Money: a monetary amount with exactly two decimal digits of precision
//
// Both primitives are immutable; the zero value of each is invalid and must
// be produced through one of the constructor functions.
package kernel
