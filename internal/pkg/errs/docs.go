// Package errs provides standardized error types shared across the
// application. Each error type follows the same pattern: a sentinel error
// for classification with errors.Is, a struct carrying the offending
// identifiers, constructors with and without a cause, and Error/Unwrap
// methods.
//
// Domain-specific failures that carry richer payloads (invalid status
// transitions, insufficient stock, cancellation refusals) are defined next
// to their aggregates; this package covers the generic taxonomy: not found,
// already exists, invalid, out of range, required.
package errs
