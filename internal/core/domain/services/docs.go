// Package services provides domain services that orchestrate business
// operations across multiple aggregates. It implements workflows that do
// not naturally belong to a single aggregate root.
//
// The package includes:
//   - Checkout: builds an order's line items from the catalog, reserving
//     stock and snapshotting prices in a single pass
package services
