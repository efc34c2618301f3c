// Package order provides the Order aggregate root and its lifecycle rules.
//
// The package includes:
//   - Order: the aggregate root owning line items, the authoritative total,
//     and the status lifecycle
//   - Item: an immutable line item snapshotting a product's name and price
//     at order time
//   - Status: a state machine enforcing valid lifecycle transitions
//
// Key business rules:
//   - An order's total always equals the sum of its item subtotals
//   - Items are created together with the order and never change afterwards
//   - Status moves only along the transition table: pending -> confirmed ->
//     processing -> shipped -> delivered, with cancellation possible from
//     pending, confirmed, and processing; delivered and cancelled are terminal
package order
