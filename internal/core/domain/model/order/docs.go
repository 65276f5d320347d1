// Package order provides the Order aggregate root of the storefront: line
// items with snapshotted unit prices, an incrementally maintained total, and
// the lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root owning line items, total and status
//   - Line: a (product, quantity, snapshot price) pairing within an order
//   - Status: the state machine enforcing valid lifecycle transitions
//
// Key business rules:
//   - The total always equals the sum of quantity × add-time unit price over
//     surviving lines and never goes negative
//   - Lines are mutable only while the order is in Created status
//   - The lifecycle is Created -> Paid -> Shipped -> Finished, with
//     cancellation possible from every non-terminal status
//   - An empty order (zero total) can never be paid
//
// The package follows Domain-Driven Design principles: all mutation goes
// through validated aggregate methods that reject invariant violations
// rather than relying on callers to check first.
package order
