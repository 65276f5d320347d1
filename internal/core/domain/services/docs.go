// Package services provides domain services of the storefront order system.
//
// The package includes:
//   - SMSComposer: builds the customer-facing message for each committed
//     order lifecycle transition
//
// Domain services hold business logic that does not naturally belong to a
// single aggregate root, following Domain-Driven Design principles.
package services
