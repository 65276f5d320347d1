// Package kernel provides the shared value objects of the storefront domain:
// UUID identifiers, decimal Price amounts and Phone numbers.
//
// All kernel types are immutable value objects. They validate on
// construction and are safe to copy and to share between goroutines.
package kernel
