package order

import "fmt"

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders always follow the correct
// business workflow.
//
// State transitions:
//
//	Created ──> Paid ──> Shipped ──> Finished
//	   │          │         │
//	   └──────────┴─────────┴──────> Cancelled
//
// Finished and Cancelled are terminal: no transition leaves them. Status is
// a value object that validates transitions and provides string
// representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status of a new, still-editable order.
	// Line items may only be mutated in this status.
	Created

	// Paid indicates the customer has released payment for the order.
	Paid

	// Shipped indicates the order has been handed over for delivery.
	Shipped

	// Finished indicates the order was delivered and closed. Terminal.
	Finished

	// Cancelled indicates the order was abandoned before finishing. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Paid:      "Paid",
		Shipped:   "Shipped",
		Finished:  "Finished",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Paid:      "Paid",
		Shipped:   "Shipped",
		Finished:  "Finished",
		Cancelled: "Cancelled",
	}
}

// Validate checks that the Status value is one of the defined lifecycle
// states. Unknown (0) and out-of-range values are invalid. Used when
// reconstructing orders from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrWrongSequence, s)
	}
	return nil
}

// String returns the human-readable name of the status. Implements
// fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Finished || s == Cancelled
}

// AllowsLineMutation reports whether line items may still be changed.
// Only Created orders are editable.
func (s Status) AllowsLineMutation() bool {
	return s == Created
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - Created -> Paid
//
// Returns (0, error wrapping ErrWrongSequence) from any other status.
// The empty-order guard is enforced by the aggregate, not here: whether the
// total allows payment is a property of the order, not of the status value.
func (s Status) Pay() (Status, error) {
	if s != Created {
		return 0, fmt.Errorf("%w: cannot pay order in %s status", ErrWrongSequence, s)
	}
	return Paid, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Paid -> Shipped
//
// Returns (0, error wrapping ErrWrongSequence) from any other status.
func (s Status) Ship() (Status, error) {
	if s != Paid {
		return 0, fmt.Errorf("%w: cannot ship order in %s status", ErrWrongSequence, s)
	}
	return Shipped, nil
}

// Finish transitions the status to Finished.
//
// Valid transitions:
//   - Shipped -> Finished
//
// Returns (0, error wrapping ErrWrongSequence) from any other status.
func (s Status) Finish() (Status, error) {
	if s != Shipped {
		return 0, fmt.Errorf("%w: cannot finish order in %s status", ErrWrongSequence, s)
	}
	return Finished, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Created -> Cancelled
//   - Paid -> Cancelled
//   - Shipped -> Cancelled
//
// A terminal order cannot be cancelled: Finished orders are already closed
// and Cancelled orders stay cancelled exactly once.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Created, Paid, Shipped:
		return Cancelled, nil
	default:
		return 0, fmt.Errorf("%w: cannot cancel order in %s status", ErrWrongSequence, s)
	}
}
