package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Price is a non-negative decimal amount of money in the store's single
// currency. It is a value object: arithmetic returns new values, and the
// representation is exact decimal, never binary floating point.
//
// ZeroPrice() is a valid Price; the struct zero value is also the zero
// amount, so Price needs no constructor guard.
type Price struct {
	amount decimal.Decimal
}

// ZeroPrice returns the zero amount.
func ZeroPrice() Price {
	return Price{amount: decimal.Zero}
}

// NewPriceFromString parses a decimal string like "19.90" into a Price.
// Negative amounts are rejected.
func NewPriceFromString(s string) (Price, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", amount))
	}
	return Price{amount: amount}, nil
}

// RestorePrice wraps a decimal coming from persistence. Negative amounts are
// rejected, matching the invariant enforced on construction.
func RestorePrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", amount))
	}
	return Price{amount: amount}, nil
}

// MulQuantity returns the price multiplied by a line quantity.
func (p Price) MulQuantity(quantity int) Price {
	return Price{amount: p.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Add returns the sum of two prices.
func (p Price) Add(other Price) Price {
	return Price{amount: p.amount.Add(other.amount)}
}

// SubFloorZero subtracts other from p, flooring the result at zero. An order
// total must never go negative even if more value is removed than was added.
func (p Price) SubFloorZero(other Price) Price {
	result := p.amount.Sub(other.amount)
	if result.IsNegative() {
		return ZeroPrice()
	}
	return Price{amount: result}
}

// IsZero reports whether the amount is exactly zero.
func (p Price) IsZero() bool {
	return p.amount.IsZero()
}

// IsEqual reports whether two prices represent the same amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal amount for persistence mapping.
func (p Price) Decimal() decimal.Decimal {
	return p.amount
}

// String renders the amount with the scale it was created with.
func (p Price) String() string {
	return p.amount.String()
}
