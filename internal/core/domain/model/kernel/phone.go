package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// ErrPhoneIsNotConstructed indicates that a Phone was not created through
// NewPhone. It is returned when validating a zero-value Phone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("Phone must be created via NewPhone")

// Phone is a value object holding a phone number in international format:
// a leading "+" followed by digits only. Notification recipients are always
// addressed by Phone, never by a raw string.
type Phone struct {
	number string
}

// NewPhone validates and wraps a phone number string.
func NewPhone(number string) (Phone, error) {
	if number == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone number")
	}
	if !isInternationalFormat(number) {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone number",
			fmt.Errorf("%q is not in +<digits> format", number))
	}
	return Phone{number: number}, nil
}

func isInternationalFormat(number string) bool {
	if len(number) < 2 || number[0] != '+' {
		return false
	}
	for _, r := range number[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// String returns the number as it was provided, e.g. "+1234567890".
func (p Phone) String() string {
	return p.number
}

// IsEqual reports whether two phones hold the same number.
func (p Phone) IsEqual(other Phone) bool {
	return p.number == other.number
}

// Validate returns ErrPhoneIsNotConstructed for the zero value.
func (p Phone) Validate() error {
	if p.number == "" {
		return ErrPhoneIsNotConstructed
	}
	return nil
}
