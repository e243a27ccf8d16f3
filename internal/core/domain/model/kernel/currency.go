package kernel

import (
	"fmt"

	"tariff/internal/pkg/errs"
	"tariff/internal/pkg/guard"
)

const currencyCodeLength = 3

// ErrCurrencyIsNotConstructed is returned when a Currency was not created
// via the NewCurrency constructor.
var ErrCurrencyIsNotConstructed = errs.NewValueIsRequiredError(
	"currency must be created via NewCurrency constructor")

// Currency is an ISO 4217 alphabetic currency code, e.g. RUB or USD.
type Currency struct { //nolint:recvcheck //using for validation
	code  string
	guard guard.ConstructorGuard
}

// NewCurrency creates a Currency from a three-letter uppercase code.
func NewCurrency(code string) (Currency, error) {
	currency := Currency{
		guard: guard.NewConstructorGuard(),
	}

	if err := currency.setCode(code); err != nil {
		return Currency{}, err
	}

	return currency, nil
}

// Validate checks that the Currency was created via its constructor.
func (c Currency) Validate() error {
	return c.guard.Validate(ErrCurrencyIsNotConstructed)
}

// Code returns the alphabetic currency code.
func (c Currency) Code() string {
	return c.code
}

// IsEqual reports whether both currencies carry the same code.
func (c Currency) IsEqual(other Currency) bool {
	return c.code == other.code
}

// String implements fmt.Stringer.
func (c Currency) String() string {
	return c.code
}

func (c *Currency) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("currency code")
	}

	if len(code) != currencyCodeLength || !isUpperAlpha(code) {
		return errs.NewValueIsInvalidErrorWithCause(
			"currency code",
			fmt.Errorf("%q is not a three-letter uppercase code", code),
		)
	}

	c.code = code
	return nil
}

func isUpperAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
