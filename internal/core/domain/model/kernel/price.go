package kernel

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"tariff/internal/pkg/errs"
	"tariff/internal/pkg/guard"
)

// ErrPriceIsNotConstructed is returned when a Price was not created via the
// NewPrice constructor.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPrice constructor")

// Price is a non-negative money amount in a specific currency. Amounts of
// different currencies never compare; mixing them is an error, not a
// conversion.
type Price struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency Currency
	guard    guard.ConstructorGuard
}

// NewPrice creates a Price from a decimal amount and currency. Negative
// amounts are rejected.
func NewPrice(amount decimal.Decimal, currency Currency) (Price, error) {
	price := Price{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		price.setAmount(amount),
		price.setCurrency(currency),
	)
	if err != nil {
		return Price{}, err
	}

	return price, nil
}

// Validate checks that the Price was created via its constructor.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Amount returns the money amount.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// Currency returns the price currency.
func (p Price) Currency() Currency {
	return p.currency
}

// IsGreaterThan reports whether this price is strictly greater than other.
// Both prices must be constructed and share a currency.
func (p Price) IsGreaterThan(other Price) (bool, error) {
	if err := p.validateComparable(other); err != nil {
		return false, err
	}
	return p.amount.GreaterThan(other.amount), nil
}

// IsLessThan reports whether this price is strictly less than other. Both
// prices must be constructed and share a currency.
func (p Price) IsLessThan(other Price) (bool, error) {
	if err := p.validateComparable(other); err != nil {
		return false, err
	}
	return p.amount.LessThan(other.amount), nil
}

// Max returns the greater of both prices. Both prices must be constructed
// and share a currency.
func (p Price) Max(other Price) (Price, error) {
	greater, err := p.IsGreaterThan(other)
	if err != nil {
		return Price{}, err
	}
	if greater {
		return p, nil
	}
	return other, nil
}

// String implements fmt.Stringer.
func (p Price) String() string {
	return fmt.Sprintf("%s %s", p.amount.StringFixed(2), p.currency.Code())
}

func (p *Price) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price amount",
			fmt.Errorf("%s is negative", amount),
		)
	}
	p.amount = amount
	return nil
}

func (p *Price) setCurrency(currency Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	p.currency = currency
	return nil
}

func (p Price) validateComparable(other Price) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := other.Validate(); err != nil {
		return err
	}
	if !p.currency.IsEqual(other.currency) {
		return errs.NewValueIsInvalidErrorWithCause(
			"price currency",
			fmt.Errorf("cannot compare %s against %s", p.currency.Code(), other.currency.Code()),
		)
	}
	return nil
}
