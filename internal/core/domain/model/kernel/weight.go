package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"tariff/internal/pkg/errs"
	"tariff/internal/pkg/guard"
)

// ErrWeightIsNotConstructed is returned when a Weight was not created via
// the NewWeight constructor.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"weight must be created via NewWeight constructor")

// Weight is a mass in whole grams, never negative. The type itself carries
// no upper bound: per-package caps are a packaging rule enforced by Pack,
// and shipment totals may legitimately exceed any single-package cap.
type Weight struct { //nolint:recvcheck //using for validation
	grams int64
	guard guard.ConstructorGuard
}

// NewWeight creates a Weight from whole grams. Negative values are rejected.
func NewWeight(grams int64) (Weight, error) {
	weight := Weight{
		guard: guard.NewConstructorGuard(),
	}

	if err := weight.setGrams(grams); err != nil {
		return Weight{}, err
	}

	return weight, nil
}

// Validate checks that the Weight was created via its constructor.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// Grams returns the weight value in grams.
func (w Weight) Grams() int64 {
	return w.grams
}

// Kilograms returns the weight as an exact decimal number of kilograms.
func (w Weight) Kilograms() decimal.Decimal {
	return decimal.New(w.grams, -3)
}

// Add returns the sum of both weights. Both weights must be properly
// constructed.
func (w Weight) Add(other Weight) (Weight, error) {
	if err := w.Validate(); err != nil {
		return Weight{}, err
	}
	if err := other.Validate(); err != nil {
		return Weight{}, err
	}

	return NewWeight(w.grams + other.grams)
}

// IsGreaterThan reports whether this weight is strictly heavier than other.
// Both weights must be properly constructed.
func (w Weight) IsGreaterThan(other Weight) (bool, error) {
	if err := w.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return w.grams > other.grams, nil
}

// String implements fmt.Stringer.
func (w Weight) String() string {
	return fmt.Sprintf("%d g", w.grams)
}

func (w *Weight) setGrams(grams int64) error {
	if grams < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight in grams",
			fmt.Errorf("%d g is below the minimum of 0 g", grams),
		)
	}

	w.grams = grams
	return nil
}
