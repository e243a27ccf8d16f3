package kernel

import (
	"fmt"

	"tariff/internal/pkg/errs"
	"tariff/internal/pkg/guard"
)

const (
	// LengthMinMillimeters is the minimum valid package side length.
	LengthMinMillimeters int64 = 0
	// LengthMaxMillimeters is the maximum valid package side length.
	LengthMaxMillimeters int64 = 9999

	// NormalizationStepMillimeters is the carrier billing granularity:
	// package sides are rounded up to the next multiple of this step before
	// a volume is derived from them.
	NormalizationStepMillimeters int64 = 50

	millimetersPerCentimeter int64 = 10
)

// ErrLengthIsNotConstructed is returned when a Length was not created via
// the NewLength constructor.
var ErrLengthIsNotConstructed = errs.NewValueIsRequiredError(
	"length must be created via NewLength constructor")

// Length is a package side length in whole millimeters, valid in the range
// [LengthMinMillimeters, LengthMaxMillimeters]. It is an immutable value
// object; the zero value is invalid and fails Validate.
type Length struct { //nolint:recvcheck //using for validation
	millimeters int64
	guard       guard.ConstructorGuard
}

// NewLength creates a Length from whole millimeters. Returns a
// ValueIsOutOfRangeError when millimeters falls outside the valid range.
func NewLength(millimeters int64) (Length, error) {
	length := Length{
		guard: guard.NewConstructorGuard(),
	}

	if err := length.setMillimeters(millimeters); err != nil {
		return Length{}, err
	}

	return length, nil
}

// Validate checks that the Length was created via its constructor.
func (l Length) Validate() error {
	return l.guard.Validate(ErrLengthIsNotConstructed)
}

// Millimeters returns the length value in millimeters.
func (l Length) Millimeters() int64 {
	return l.millimeters
}

// NormalizedMillimeters returns the length rounded up to the next multiple
// of NormalizationStepMillimeters. A value already on the step is returned
// unchanged, so the operation is idempotent. The result may exceed
// LengthMaxMillimeters (9999 mm normalizes to 10000 mm), which is why it is
// reported as a raw millimeter count rather than a Length.
func (l Length) NormalizedMillimeters() int64 {
	return NormalizeBy50(l.millimeters)
}

// IsLongerThan reports whether this length is strictly longer than other.
// Both lengths must be properly constructed.
func (l Length) IsLongerThan(other Length) (bool, error) {
	if err := validatePair(l, other); err != nil {
		return false, err
	}
	return l.millimeters > other.millimeters, nil
}

// IsShorterThan reports whether this length is strictly shorter than other.
// Both lengths must be properly constructed.
func (l Length) IsShorterThan(other Length) (bool, error) {
	if err := validatePair(l, other); err != nil {
		return false, err
	}
	return l.millimeters < other.millimeters, nil
}

// IsEqualTo reports whether both lengths hold the same millimeter value.
// Both lengths must be properly constructed.
func (l Length) IsEqualTo(other Length) (bool, error) {
	if err := validatePair(l, other); err != nil {
		return false, err
	}
	return l.millimeters == other.millimeters, nil
}

// String implements fmt.Stringer.
func (l Length) String() string {
	return fmt.Sprintf("%d mm", l.millimeters)
}

func (l *Length) setMillimeters(millimeters int64) error {
	if millimeters < LengthMinMillimeters || millimeters > LengthMaxMillimeters {
		return errs.NewValueIsOutOfRangeError(
			"length in millimeters", millimeters, LengthMinMillimeters, LengthMaxMillimeters)
	}

	l.millimeters = millimeters
	return nil
}

// NormalizeBy50 rounds a millimeter count up to the next multiple of
// NormalizationStepMillimeters. Values already on the step are returned
// unchanged.
func NormalizeBy50(millimeters int64) int64 {
	remainder := millimeters % NormalizationStepMillimeters
	if remainder == 0 {
		return millimeters
	}
	return millimeters + NormalizationStepMillimeters - remainder
}

func validatePair(a, b Length) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return b.Validate()
}
