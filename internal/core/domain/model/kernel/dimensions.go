package kernel

import (
	"errors"

	"tariff/internal/pkg/errs"
	"tariff/internal/pkg/guard"
)

// ErrOuterDimensionsAreNotConstructed is returned when OuterDimensions were
// not created via a constructor.
var ErrOuterDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"outer dimensions must be created via NewOuterDimensions constructor")

// OuterDimensions are the three outer sides of a package. The sides are
// interchangeable for billing purposes; the length/width/height names only
// track the order in which the caller supplied them.
type OuterDimensions struct { //nolint:recvcheck //using for validation
	length Length
	width  Length
	height Length
	guard  guard.ConstructorGuard
}

// NewOuterDimensions creates OuterDimensions from three sides. Every side
// must be a properly constructed Length.
func NewOuterDimensions(length, width, height Length) (OuterDimensions, error) {
	dimensions := OuterDimensions{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		dimensions.setLength(length),
		dimensions.setWidth(width),
		dimensions.setHeight(height),
	)
	if err != nil {
		return OuterDimensions{}, err
	}

	return dimensions, nil
}

// NewOuterDimensionsWithSideLimit creates OuterDimensions enforcing an
// additional per-side cap on top of the type-level length range. Carriers
// with belt or cell constraints configure the cap; sides longer than
// maxSide are rejected with a ValueIsOutOfRangeError naming the offending
// side.
func NewOuterDimensionsWithSideLimit(length, width, height, maxSide Length) (OuterDimensions, error) {
	if err := maxSide.Validate(); err != nil {
		return OuterDimensions{}, err
	}

	dimensions, err := NewOuterDimensions(length, width, height)
	if err != nil {
		return OuterDimensions{}, err
	}

	err = errors.Join(
		checkSideLimit("length", length, maxSide),
		checkSideLimit("width", width, maxSide),
		checkSideLimit("height", height, maxSide),
	)
	if err != nil {
		return OuterDimensions{}, err
	}

	return dimensions, nil
}

// Validate checks that the OuterDimensions were created via a constructor.
func (d OuterDimensions) Validate() error {
	return d.guard.Validate(ErrOuterDimensionsAreNotConstructed)
}

// Length returns the first supplied side.
func (d OuterDimensions) Length() Length {
	return d.length
}

// Width returns the second supplied side.
func (d OuterDimensions) Width() Length {
	return d.width
}

// Height returns the third supplied side.
func (d OuterDimensions) Height() Length {
	return d.height
}

// CalculateVolume derives the billable volume: each side is rounded up to
// the next 50 mm, truncated to whole centimeters, and the three results are
// multiplied. The product is subject to the volume upper bound, so
// physically constructible dimensions can still fail here.
func (d OuterDimensions) CalculateVolume() (Volume, error) {
	if err := d.Validate(); err != nil {
		return Volume{}, err
	}

	lengthCm := NormalizeBy50(d.length.Millimeters()) / millimetersPerCentimeter
	widthCm := NormalizeBy50(d.width.Millimeters()) / millimetersPerCentimeter
	heightCm := NormalizeBy50(d.height.Millimeters()) / millimetersPerCentimeter

	return NewVolume(lengthCm * widthCm * heightCm)
}

func (d *OuterDimensions) setLength(length Length) error {
	if err := length.Validate(); err != nil {
		return err
	}
	d.length = length
	return nil
}

func (d *OuterDimensions) setWidth(width Length) error {
	if err := width.Validate(); err != nil {
		return err
	}
	d.width = width
	return nil
}

func (d *OuterDimensions) setHeight(height Length) error {
	if err := height.Validate(); err != nil {
		return err
	}
	d.height = height
	return nil
}

func checkSideLimit(sideName string, side, maxSide Length) error {
	over, err := side.IsLongerThan(maxSide)
	if err != nil {
		return err
	}
	if over {
		return errs.NewValueIsOutOfRangeError(
			sideName+" in millimeters", side.Millimeters(),
			LengthMinMillimeters, maxSide.Millimeters())
	}
	return nil
}
