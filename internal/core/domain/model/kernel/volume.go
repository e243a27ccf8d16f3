package kernel

import (
	"fmt"

	"tariff/internal/pkg/errs"
	"tariff/internal/pkg/guard"
)

const (
	// VolumeMinCubicCentimeters is the minimum valid volume.
	VolumeMinCubicCentimeters int64 = 0
	// VolumeMaxCubicCentimeters is the maximum valid volume, one cubic meter.
	VolumeMaxCubicCentimeters int64 = 1_000_000

	cubicCentimetersPerCubicMeter float64 = 1_000_000
)

// ErrVolumeIsNotConstructed is returned when a Volume was not created via
// the NewVolume constructor.
var ErrVolumeIsNotConstructed = errs.NewValueIsRequiredError(
	"volume must be created via NewVolume constructor")

// Volume is a package volume in whole cubic centimeters, valid in the range
// [VolumeMinCubicCentimeters, VolumeMaxCubicCentimeters].
type Volume struct { //nolint:recvcheck //using for validation
	cubicCentimeters int64
	guard            guard.ConstructorGuard
}

// NewVolume creates a Volume from whole cubic centimeters. Returns a
// ValueIsOutOfRangeError when the value falls outside the valid range.
func NewVolume(cubicCentimeters int64) (Volume, error) {
	volume := Volume{
		guard: guard.NewConstructorGuard(),
	}

	if err := volume.setCubicCentimeters(cubicCentimeters); err != nil {
		return Volume{}, err
	}

	return volume, nil
}

// Validate checks that the Volume was created via its constructor.
func (v Volume) Validate() error {
	return v.guard.Validate(ErrVolumeIsNotConstructed)
}

// CubicCentimeters returns the volume value in cubic centimeters.
func (v Volume) CubicCentimeters() int64 {
	return v.cubicCentimeters
}

// CubicMeters returns the volume converted to cubic meters.
func (v Volume) CubicMeters() float64 {
	return float64(v.cubicCentimeters) / cubicCentimetersPerCubicMeter
}

// Add returns the sum of both volumes. The sum is subject to the same upper
// bound as any other volume, so adding can fail with a
// ValueIsOutOfRangeError.
func (v Volume) Add(other Volume) (Volume, error) {
	if err := v.Validate(); err != nil {
		return Volume{}, err
	}
	if err := other.Validate(); err != nil {
		return Volume{}, err
	}

	return NewVolume(v.cubicCentimeters + other.cubicCentimeters)
}

// IsGreaterThan reports whether this volume is strictly larger than other.
// Both volumes must be properly constructed.
func (v Volume) IsGreaterThan(other Volume) (bool, error) {
	if err := v.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return v.cubicCentimeters > other.cubicCentimeters, nil
}

// IsLessThan reports whether this volume is strictly smaller than other.
// Both volumes must be properly constructed.
func (v Volume) IsLessThan(other Volume) (bool, error) {
	if err := v.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return v.cubicCentimeters < other.cubicCentimeters, nil
}

// String implements fmt.Stringer.
func (v Volume) String() string {
	return fmt.Sprintf("%d cm3", v.cubicCentimeters)
}

func (v *Volume) setCubicCentimeters(cubicCentimeters int64) error {
	if cubicCentimeters < VolumeMinCubicCentimeters || cubicCentimeters > VolumeMaxCubicCentimeters {
		return errs.NewValueIsOutOfRangeError(
			"volume in cubic centimeters", cubicCentimeters,
			VolumeMinCubicCentimeters, VolumeMaxCubicCentimeters)
	}

	v.cubicCentimeters = cubicCentimeters
	return nil
}
