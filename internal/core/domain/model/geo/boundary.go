package geo

import (
	"errors"
	"fmt"

	"tariff/internal/pkg/errs"
	"tariff/internal/pkg/guard"
)

// ErrBoundaryIsNotConstructed is returned when a Boundary was not created
// via a constructor.
var ErrBoundaryIsNotConstructed = errs.NewValueIsRequiredError(
	"boundary must be created via NewBoundary constructor")

// Boundary is a rectangular service area in decimal degrees. Departure and
// destination points of a shipment must lie inside it.
type Boundary struct { //nolint:recvcheck //using for validation
	minLatitude  float64
	maxLatitude  float64
	minLongitude float64
	maxLongitude float64
	guard        guard.ConstructorGuard
}

// NewBoundary creates a Boundary from four degree bounds. Each minimum must
// be strictly below its maximum and all bounds must be physically valid
// coordinates.
func NewBoundary(minLatitude, maxLatitude, minLongitude, maxLongitude float64) (Boundary, error) {
	boundary := Boundary{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		boundary.setLatitudeBounds(minLatitude, maxLatitude),
		boundary.setLongitudeBounds(minLongitude, maxLongitude),
	)
	if err != nil {
		return Boundary{}, err
	}

	return boundary, nil
}

// RussiaBoundary returns the default service area covering the European
// part of Russia.
func RussiaBoundary() (Boundary, error) {
	return NewBoundary(45, 65, 30, 96)
}

// Validate checks that the Boundary was created via a constructor.
func (b Boundary) Validate() error {
	return b.guard.Validate(ErrBoundaryIsNotConstructed)
}

// MinLatitude returns the southern bound in degrees.
func (b Boundary) MinLatitude() float64 {
	return b.minLatitude
}

// MaxLatitude returns the northern bound in degrees.
func (b Boundary) MaxLatitude() float64 {
	return b.maxLatitude
}

// MinLongitude returns the western bound in degrees.
func (b Boundary) MinLongitude() float64 {
	return b.minLongitude
}

// MaxLongitude returns the eastern bound in degrees.
func (b Boundary) MaxLongitude() float64 {
	return b.maxLongitude
}

// ValidateLatitude checks that a latitude value lies inside the boundary.
func (b Boundary) ValidateLatitude(value float64) error {
	if err := b.Validate(); err != nil {
		return err
	}

	if value < b.minLatitude || value > b.maxLatitude {
		return errs.NewValueIsOutOfRangeError(
			"latitude",
			fmt.Sprintf("%.4f", value),
			fmt.Sprintf("%.1f", b.minLatitude),
			fmt.Sprintf("%.1f", b.maxLatitude),
		)
	}

	return nil
}

// ValidateLongitude checks that a longitude value lies inside the boundary.
func (b Boundary) ValidateLongitude(value float64) error {
	if err := b.Validate(); err != nil {
		return err
	}

	if value < b.minLongitude || value > b.maxLongitude {
		return errs.NewValueIsOutOfRangeError(
			"longitude",
			fmt.Sprintf("%.4f", value),
			fmt.Sprintf("%.1f", b.minLongitude),
			fmt.Sprintf("%.1f", b.maxLongitude),
		)
	}

	return nil
}

// ValidateCoordinates checks that a latitude and longitude pair lies inside
// the boundary.
func (b Boundary) ValidateCoordinates(latitude, longitude float64) error {
	if err := b.ValidateLatitude(latitude); err != nil {
		return err
	}
	return b.ValidateLongitude(longitude)
}

// NewGeoPoint creates a GeoPoint after checking the coordinates lie inside
// the boundary.
func (b Boundary) NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if err := b.ValidateCoordinates(latitude, longitude); err != nil {
		return GeoPoint{}, err
	}

	lat, err := NewLatitude(latitude)
	if err != nil {
		return GeoPoint{}, err
	}
	lon, err := NewLongitude(longitude)
	if err != nil {
		return GeoPoint{}, err
	}

	return NewGeoPoint(lat, lon)
}

// String implements fmt.Stringer.
func (b Boundary) String() string {
	return fmt.Sprintf("[%.1f..%.1f, %.1f..%.1f]",
		b.minLatitude, b.maxLatitude, b.minLongitude, b.maxLongitude)
}

func (b *Boundary) setLatitudeBounds(minLatitude, maxLatitude float64) error {
	if minLatitude < LatitudeMinDegrees || maxLatitude > LatitudeMaxDegrees {
		return errs.NewConfigIsInvalidErrorWithCause(
			"latitude bounds",
			fmt.Errorf("[%.1f, %.1f] exceeds the physical range [%.1f, %.1f]",
				minLatitude, maxLatitude, LatitudeMinDegrees, LatitudeMaxDegrees),
		)
	}
	if minLatitude >= maxLatitude {
		return errs.NewConfigIsInvalidErrorWithCause(
			"latitude bounds",
			fmt.Errorf("min %.1f is not below max %.1f", minLatitude, maxLatitude),
		)
	}

	b.minLatitude = minLatitude
	b.maxLatitude = maxLatitude
	return nil
}

func (b *Boundary) setLongitudeBounds(minLongitude, maxLongitude float64) error {
	if minLongitude < LongitudeMinDegrees || maxLongitude > LongitudeMaxDegrees {
		return errs.NewConfigIsInvalidErrorWithCause(
			"longitude bounds",
			fmt.Errorf("[%.1f, %.1f] exceeds the physical range [%.1f, %.1f]",
				minLongitude, maxLongitude, LongitudeMinDegrees, LongitudeMaxDegrees),
		)
	}
	if minLongitude >= maxLongitude {
		return errs.NewConfigIsInvalidErrorWithCause(
			"longitude bounds",
			fmt.Errorf("min %.1f is not below max %.1f", minLongitude, maxLongitude),
		)
	}

	b.minLongitude = minLongitude
	b.maxLongitude = maxLongitude
	return nil
}
