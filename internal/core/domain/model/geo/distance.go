package geo

import (
	"fmt"
	"math"

	"tariff/internal/pkg/errs"
	"tariff/internal/pkg/guard"
)

const (
	// EarthRadiusKilometers is the mean Earth radius of the spherical model
	// used by the haversine formula.
	EarthRadiusKilometers float64 = 6371.0

	// DistanceMaxKilometers caps any distance: half the Earth's
	// circumference, the longest possible great-circle separation.
	DistanceMaxKilometers float64 = 20000.0

	metersPerKilometer float64 = 1000
)

// ErrDistanceIsNotConstructed is returned when a Distance was not created
// via a constructor.
var ErrDistanceIsNotConstructed = errs.NewValueIsRequiredError(
	"distance must be created via NewDistance constructor")

// Distance is a non-negative great-circle distance in kilometers.
type Distance struct { //nolint:recvcheck //using for validation
	kilometers float64
	guard      guard.ConstructorGuard
}

// NewDistance creates a Distance from kilometers, valid in
// [0, DistanceMaxKilometers].
func NewDistance(kilometers float64) (Distance, error) {
	distance := Distance{
		guard: guard.NewConstructorGuard(),
	}

	if err := distance.setKilometers(kilometers); err != nil {
		return Distance{}, err
	}

	return distance, nil
}

// DistanceBetween computes the great-circle distance between two points
// with the haversine formula over a spherical Earth. Both points must be
// properly constructed.
func DistanceBetween(from, to GeoPoint) (Distance, error) {
	if err := from.Validate(); err != nil {
		return Distance{}, err
	}
	if err := to.Validate(); err != nil {
		return Distance{}, err
	}

	latFrom := from.Latitude().Radians()
	latTo := to.Latitude().Radians()
	deltaLat := latTo - latFrom
	deltaLon := to.Longitude().Radians() - from.Longitude().Radians()

	sinLat := math.Sin(deltaLat / 2)
	sinLon := math.Sin(deltaLon / 2)
	a := sinLat*sinLat + math.Cos(latFrom)*math.Cos(latTo)*sinLon*sinLon

	kilometers := 2 * EarthRadiusKilometers * math.Asin(math.Sqrt(a))

	// Floating-point noise between identical points can land a hair below
	// zero.
	if kilometers < 0 {
		kilometers = 0
	}

	return NewDistance(kilometers)
}

// Validate checks that the Distance was created via a constructor.
func (d Distance) Validate() error {
	return d.guard.Validate(ErrDistanceIsNotConstructed)
}

// Kilometers returns the distance in kilometers.
func (d Distance) Kilometers() float64 {
	return d.kilometers
}

// Meters returns the distance converted to meters.
func (d Distance) Meters() float64 {
	return d.kilometers * metersPerKilometer
}

// Add returns the sum of both distances, subject to the distance cap.
func (d Distance) Add(other Distance) (Distance, error) {
	if err := d.Validate(); err != nil {
		return Distance{}, err
	}
	if err := other.Validate(); err != nil {
		return Distance{}, err
	}

	return NewDistance(d.kilometers + other.kilometers)
}

// RatioTo returns this distance divided by other. Returns a
// DivideByZeroError when other is zero kilometers.
func (d Distance) RatioTo(other Distance) (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	if err := other.Validate(); err != nil {
		return 0, err
	}

	if other.kilometers == 0 {
		return 0, errs.NewDivideByZeroError("distance in kilometers")
	}

	return d.kilometers / other.kilometers, nil
}

// IsGreaterThan reports whether this distance is strictly longer than other.
// Both distances must be properly constructed.
func (d Distance) IsGreaterThan(other Distance) (bool, error) {
	if err := d.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return d.kilometers > other.kilometers, nil
}

// IsLessThan reports whether this distance is strictly shorter than other.
// Both distances must be properly constructed.
func (d Distance) IsLessThan(other Distance) (bool, error) {
	if err := d.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return d.kilometers < other.kilometers, nil
}

// String implements fmt.Stringer.
func (d Distance) String() string {
	return fmt.Sprintf("%.2f km", d.kilometers)
}

func (d *Distance) setKilometers(kilometers float64) error {
	if math.IsNaN(kilometers) || kilometers < 0 || kilometers > DistanceMaxKilometers {
		return errs.NewValueIsOutOfRangeError(
			"distance in kilometers",
			fmt.Sprintf("%.4f", kilometers),
			fmt.Sprintf("%.1f", 0.0),
			fmt.Sprintf("%.1f", DistanceMaxKilometers),
		)
	}

	d.kilometers = kilometers
	return nil
}
