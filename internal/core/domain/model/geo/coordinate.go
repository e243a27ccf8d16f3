package geo

import (
	"fmt"
	"math"

	"tariff/internal/pkg/errs"
	"tariff/internal/pkg/guard"
)

const (
	// LatitudeMinDegrees and LatitudeMaxDegrees bound any physically valid
	// latitude.
	LatitudeMinDegrees float64 = -90
	LatitudeMaxDegrees float64 = 90

	// LongitudeMinDegrees and LongitudeMaxDegrees bound any physically valid
	// longitude.
	LongitudeMinDegrees float64 = -180
	LongitudeMaxDegrees float64 = 180
)

// ErrCoordinateIsNotConstructed is returned when a Coordinate was not
// created via a constructor.
var ErrCoordinateIsNotConstructed = errs.NewValueIsRequiredError(
	"coordinate must be created via NewLatitude or NewLongitude constructor")

// Coordinate is a single angular coordinate in decimal degrees, bounded by
// the axis it was constructed for.
type Coordinate struct { //nolint:recvcheck //using for validation
	value float64
	guard guard.ConstructorGuard
}

// NewLatitude creates a latitude Coordinate in [-90, 90] degrees.
func NewLatitude(value float64) (Coordinate, error) {
	return newCoordinate("latitude", value, LatitudeMinDegrees, LatitudeMaxDegrees)
}

// NewLongitude creates a longitude Coordinate in [-180, 180] degrees.
func NewLongitude(value float64) (Coordinate, error) {
	return newCoordinate("longitude", value, LongitudeMinDegrees, LongitudeMaxDegrees)
}

func newCoordinate(paramName string, value, minValue, maxValue float64) (Coordinate, error) {
	coordinate := Coordinate{
		guard: guard.NewConstructorGuard(),
	}

	if err := coordinate.setValue(paramName, value, minValue, maxValue); err != nil {
		return Coordinate{}, err
	}

	return coordinate, nil
}

// Validate checks that the Coordinate was created via a constructor.
func (c Coordinate) Validate() error {
	return c.guard.Validate(ErrCoordinateIsNotConstructed)
}

// Value returns the coordinate in decimal degrees.
func (c Coordinate) Value() float64 {
	return c.value
}

// Radians returns the coordinate converted to radians.
func (c Coordinate) Radians() float64 {
	return c.value * math.Pi / 180
}

// IsEqualTo reports whether both coordinates hold exactly the same degree
// value. Both coordinates must be properly constructed.
func (c Coordinate) IsEqualTo(other Coordinate) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return c.value == other.value, nil
}

// String implements fmt.Stringer.
func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f°", c.value)
}

func (c *Coordinate) setValue(paramName string, value, minValue, maxValue float64) error {
	if math.IsNaN(value) || value < minValue || value > maxValue {
		return errs.NewValueIsOutOfRangeError(
			paramName,
			fmt.Sprintf("%.4f", value),
			fmt.Sprintf("%.1f", minValue),
			fmt.Sprintf("%.1f", maxValue),
		)
	}

	c.value = value
	return nil
}
