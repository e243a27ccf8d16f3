package geo

import (
	"errors"
	"fmt"

	"tariff/internal/pkg/errs"
	"tariff/internal/pkg/guard"
)

// ErrGeoPointIsNotConstructed is returned when a GeoPoint was not created
// via the NewGeoPoint constructor.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is a point on the Earth's surface identified by a latitude and
// longitude pair.
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  Coordinate
	longitude Coordinate
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from a latitude and longitude. Both must be
// properly constructed coordinates.
func NewGeoPoint(latitude, longitude Coordinate) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		point.setLatitude(latitude),
		point.setLongitude(longitude),
	)
	if err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks that the GeoPoint was created via its constructor.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the point's latitude.
func (p GeoPoint) Latitude() Coordinate {
	return p.latitude
}

// Longitude returns the point's longitude.
func (p GeoPoint) Longitude() Coordinate {
	return p.longitude
}

// IsSameLocation reports whether both points hold exactly the same
// coordinates. Both points must be properly constructed.
func (p GeoPoint) IsSameLocation(other GeoPoint) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	sameLatitude, err := p.latitude.IsEqualTo(other.latitude)
	if err != nil {
		return false, err
	}
	sameLongitude, err := p.longitude.IsEqualTo(other.longitude)
	if err != nil {
		return false, err
	}

	return sameLatitude && sameLongitude, nil
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("(%s, %s)", p.latitude, p.longitude)
}

func (p *GeoPoint) setLatitude(latitude Coordinate) error {
	if err := latitude.Validate(); err != nil {
		return err
	}
	p.latitude = latitude
	return nil
}

func (p *GeoPoint) setLongitude(longitude Coordinate) error {
	if err := longitude.Validate(); err != nil {
		return err
	}
	p.longitude = longitude
	return nil
}
