package shipment

import (
	"errors"

	"tariff/internal/core/domain/model/geo"
	"tariff/internal/core/domain/model/kernel"
	"tariff/internal/pkg/errs"
	"tariff/internal/pkg/guard"
)

// ErrShipmentIsNotConstructed is returned when a Shipment was not created
// via the NewShipment constructor.
var ErrShipmentIsNotConstructed = errs.NewValueIsRequiredError(
	"shipment must be created via NewShipment constructor")

// Shipment is an aggregate of one or more packages traveling together from
// a departure point to a destination. All pricing of the shipment happens
// in its single currency.
type Shipment struct {
	packs       []Pack
	currency    kernel.Currency
	departure   geo.GeoPoint
	destination geo.GeoPoint
	guard       guard.ConstructorGuard
}

// NewShipment creates a Shipment. At least one package is required and
// every component must be properly constructed. The packs slice is copied.
func NewShipment(
	packs []Pack,
	currency kernel.Currency,
	departure geo.GeoPoint,
	destination geo.GeoPoint,
) (*Shipment, error) {
	shipment := &Shipment{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		shipment.setPacks(packs),
		shipment.setCurrency(currency),
		shipment.setDeparture(departure),
		shipment.setDestination(destination),
	)
	if err != nil {
		return nil, err
	}

	return shipment, nil
}

// Validate checks that the Shipment was created via its constructor.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// Packages returns a copy of the shipment's packages.
func (s *Shipment) Packages() []Pack {
	packs := make([]Pack, len(s.packs))
	copy(packs, s.packs)
	return packs
}

// Currency returns the shipment pricing currency.
func (s *Shipment) Currency() kernel.Currency {
	return s.currency
}

// Departure returns the departure point.
func (s *Shipment) Departure() geo.GeoPoint {
	return s.departure
}

// Destination returns the destination point.
func (s *Shipment) Destination() geo.GeoPoint {
	return s.destination
}

// TotalWeight returns the sum of all package weights.
func (s *Shipment) TotalWeight() (kernel.Weight, error) {
	if err := s.Validate(); err != nil {
		return kernel.Weight{}, err
	}

	total, err := kernel.NewWeight(0)
	if err != nil {
		return kernel.Weight{}, err
	}

	for _, pack := range s.packs {
		total, err = total.Add(pack.Weight())
		if err != nil {
			return kernel.Weight{}, err
		}
	}

	return total, nil
}

// TotalVolume returns the sum of all package billable volumes. The total is
// subject to the same upper bound as a single volume.
func (s *Shipment) TotalVolume() (kernel.Volume, error) {
	if err := s.Validate(); err != nil {
		return kernel.Volume{}, err
	}

	total, err := kernel.NewVolume(0)
	if err != nil {
		return kernel.Volume{}, err
	}

	for _, pack := range s.packs {
		volume, err := pack.Volume()
		if err != nil {
			return kernel.Volume{}, err
		}
		total, err = total.Add(volume)
		if err != nil {
			return kernel.Volume{}, err
		}
	}

	return total, nil
}

// Distance returns the great-circle distance between the departure and
// destination points.
func (s *Shipment) Distance() (geo.Distance, error) {
	if err := s.Validate(); err != nil {
		return geo.Distance{}, err
	}
	return geo.DistanceBetween(s.departure, s.destination)
}

func (s *Shipment) setPacks(packs []Pack) error {
	if len(packs) == 0 {
		return errs.NewValueIsRequiredError("packages")
	}

	for _, pack := range packs {
		if err := pack.Validate(); err != nil {
			return err
		}
	}

	s.packs = make([]Pack, len(packs))
	copy(s.packs, packs)
	return nil
}

func (s *Shipment) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	s.currency = currency
	return nil
}

func (s *Shipment) setDeparture(departure geo.GeoPoint) error {
	if err := departure.Validate(); err != nil {
		return err
	}
	s.departure = departure
	return nil
}

func (s *Shipment) setDestination(destination geo.GeoPoint) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	s.destination = destination
	return nil
}
