package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"tariff/internal/core/domain/model/geo"
	"tariff/internal/core/domain/model/kernel"
	"tariff/internal/core/domain/model/shipment"
	"tariff/internal/pkg/errs"
	"tariff/internal/pkg/guard"
)

// priceScale is the number of decimal places every computed price carries.
const priceScale = 2

// ErrTariffCalculatorIsNotConstructed is returned when a TariffCalculator
// was not created via the NewTariffCalculator constructor.
var ErrTariffCalculatorIsNotConstructed = errs.NewValueIsRequiredError(
	"tariff calculator must be created via NewTariffCalculator constructor")

// TariffCalculator prices shipments. The billable base price is the greater
// of the weight-derived and volume-derived prices, floored at the carrier's
// minimum price, then scaled by how far the route exceeds the minimum
// billable distance.
type TariffCalculator struct { //nolint:recvcheck //using for validation
	costPerKilogram        decimal.Decimal
	costPerCubicCentimeter decimal.Decimal
	minimumPrice           kernel.Price
	minimumDistance        geo.Distance
	guard                  guard.ConstructorGuard
}

// NewTariffCalculator creates a TariffCalculator from carrier rates.
// Negative rates and a zero minimum distance are configuration errors.
func NewTariffCalculator(
	costPerKilogram decimal.Decimal,
	costPerCubicCentimeter decimal.Decimal,
	minimumPrice kernel.Price,
	minimumDistance geo.Distance,
) (TariffCalculator, error) {
	calculator := TariffCalculator{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		calculator.setCostPerKilogram(costPerKilogram),
		calculator.setCostPerCubicCentimeter(costPerCubicCentimeter),
		calculator.setMinimumPrice(minimumPrice),
		calculator.setMinimumDistance(minimumDistance),
	)
	if err != nil {
		return TariffCalculator{}, err
	}

	return calculator, nil
}

// Validate checks that the TariffCalculator was created via its constructor.
func (c TariffCalculator) Validate() error {
	return c.guard.Validate(ErrTariffCalculatorIsNotConstructed)
}

// MinimumPrice returns the configured minimum price.
func (c TariffCalculator) MinimumPrice() kernel.Price {
	return c.minimumPrice
}

// CalcByWeight prices the shipment by its total weight: kilograms times the
// per-kilogram rate, rounded half up to two decimal places.
func (c TariffCalculator) CalcByWeight(s *shipment.Shipment) (kernel.Price, error) {
	if err := c.requireShipment(s); err != nil {
		return kernel.Price{}, err
	}

	weight, err := s.TotalWeight()
	if err != nil {
		return kernel.Price{}, err
	}

	amount := weight.Kilograms().Mul(c.costPerKilogram).Round(priceScale)
	return kernel.NewPrice(amount, s.Currency())
}

// CalcByVolume prices the shipment by its total billable volume: cubic
// centimeters times the per-cubic-centimeter rate, rounded half up to two
// decimal places.
func (c TariffCalculator) CalcByVolume(s *shipment.Shipment) (kernel.Price, error) {
	if err := c.requireShipment(s); err != nil {
		return kernel.Price{}, err
	}

	volume, err := s.TotalVolume()
	if err != nil {
		return kernel.Price{}, err
	}

	amount := decimal.NewFromInt(volume.CubicCentimeters()).
		Mul(c.costPerCubicCentimeter).
		Round(priceScale)
	return kernel.NewPrice(amount, s.Currency())
}

// Calc returns the base price of the shipment: the greater of the weight
// and volume prices, floored at the minimum price. When the floor applies,
// the configured minimum amount is returned exactly, denominated in the
// shipment currency.
func (c TariffCalculator) Calc(s *shipment.Shipment) (kernel.Price, error) {
	weightPrice, err := c.CalcByWeight(s)
	if err != nil {
		return kernel.Price{}, err
	}
	volumePrice, err := c.CalcByVolume(s)
	if err != nil {
		return kernel.Price{}, err
	}

	base, err := weightPrice.Max(volumePrice)
	if err != nil {
		return kernel.Price{}, err
	}

	if base.Amount().LessThan(c.minimumPrice.Amount()) {
		return kernel.NewPrice(c.minimumPrice.Amount(), s.Currency())
	}

	return base, nil
}

// CalcWithDistance returns the final price of the shipment: the base price
// scaled by the ratio of the route distance to the minimum billable
// distance. Routes shorter than the minimum are billed at the minimum, so
// the coefficient never drops below one.
func (c TariffCalculator) CalcWithDistance(s *shipment.Shipment) (kernel.Price, error) {
	base, err := c.Calc(s)
	if err != nil {
		return kernel.Price{}, err
	}

	distance, err := s.Distance()
	if err != nil {
		return kernel.Price{}, err
	}

	effective := distance
	belowMinimum, err := distance.IsLessThan(c.minimumDistance)
	if err != nil {
		return kernel.Price{}, err
	}
	if belowMinimum {
		effective = c.minimumDistance
	}

	coefficient, err := effective.RatioTo(c.minimumDistance)
	if err != nil {
		return kernel.Price{}, err
	}

	amount := base.Amount().Mul(decimal.NewFromFloat(coefficient)).Round(priceScale)
	return kernel.NewPrice(amount, s.Currency())
}

func (c TariffCalculator) requireShipment(s *shipment.Shipment) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if s == nil {
		return errs.NewValueIsRequiredError("shipment")
	}
	return s.Validate()
}

func (c *TariffCalculator) setCostPerKilogram(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewConfigIsInvalidErrorWithCause(
			"cost per kilogram",
			fmt.Errorf("%s is negative", cost),
		)
	}
	c.costPerKilogram = cost
	return nil
}

func (c *TariffCalculator) setCostPerCubicCentimeter(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewConfigIsInvalidErrorWithCause(
			"cost per cubic centimeter",
			fmt.Errorf("%s is negative", cost),
		)
	}
	c.costPerCubicCentimeter = cost
	return nil
}

func (c *TariffCalculator) setMinimumPrice(minimumPrice kernel.Price) error {
	if err := minimumPrice.Validate(); err != nil {
		return err
	}
	c.minimumPrice = minimumPrice
	return nil
}

func (c *TariffCalculator) setMinimumDistance(minimumDistance geo.Distance) error {
	if err := minimumDistance.Validate(); err != nil {
		return err
	}
	if minimumDistance.Kilometers() == 0 {
		return errs.NewConfigIsInvalidErrorWithCause(
			"minimum distance",
			errors.New("zero kilometers would make the distance coefficient undefined"),
		)
	}
	c.minimumDistance = minimumDistance
	return nil
}
