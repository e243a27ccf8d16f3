package queries

import (
	"errors"

	"tariff/internal/pkg/errs"
	"tariff/internal/pkg/guard"
)

// ErrCalculatePriceQueryIsNotConstructed is returned when a
// CalculatePriceQuery was not created via its constructor.
var ErrCalculatePriceQueryIsNotConstructed = errs.NewValueIsRequiredError(
	"calculate price query must be created via NewCalculatePriceQuery constructor")

// PackageInput carries the raw measurements of one package as supplied by
// the caller, before any value objects are constructed from them.
type PackageInput struct {
	WeightGrams       int64
	LengthMillimeters int64
	WidthMillimeters  int64
	HeightMillimeters int64
}

// PointInput carries raw coordinates of a route endpoint.
type PointInput struct {
	Latitude  float64
	Longitude float64
}

// CalculatePriceQuery asks for the delivery price of a set of packages
// between two points, expressed in a currency.
type CalculatePriceQuery struct {
	packages     []PackageInput
	currencyCode string
	departure    PointInput
	destination  PointInput
	guard        guard.ConstructorGuard
}

// NewCalculatePriceQuery creates a CalculatePriceQuery. At least one package
// and a non-empty currency code are required; deeper validation happens when
// the handler constructs the domain objects.
func NewCalculatePriceQuery(
	packages []PackageInput,
	currencyCode string,
	departure PointInput,
	destination PointInput,
) (CalculatePriceQuery, error) {
	query := CalculatePriceQuery{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		query.setPackages(packages),
		query.setCurrencyCode(currencyCode),
	)
	if err != nil {
		return CalculatePriceQuery{}, err
	}

	query.departure = departure
	query.destination = destination
	return query, nil
}

// Validate checks that the query was created via its constructor.
func (q CalculatePriceQuery) Validate() error {
	return q.guard.Validate(ErrCalculatePriceQueryIsNotConstructed)
}

// Packages returns a copy of the raw package inputs.
func (q CalculatePriceQuery) Packages() []PackageInput {
	packages := make([]PackageInput, len(q.packages))
	copy(packages, q.packages)
	return packages
}

// CurrencyCode returns the requested pricing currency code.
func (q CalculatePriceQuery) CurrencyCode() string {
	return q.currencyCode
}

// Departure returns the raw departure coordinates.
func (q CalculatePriceQuery) Departure() PointInput {
	return q.departure
}

// Destination returns the raw destination coordinates.
func (q CalculatePriceQuery) Destination() PointInput {
	return q.destination
}

func (q *CalculatePriceQuery) setPackages(packages []PackageInput) error {
	if len(packages) == 0 {
		return errs.NewValueIsRequiredError("packages")
	}
	q.packages = make([]PackageInput, len(packages))
	copy(q.packages, packages)
	return nil
}

func (q *CalculatePriceQuery) setCurrencyCode(currencyCode string) error {
	if currencyCode == "" {
		return errs.NewValueIsRequiredError("currency code")
	}
	q.currencyCode = currencyCode
	return nil
}
