package queries

import (
	"context"

	"tariff/internal/core/domain/model/geo"
	"tariff/internal/core/domain/model/kernel"
	"tariff/internal/core/domain/model/shipment"
	"tariff/internal/core/domain/services"
	"tariff/internal/pkg/errs"
)

// CalculatePriceQueryResponse carries the priced result: the total delivery
// price and the carrier's minimal price, both in the requested currency.
type CalculatePriceQueryResponse struct {
	TotalPrice   kernel.Price
	MinimalPrice kernel.Price
}

// CalculatePriceQueryHandler prices calculate requests: it turns raw inputs
// into domain objects, checks the route against the service area and
// delegates pricing to the tariff calculator.
type CalculatePriceQueryHandler struct {
	boundary           geo.Boundary
	calculator         services.TariffCalculator
	maxSideMillimeters int64
}

// NewCalculatePriceQueryHandler creates the handler. A zero
// maxSideMillimeters disables the per-side package cap.
func NewCalculatePriceQueryHandler(
	boundary geo.Boundary,
	calculator services.TariffCalculator,
	maxSideMillimeters int64,
) (CalculatePriceQueryHandler, error) {
	if err := boundary.Validate(); err != nil {
		return CalculatePriceQueryHandler{}, err
	}
	if err := calculator.Validate(); err != nil {
		return CalculatePriceQueryHandler{}, err
	}
	if maxSideMillimeters < 0 {
		return CalculatePriceQueryHandler{}, errs.NewConfigIsInvalidError(
			"max package side in millimeters")
	}

	return CalculatePriceQueryHandler{
		boundary:           boundary,
		calculator:         calculator,
		maxSideMillimeters: maxSideMillimeters,
	}, nil
}

// Handle prices a shipment described by the query.
func (h CalculatePriceQueryHandler) Handle(
	_ context.Context, query CalculatePriceQuery,
) (CalculatePriceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CalculatePriceQueryResponse{}, err
	}

	currency, err := kernel.NewCurrency(query.CurrencyCode())
	if err != nil {
		return CalculatePriceQueryResponse{}, err
	}

	packs, err := h.buildPacks(query.Packages())
	if err != nil {
		return CalculatePriceQueryResponse{}, err
	}

	departure, err := h.boundary.NewGeoPoint(
		query.Departure().Latitude, query.Departure().Longitude)
	if err != nil {
		return CalculatePriceQueryResponse{}, err
	}
	destination, err := h.boundary.NewGeoPoint(
		query.Destination().Latitude, query.Destination().Longitude)
	if err != nil {
		return CalculatePriceQueryResponse{}, err
	}

	s, err := shipment.NewShipment(packs, currency, departure, destination)
	if err != nil {
		return CalculatePriceQueryResponse{}, err
	}

	totalPrice, err := h.calculator.CalcWithDistance(s)
	if err != nil {
		return CalculatePriceQueryResponse{}, err
	}

	// The minimal price is reported in the shipment currency regardless of
	// the currency the calculator was configured with.
	minimalPrice, err := kernel.NewPrice(h.calculator.MinimumPrice().Amount(), currency)
	if err != nil {
		return CalculatePriceQueryResponse{}, err
	}

	return CalculatePriceQueryResponse{
		TotalPrice:   totalPrice,
		MinimalPrice: minimalPrice,
	}, nil
}

func (h CalculatePriceQueryHandler) buildPacks(inputs []PackageInput) ([]shipment.Pack, error) {
	packs := make([]shipment.Pack, 0, len(inputs))

	for _, input := range inputs {
		weight, err := kernel.NewWeight(input.WeightGrams)
		if err != nil {
			return nil, err
		}

		length, err := kernel.NewLength(input.LengthMillimeters)
		if err != nil {
			return nil, err
		}
		width, err := kernel.NewLength(input.WidthMillimeters)
		if err != nil {
			return nil, err
		}
		height, err := kernel.NewLength(input.HeightMillimeters)
		if err != nil {
			return nil, err
		}

		dimensions, err := h.buildDimensions(length, width, height)
		if err != nil {
			return nil, err
		}

		pack, err := shipment.NewPack(weight, dimensions)
		if err != nil {
			return nil, err
		}
		packs = append(packs, pack)
	}

	return packs, nil
}

func (h CalculatePriceQueryHandler) buildDimensions(
	length, width, height kernel.Length,
) (kernel.OuterDimensions, error) {
	if h.maxSideMillimeters == 0 {
		return kernel.NewOuterDimensions(length, width, height)
	}

	maxSide, err := kernel.NewLength(h.maxSideMillimeters)
	if err != nil {
		return kernel.OuterDimensions{}, err
	}
	return kernel.NewOuterDimensionsWithSideLimit(length, width, height, maxSide)
}
