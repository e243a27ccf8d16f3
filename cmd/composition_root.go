package cmd

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"tariff/internal/core/application/usecases/queries"
	"tariff/internal/core/domain/model/geo"
	"tariff/internal/core/domain/model/kernel"
	"tariff/internal/core/domain/services"
)

// CompositionRoot wires configuration into the application's use case
// handlers.
type CompositionRoot struct {
	calculatePriceQueryHandler queries.CalculatePriceQueryHandler
}

// NewCompositionRoot parses the raw configuration and builds the object
// graph. Any invalid setting fails construction.
func NewCompositionRoot(config Config) (CompositionRoot, error) {
	boundary, err := buildBoundary(config)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("build service area boundary: %w", err)
	}

	calculator, err := buildCalculator(config)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("build tariff calculator: %w", err)
	}

	maxSideMm, err := parseInt("MAX_PACKAGE_SIDE_MM", config.MaxPackageSideMm)
	if err != nil {
		return CompositionRoot{}, err
	}

	handler, err := queries.NewCalculatePriceQueryHandler(boundary, calculator, maxSideMm)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("build calculate price handler: %w", err)
	}

	return CompositionRoot{calculatePriceQueryHandler: handler}, nil
}

// CreateCalculatePriceQueryHandler returns the calculate price use case
// handler.
func (cr CompositionRoot) CreateCalculatePriceQueryHandler() queries.CalculatePriceQueryHandler {
	return cr.calculatePriceQueryHandler
}

func buildBoundary(config Config) (geo.Boundary, error) {
	if config.MinLatitude == "" && config.MaxLatitude == "" &&
		config.MinLongitude == "" && config.MaxLongitude == "" {
		return geo.RussiaBoundary()
	}

	minLat, err := parseFloat("GEO_MIN_LATITUDE", config.MinLatitude)
	if err != nil {
		return geo.Boundary{}, err
	}
	maxLat, err := parseFloat("GEO_MAX_LATITUDE", config.MaxLatitude)
	if err != nil {
		return geo.Boundary{}, err
	}
	minLon, err := parseFloat("GEO_MIN_LONGITUDE", config.MinLongitude)
	if err != nil {
		return geo.Boundary{}, err
	}
	maxLon, err := parseFloat("GEO_MAX_LONGITUDE", config.MaxLongitude)
	if err != nil {
		return geo.Boundary{}, err
	}

	return geo.NewBoundary(minLat, maxLat, minLon, maxLon)
}

func buildCalculator(config Config) (services.TariffCalculator, error) {
	costPerKg, err := parseDecimal("COST_PER_KG", config.CostPerKilogram)
	if err != nil {
		return services.TariffCalculator{}, err
	}
	costPerCm3, err := parseDecimal("COST_PER_CM3", config.CostPerCubicCentimeter)
	if err != nil {
		return services.TariffCalculator{}, err
	}
	minimalAmount, err := parseDecimal("MINIMAL_PRICE", config.MinimalPrice)
	if err != nil {
		return services.TariffCalculator{}, err
	}
	minimalDistanceKm, err := parseFloat("MINIMAL_DISTANCE_KM", config.MinimalDistanceKm)
	if err != nil {
		return services.TariffCalculator{}, err
	}

	currency, err := kernel.NewCurrency(config.PriceCurrency)
	if err != nil {
		return services.TariffCalculator{}, err
	}
	minimalPrice, err := kernel.NewPrice(minimalAmount, currency)
	if err != nil {
		return services.TariffCalculator{}, err
	}
	minimalDistance, err := geo.NewDistance(minimalDistanceKm)
	if err != nil {
		return services.TariffCalculator{}, err
	}

	return services.NewTariffCalculator(costPerKg, costPerCm3, minimalPrice, minimalDistance)
}

func parseDecimal(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse %s %q: %w", name, value, err)
	}
	return d, nil
}

func parseFloat(name, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", name, value, err)
	}
	return f, nil
}

func parseInt(name, value string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", name, value, err)
	}
	return i, nil
}
