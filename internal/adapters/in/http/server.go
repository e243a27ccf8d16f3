package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"tariff/internal/core/application/usecases/queries"
	"tariff/internal/pkg/errs"
)

// Server exposes the tariff engine over HTTP.
type Server struct {
	calculatePriceHandler queries.CalculatePriceQueryHandler
}

// NewServer creates the HTTP server facade.
func NewServer(calculatePriceHandler queries.CalculatePriceQueryHandler) *Server {
	return &Server{calculatePriceHandler: calculatePriceHandler}
}

// RegisterRoutes attaches the API routes to an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/calculate", s.CalculatePrice)
}

// CalculateRequestPackage is one package in a calculate request. All
// measurements are raw integers: grams and millimeters.
type CalculateRequestPackage struct {
	Weight int64 `json:"weight"`
	Length int64 `json:"length"`
	Width  int64 `json:"width"`
	Height int64 `json:"height"`
}

// GeoPointRequest is a route endpoint in a calculate request.
type GeoPointRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CalculateRequest is the body of POST /api/v1/calculate.
type CalculateRequest struct {
	Packages     []CalculateRequestPackage `json:"packages"`
	CurrencyCode string                    `json:"currencyCode"`
	Departure    GeoPointRequest           `json:"departure"`
	Destination  GeoPointRequest           `json:"destination"`
}

// CalculateResponse is the priced result. Prices are fixed two-decimal
// strings rounded up, so the caller is never undercharged by formatting.
type CalculateResponse struct {
	TotalPrice   string `json:"totalPrice"`
	MinimalPrice string `json:"minimalPrice"`
	CurrencyCode string `json:"currencyCode"`
}

// ErrorResponse is the body of any non-2xx reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CalculatePrice handles POST /api/v1/calculate.
func (s *Server) CalculatePrice(c echo.Context) error {
	var request CalculateRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "malformed request body",
		})
	}

	packages := make([]queries.PackageInput, 0, len(request.Packages))
	for _, p := range request.Packages {
		packages = append(packages, queries.PackageInput{
			WeightGrams:       p.Weight,
			LengthMillimeters: p.Length,
			WidthMillimeters:  p.Width,
			HeightMillimeters: p.Height,
		})
	}

	query, err := queries.NewCalculatePriceQuery(
		packages,
		request.CurrencyCode,
		queries.PointInput{
			Latitude:  request.Departure.Latitude,
			Longitude: request.Departure.Longitude,
		},
		queries.PointInput{
			Latitude:  request.Destination.Latitude,
			Longitude: request.Destination.Longitude,
		},
	)
	if err != nil {
		return errorJSON(c, err)
	}

	response, err := s.calculatePriceHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, CalculateResponse{
		TotalPrice:   response.TotalPrice.Amount().RoundCeil(2).StringFixed(2),
		MinimalPrice: response.MinimalPrice.Amount().RoundCeil(2).StringFixed(2),
		CurrencyCode: response.TotalPrice.Currency().Code(),
	})
}

func errorJSON(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	if errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, errs.ErrDivideByZero) {
		status = http.StatusBadRequest
	}

	return c.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
