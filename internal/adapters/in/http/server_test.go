package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpin "tariff/internal/adapters/in/http"
	"tariff/internal/core/application/usecases/queries"
	"tariff/internal/core/domain/model/geo"
	"tariff/internal/core/domain/model/kernel"
	"tariff/internal/core/domain/services"
)

func TestServer_CalculatePrice(t *testing.T) {
	server := httpin.NewServer(mustNewHandler(t))

	t.Run("prices a shipment", func(t *testing.T) {
		body := `{
			"packages": [{"weight": 4564, "length": 100, "width": 200, "height": 300}],
			"currencyCode": "RUB",
			"departure": {"latitude": 55.7558, "longitude": 37.6173},
			"destination": {"latitude": 59.9311, "longitude": 30.3609}
		}`

		rec := doCalculate(t, server, body)
		require.Equal(t, http.StatusOK, rec.Code)

		var response httpin.CalculateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

		assert.Equal(t, "2562.90", response.TotalPrice)
		assert.Equal(t, "350.00", response.MinimalPrice)
		assert.Equal(t, "RUB", response.CurrencyCode)
	})

	t.Run("zero distance bills at the minimum distance", func(t *testing.T) {
		body := `{
			"packages": [{"weight": 4564, "length": 100, "width": 200, "height": 300}],
			"currencyCode": "RUB",
			"departure": {"latitude": 55.7558, "longitude": 37.6173},
			"destination": {"latitude": 55.7558, "longitude": 37.6173}
		}`

		rec := doCalculate(t, server, body)
		require.Equal(t, http.StatusOK, rec.Code)

		var response httpin.CalculateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "1825.60", response.TotalPrice)
	})

	t.Run("minimum price floor", func(t *testing.T) {
		body := `{
			"packages": [{"weight": 500, "length": 1, "width": 1, "height": 1}],
			"currencyCode": "RUB",
			"departure": {"latitude": 55.7558, "longitude": 37.6173},
			"destination": {"latitude": 55.7558, "longitude": 37.6173}
		}`

		rec := doCalculate(t, server, body)
		require.Equal(t, http.StatusOK, rec.Code)

		var response httpin.CalculateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "350.00", response.TotalPrice)
	})

	t.Run("empty package list", func(t *testing.T) {
		body := `{
			"packages": [],
			"currencyCode": "RUB",
			"departure": {"latitude": 55.7558, "longitude": 37.6173},
			"destination": {"latitude": 59.9311, "longitude": 30.3609}
		}`

		rec := doCalculate(t, server, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var response httpin.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.Contains(t, response.Message, "packages")
	})

	t.Run("negative weight", func(t *testing.T) {
		body := `{
			"packages": [{"weight": -1, "length": 100, "width": 100, "height": 100}],
			"currencyCode": "RUB",
			"departure": {"latitude": 55.7558, "longitude": 37.6173},
			"destination": {"latitude": 59.9311, "longitude": 30.3609}
		}`

		rec := doCalculate(t, server, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("point outside the service area", func(t *testing.T) {
		body := `{
			"packages": [{"weight": 1000, "length": 100, "width": 100, "height": 100}],
			"currencyCode": "RUB",
			"departure": {"latitude": 70.0, "longitude": 37.0},
			"destination": {"latitude": 59.9311, "longitude": 30.3609}
		}`

		rec := doCalculate(t, server, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid currency code", func(t *testing.T) {
		body := `{
			"packages": [{"weight": 1000, "length": 100, "width": 100, "height": 100}],
			"currencyCode": "rubles",
			"departure": {"latitude": 55.7558, "longitude": 37.6173},
			"destination": {"latitude": 59.9311, "longitude": 30.3609}
		}`

		rec := doCalculate(t, server, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := doCalculate(t, server, `{"packages": [`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func doCalculate(t *testing.T, server *httpin.Server, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, server.CalculatePrice(c))
	return rec
}

func mustNewHandler(t *testing.T) queries.CalculatePriceQueryHandler {
	t.Helper()

	boundary, err := geo.RussiaBoundary()
	require.NoError(t, err)

	currency, err := kernel.NewCurrency("RUB")
	require.NoError(t, err)
	minimalPrice, err := kernel.NewPrice(decimal.NewFromInt(350), currency)
	require.NoError(t, err)
	minimalDistance, err := geo.NewDistance(450)
	require.NoError(t, err)

	calculator, err := services.NewTariffCalculator(
		decimal.NewFromInt(400),
		decimal.NewFromFloat(0.1),
		minimalPrice,
		minimalDistance,
	)
	require.NoError(t, err)

	handler, err := queries.NewCalculatePriceQueryHandler(boundary, calculator, 1500)
	require.NoError(t, err)
	return handler
}
