package shipment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tariff/internal/core/domain/model/geo"
	"tariff/internal/core/domain/model/kernel"
	"tariff/internal/core/domain/model/shipment"
	"tariff/internal/pkg/errs"
)

func TestNewShipment(t *testing.T) {
	t.Run("valid shipment", func(t *testing.T) {
		s, err := shipment.NewShipment(
			[]shipment.Pack{mustNewPack(t, 4564, 345, 589, 234)},
			mustNewCurrency(t, "RUB"),
			mustNewGeoPoint(t, 55.7558, 37.6173),
			mustNewGeoPoint(t, 59.9311, 30.3609),
		)
		require.NoError(t, err)

		assert.NoError(t, s.Validate())
		assert.Len(t, s.Packages(), 1)
		assert.Equal(t, "RUB", s.Currency().Code())
	})

	t.Run("empty package list fails", func(t *testing.T) {
		_, err := shipment.NewShipment(
			nil,
			mustNewCurrency(t, "RUB"),
			mustNewGeoPoint(t, 55.7558, 37.6173),
			mustNewGeoPoint(t, 59.9311, 30.3609),
		)
		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value pack fails", func(t *testing.T) {
		var invalid shipment.Pack
		_, err := shipment.NewShipment(
			[]shipment.Pack{invalid},
			mustNewCurrency(t, "RUB"),
			mustNewGeoPoint(t, 55.7558, 37.6173),
			mustNewGeoPoint(t, 59.9311, 30.3609),
		)
		assert.Error(t, err)
	})

	t.Run("zero value currency fails", func(t *testing.T) {
		var invalid kernel.Currency
		_, err := shipment.NewShipment(
			[]shipment.Pack{mustNewPack(t, 1000, 100, 100, 100)},
			invalid,
			mustNewGeoPoint(t, 55.7558, 37.6173),
			mustNewGeoPoint(t, 59.9311, 30.3609),
		)
		assert.Error(t, err)
	})

	t.Run("zero value endpoint fails", func(t *testing.T) {
		var invalid geo.GeoPoint
		_, err := shipment.NewShipment(
			[]shipment.Pack{mustNewPack(t, 1000, 100, 100, 100)},
			mustNewCurrency(t, "RUB"),
			invalid,
			mustNewGeoPoint(t, 59.9311, 30.3609),
		)
		assert.Error(t, err)
	})

	t.Run("nil shipment fails validate", func(t *testing.T) {
		var s *shipment.Shipment
		err := s.Validate()
		assert.Error(t, err)
		assert.Equal(t, shipment.ErrShipmentIsNotConstructed, err)
	})

	t.Run("packs slice is copied", func(t *testing.T) {
		packs := []shipment.Pack{mustNewPack(t, 1000, 100, 100, 100)}
		s, err := shipment.NewShipment(
			packs,
			mustNewCurrency(t, "RUB"),
			mustNewGeoPoint(t, 55.7558, 37.6173),
			mustNewGeoPoint(t, 59.9311, 30.3609),
		)
		require.NoError(t, err)

		packs[0] = shipment.Pack{}
		assert.NoError(t, s.Packages()[0].Validate())
	})
}

func TestShipment_TotalWeight(t *testing.T) {
	s := mustNewShipment(t,
		mustNewPack(t, 1500, 100, 100, 100),
		mustNewPack(t, 2500, 100, 100, 100),
	)

	total, err := s.TotalWeight()
	require.NoError(t, err)
	assert.Equal(t, int64(4000), total.Grams())
}

func TestShipment_TotalVolume(t *testing.T) {
	t.Run("sums billable volumes", func(t *testing.T) {
		// Each pack: 10 x 20 x 30 cm = 6000 cm3.
		s := mustNewShipment(t,
			mustNewPack(t, 1000, 100, 200, 300),
			mustNewPack(t, 1000, 100, 200, 300),
		)

		total, err := s.TotalVolume()
		require.NoError(t, err)
		assert.Equal(t, int64(12000), total.CubicCentimeters())
	})

	t.Run("total above the volume cap fails", func(t *testing.T) {
		// 9950 mm sides give 995^3 cm3, far over one cubic meter.
		big := mustNewPack(t, 1000, 9950, 9950, 9950)
		s := mustNewShipment(t, big)

		_, err := s.TotalVolume()
		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestShipment_Distance(t *testing.T) {
	s := mustNewShipment(t, mustNewPack(t, 1000, 100, 100, 100))

	distance, err := s.Distance()
	require.NoError(t, err)
	assert.InDelta(t, 631.74, distance.Kilometers(), 1.0)
}

func mustNewCurrency(t *testing.T, code string) kernel.Currency {
	t.Helper()
	currency, err := kernel.NewCurrency(code)
	require.NoError(t, err)
	return currency
}

func mustNewGeoPoint(t *testing.T, latitude, longitude float64) geo.GeoPoint {
	t.Helper()
	lat, err := geo.NewLatitude(latitude)
	require.NoError(t, err)
	lon, err := geo.NewLongitude(longitude)
	require.NoError(t, err)
	point, err := geo.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return point
}

func mustNewShipment(t *testing.T, packs ...shipment.Pack) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		packs,
		mustNewCurrency(t, "RUB"),
		mustNewGeoPoint(t, 55.7558, 37.6173),
		mustNewGeoPoint(t, 59.9311, 30.3609),
	)
	require.NoError(t, err)
	return s
}
