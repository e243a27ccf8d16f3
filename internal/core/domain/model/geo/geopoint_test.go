package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tariff/internal/core/domain/model/geo"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid point", func(t *testing.T) {
		point, err := geo.NewGeoPoint(
			mustNewLatitude(t, 55.7558), mustNewLongitude(t, 37.6173))
		require.NoError(t, err)

		assert.NoError(t, point.Validate())
		assert.InDelta(t, 55.7558, point.Latitude().Value(), 0)
		assert.InDelta(t, 37.6173, point.Longitude().Value(), 0)
	})

	t.Run("zero value latitude fails", func(t *testing.T) {
		var invalid geo.Coordinate
		_, err := geo.NewGeoPoint(invalid, mustNewLongitude(t, 37.6173))
		assert.Error(t, err)
	})

	t.Run("zero value longitude fails", func(t *testing.T) {
		var invalid geo.Coordinate
		_, err := geo.NewGeoPoint(mustNewLatitude(t, 55.7558), invalid)
		assert.Error(t, err)
	})

	t.Run("zero value point fails validate", func(t *testing.T) {
		var point geo.GeoPoint
		err := point.Validate()
		assert.Error(t, err)
		assert.Equal(t, geo.ErrGeoPointIsNotConstructed, err)
	})
}

func TestGeoPoint_IsSameLocation(t *testing.T) {
	moscow := mustNewGeoPoint(t, 55.7558, 37.6173)
	moscowAgain := mustNewGeoPoint(t, 55.7558, 37.6173)
	spb := mustNewGeoPoint(t, 59.9311, 30.3609)

	got, err := moscow.IsSameLocation(moscowAgain)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = moscow.IsSameLocation(spb)
	require.NoError(t, err)
	assert.False(t, got)

	t.Run("same latitude different longitude", func(t *testing.T) {
		other := mustNewGeoPoint(t, 55.7558, 37.62)
		got, err := moscow.IsSameLocation(other)
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("zero value operand fails", func(t *testing.T) {
		var invalid geo.GeoPoint
		_, err := moscow.IsSameLocation(invalid)
		assert.Error(t, err)
	})
}

func TestGeoPoint_String(t *testing.T) {
	point := mustNewGeoPoint(t, 55.7558, 37.6173)
	assert.Equal(t, "(55.755800°, 37.617300°)", point.String())
}

func mustNewGeoPoint(t *testing.T, latitude, longitude float64) geo.GeoPoint {
	t.Helper()
	point, err := geo.NewGeoPoint(
		mustNewLatitude(t, latitude), mustNewLongitude(t, longitude))
	require.NoError(t, err)
	return point
}
