package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tariff/internal/core/application/usecases/queries"
	"tariff/internal/pkg/errs"
)

func TestNewCalculatePriceQuery(t *testing.T) {
	packages := []queries.PackageInput{
		{WeightGrams: 4564, LengthMillimeters: 345, WidthMillimeters: 589, HeightMillimeters: 234},
	}
	departure := queries.PointInput{Latitude: 55.7558, Longitude: 37.6173}
	destination := queries.PointInput{Latitude: 59.9311, Longitude: 30.3609}

	t.Run("valid query", func(t *testing.T) {
		query, err := queries.NewCalculatePriceQuery(packages, "RUB", departure, destination)
		require.NoError(t, err)

		assert.NoError(t, query.Validate())
		assert.Equal(t, packages, query.Packages())
		assert.Equal(t, "RUB", query.CurrencyCode())
		assert.Equal(t, departure, query.Departure())
		assert.Equal(t, destination, query.Destination())
	})

	t.Run("empty package list fails", func(t *testing.T) {
		_, err := queries.NewCalculatePriceQuery(nil, "RUB", departure, destination)
		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty currency code fails", func(t *testing.T) {
		_, err := queries.NewCalculatePriceQuery(packages, "", departure, destination)
		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value query fails validate", func(t *testing.T) {
		var query queries.CalculatePriceQuery
		err := query.Validate()
		assert.Error(t, err)
		assert.Equal(t, queries.ErrCalculatePriceQueryIsNotConstructed, err)
	})

	t.Run("packages slice is copied", func(t *testing.T) {
		input := []queries.PackageInput{{WeightGrams: 1000}}
		query, err := queries.NewCalculatePriceQuery(input, "RUB", departure, destination)
		require.NoError(t, err)

		input[0].WeightGrams = 9999
		assert.Equal(t, int64(1000), query.Packages()[0].WeightGrams)
	})
}
