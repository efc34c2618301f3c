package queries_test

import (
	"testing"

	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetLowStockProductsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetLowStockProductsQuery(25)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	assert.Equal(t, 25, query.Threshold())
}

func TestNewGetLowStockProductsQuery_NonPositiveThresholdUsesDefault(t *testing.T) {
	tests := []struct {
		name      string
		threshold int
	}{
		{"zero", 0},
		{"negative", -3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			query, err := queries.NewGetLowStockProductsQuery(test.threshold)
			require.NoError(t, err)
			assert.Equal(t, product.LowStockThreshold, query.Threshold())
		})
	}
}

func TestNewGetLowStockProductsQuery_ThresholdTooLarge(t *testing.T) {
	_, err := queries.NewGetLowStockProductsQuery(10001)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestGetLowStockProductsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetLowStockProductsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetLowStockProductsQueryIsNotConstructed)
}
