package queries

import (
	"errors"

	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var (
	ErrGetLowStockProductsQueryIsNotConstructed = errors.New(
		"GetLowStockProductsQuery must be created via NewGetLowStockProductsQuery constructor",
	)
)

// GetLowStockProductsQuery retrieves products whose stock has fallen below
// a threshold.
type GetLowStockProductsQuery struct {
	threshold int

	guard guard.ConstructorGuard
}

// NewGetLowStockProductsQuery creates a low-stock query. A non-positive
// threshold falls back to the default product.LowStockThreshold.
func NewGetLowStockProductsQuery(threshold int) (GetLowStockProductsQuery, error) {
	if threshold <= 0 {
		threshold = product.LowStockThreshold
	}
	if threshold > 10000 {
		return GetLowStockProductsQuery{}, errs.NewValueIsOutOfRangeError(
			"threshold", threshold, 1, 10000)
	}

	return GetLowStockProductsQuery{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLowStockProductsQueryIsNotConstructed if validation fails.
func (q GetLowStockProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockProductsQueryIsNotConstructed)
}

// Threshold returns the stock level below which products are reported.
func (q GetLowStockProductsQuery) Threshold() int {
	return q.threshold
}
