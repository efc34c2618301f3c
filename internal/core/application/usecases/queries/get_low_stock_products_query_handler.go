package queries

import (
	"context"

	"commerce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowStockProductsQueryHandler retrieves depleted products from the
// database, most depleted first.
type GetLowStockProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockProductsQueryHandler creates a handler for low-stock
// queries. Requires a GORM database connection for query execution.
func NewGetLowStockProductsQueryHandler(db *gorm.DB) GetLowStockProductsQueryHandler {
	return GetLowStockProductsQueryHandler{db: db}
}

// Handle executes the low-stock query.
func (h GetLowStockProductsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			stock,
			category,
			created_at
		FROM products
		WHERE stock < ?
		ORDER BY stock, name
	`, query.Threshold()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductResponse, 0)
	for rows.Next() {
		var resp ProductResponse
		var id uuid.UUID
		var price string

		if err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Description,
			&price,
			&resp.Stock,
			&resp.Category,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = productID

		parsedPrice, priceErr := kernel.MoneyFromString(price)
		if priceErr != nil {
			return nil, priceErr
		}
		resp.Price = parsedPrice

		products = append(products, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
