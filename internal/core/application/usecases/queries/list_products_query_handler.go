package queries

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductListCache caches rendered product pages between reads.
// Implementations are best-effort: a miss or a cache error falls through to
// the database, and a failed store is ignored.
type ProductListCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte)
}

// NopProductListCache is a ProductListCache that caches nothing. It also
// satisfies ports.CatalogCache so it can stand in on the write paths.
type NopProductListCache struct{}

func (NopProductListCache) Get(_ context.Context, _ string) ([]byte, bool) { return nil, false }
func (NopProductListCache) Set(_ context.Context, _ string, _ []byte)      {}
func (NopProductListCache) InvalidateProductLists(_ context.Context)       {}

// ListProductsQueryHandler retrieves pages of catalog products, consulting
// the read cache before the database.
type ListProductsQueryHandler struct {
	db    *gorm.DB
	cache ProductListCache
}

// NewListProductsQueryHandler creates a handler for product listing queries.
// Requires a GORM database connection and a ProductListCache; pass
// NopProductListCache to disable caching.
func NewListProductsQueryHandler(db *gorm.DB, cache ProductListCache) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db, cache: cache}
}

// cachedProductPage is the serialized form of a product page. Value objects
// are flattened to strings so the payload survives JSON round-trips.
type cachedProductPage struct {
	Products []cachedProduct `json:"products"`
	Total    int64           `json:"total"`
}

type cachedProduct struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Handle executes the query for a page of products.
// Serves from the cache when a previously rendered page is available.
func (h ListProductsQueryHandler) Handle(
	ctx context.Context,
	query ListProductsQuery,
) (ListProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListProductsQueryResponse{}, err
	}

	key := fmt.Sprintf("products:%s:%d:%d", query.Category(), query.Page(), query.PageSize())
	if payload, ok := h.cache.Get(ctx, key); ok {
		if resp, err := decodeProductPage(payload); err == nil {
			return resp, nil
		}
	}

	resp, err := h.loadPage(ctx, query)
	if err != nil {
		return ListProductsQueryResponse{}, err
	}

	if payload, encodeErr := encodeProductPage(resp); encodeErr == nil {
		h.cache.Set(ctx, key, payload)
	}

	return resp, nil
}

func (h ListProductsQueryHandler) loadPage(
	ctx context.Context,
	query ListProductsQuery,
) (ListProductsQueryResponse, error) {
	where := ""
	args := make([]any, 0, 3)
	if query.Category() != "" {
		where = " WHERE category = ?"
		args = append(args, query.Category())
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM products"+where, args...).
		Scan(&total).Error
	if err != nil {
		return ListProductsQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	args = append(args, query.PageSize(), offset)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			stock,
			category,
			created_at
		FROM products`+where+`
		ORDER BY name
		LIMIT ? OFFSET ?
	`, args...).Rows()
	if err != nil {
		return ListProductsQueryResponse{}, err
	}
	defer rows.Close()

	products := make([]ProductResponse, 0, query.PageSize())
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
			return ListProductsQueryResponse{}, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListProductsQueryResponse{}, idErr
		}
		resp.ID = productID

		parsedPrice, priceErr := kernel.MoneyFromString(price)
		if priceErr != nil {
			return ListProductsQueryResponse{}, priceErr
		}
		resp.Price = parsedPrice

		products = append(products, resp)
	}
	if err = rows.Err(); err != nil {
		return ListProductsQueryResponse{}, err
	}

	return ListProductsQueryResponse{Products: products, Total: total}, nil
}

func encodeProductPage(resp ListProductsQueryResponse) ([]byte, error) {
	page := cachedProductPage{
		Products: make([]cachedProduct, len(resp.Products)),
		Total:    resp.Total,
	}
	for i, p := range resp.Products {
		page.Products[i] = cachedProduct{
			ID:          p.ID.String(),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price.String(),
			Stock:       p.Stock,
			Category:    p.Category,
			CreatedAt:   p.CreatedAt,
		}
	}
	return json.Marshal(page)
}

func decodeProductPage(payload []byte) (ListProductsQueryResponse, error) {
	var page cachedProductPage
	if err := json.Unmarshal(payload, &page); err != nil {
		return ListProductsQueryResponse{}, err
	}

	resp := ListProductsQueryResponse{
		Products: make([]ProductResponse, len(page.Products)),
		Total:    page.Total,
	}
	for i, p := range page.Products {
		id, err := kernel.UUIDFromString(p.ID)
		if err != nil {
			return ListProductsQueryResponse{}, err
		}
		price, err := kernel.MoneyFromString(p.Price)
		if err != nil {
			return ListProductsQueryResponse{}, err
		}
		resp.Products[i] = ProductResponse{
			ID:          id,
			Name:        p.Name,
			Description: p.Description,
			Price:       price,
			Stock:       p.Stock,
			Category:    p.Category,
			CreatedAt:   p.CreatedAt,
		}
	}
	return resp, nil
}
