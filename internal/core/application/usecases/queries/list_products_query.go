package queries

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var (
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
)

// ListProductsQuery retrieves a page of catalog products, optionally
// filtered by category.
type ListProductsQuery struct { //nolint:recvcheck //using for validation
	category string
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a query for a page of products.
// An empty category means no category constraint. Page starts at 1;
// pageSize must be within [1, 100].
func NewListProductsQuery(category string, page, pageSize int) (ListProductsQuery, error) {
	listQuery := ListProductsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		listQuery.setPage(page),
		listQuery.setPageSize(pageSize),
	); err != nil {
		return ListProductsQuery{}, err
	}
	listQuery.category = category

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListProductsQueryIsNotConstructed if validation fails.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// Category returns the category filter, empty for no constraint.
func (q ListProductsQuery) Category() string {
	return q.category
}

// Page returns the 1-based page number.
func (q ListProductsQuery) Page() int {
	return q.page
}

// PageSize returns the page window size.
func (q ListProductsQuery) PageSize() int {
	return q.pageSize
}

func (q *ListProductsQuery) setPage(page int) error {
	if page < 1 {
		return errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}

	q.page = page
	return nil
}

func (q *ListProductsQuery) setPageSize(pageSize int) error {
	if pageSize < MinPageSize || pageSize > MaxPageSize {
		return errs.NewValueIsOutOfRangeError("pageSize", pageSize, MinPageSize, MaxPageSize)
	}

	q.pageSize = pageSize
	return nil
}

// ProductResponse represents a catalog product in the read model.
type ProductResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       kernel.Money
	Stock       int
	Category    string
	CreatedAt   time.Time
}

// ListProductsQueryResponse is a page of products plus the total matching
// count.
type ListProductsQueryResponse struct {
	Products []ProductResponse
	Total    int64
}
