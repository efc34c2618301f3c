// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

const (
	// MinPageSize and MaxPageSize bound the page window of list queries.
	MinPageSize = 1
	MaxPageSize = 100
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves a page of orders, optionally filtered by buyer
// and status. Filters combine with logical AND; a nil filter places no
// constraint on its field.
//
// Example:
//
//	query, err := NewListOrdersQuery(&userID, nil, 1, 20)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListOrdersQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("showing %d of %d orders\n", len(page.Orders), page.Total)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	userID   *kernel.UUID
	status   *order.Status
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for a page of orders.
// Page starts at 1; pageSize must be within [1, 100].
func NewListOrdersQuery(
	userID *kernel.UUID,
	status *order.Status,
	page int,
	pageSize int,
) (ListOrdersQuery, error) {
	listQuery := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		listQuery.setUserID(userID),
		listQuery.setStatus(status),
		listQuery.setPage(page),
		listQuery.setPageSize(pageSize),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// UserID returns the buyer filter, or nil for no constraint.
func (q ListOrdersQuery) UserID() *kernel.UUID {
	return q.userID
}

// Status returns the status filter, or nil for no constraint.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the page window size.
func (q ListOrdersQuery) PageSize() int {
	return q.pageSize
}

func (q *ListOrdersQuery) setUserID(userID *kernel.UUID) error {
	if userID == nil {
		return nil
	}
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}

func (q *ListOrdersQuery) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	return nil
}

func (q *ListOrdersQuery) setPage(page int) error {
	if page < 1 {
		return errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}

	q.page = page
	return nil
}

func (q *ListOrdersQuery) setPageSize(pageSize int) error {
	if pageSize < MinPageSize || pageSize > MaxPageSize {
		return errs.NewValueIsOutOfRangeError("pageSize", pageSize, MinPageSize, MaxPageSize)
	}

	q.pageSize = pageSize
	return nil
}

// OrderItemResponse represents a line item in the order read model.
type OrderItemResponse struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
	Subtotal    kernel.Money
}

// OrderResponse represents an order in the read model, including its items.
type OrderResponse struct {
	ID              kernel.UUID
	UserID          kernel.UUID
	Status          order.Status
	Total           kernel.Money
	ShippingAddress string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Items           []OrderItemResponse
}

// ListOrdersQueryResponse is a page of orders plus the total matching count,
// independent of the page window.
type ListOrdersQueryResponse struct {
	Orders []OrderResponse
	Total  int64
}
