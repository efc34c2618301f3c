package queries

import (
	"context"
	"strings"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves pages of orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	query, _ := NewListOrdersQuery(nil, nil, 1, 20)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d orders\n", page.Total)
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query for a page of orders.
// Returns orders with their items, newest first, plus the total matching
// count for pagination metadata.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where, args := buildOrderFilters(query)

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders"+where, args...).
		Scan(&total).Error
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	pageArgs := append(append([]any{}, args...), query.PageSize(), offset)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			status,
			total,
			shipping_address,
			notes,
			created_at,
			updated_at
		FROM orders`+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0, query.PageSize())
	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows.Scan)
		if scanErr != nil {
			return ListOrdersQueryResponse{}, scanErr
		}
		orders = append(orders, orderResp)
	}
	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	if err = h.attachItems(ctx, orders); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{Orders: orders, Total: total}, nil
}

// attachItems loads line items for the fetched orders in one query and
// distributes them by order ID.
func (h ListOrdersQueryHandler) attachItems(ctx context.Context, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(orders))
	index := make(map[kernel.UUID]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID.Bytes()
		index[o.ID] = i
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			product_name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id IN ?
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		item, scanErr := scanItemRow(&orderID, rows.Scan)
		if scanErr != nil {
			return scanErr
		}

		owner, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return idErr
		}
		i, ok := index[owner]
		if !ok {
			continue
		}
		orders[i].Items = append(orders[i].Items, item)
	}

	return rows.Err()
}

// buildOrderFilters renders the AND-combined WHERE clause for the optional
// user and status filters.
func buildOrderFilters(query ListOrdersQuery) (string, []any) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if query.UserID() != nil {
		conditions = append(conditions, "user_id = ?")
		args = append(args, query.UserID().Bytes())
	}
	if query.Status() != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, query.Status().String())
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

type scanFunc func(dest ...any) error

// scanOrderRow converts one orders row into the read model.
func scanOrderRow(scan scanFunc) (OrderResponse, error) {
	var resp OrderResponse
	var id, userID uuid.UUID
	var status, total string

	if err := scan(
		&id,
		&userID,
		&status,
		&total,
		&resp.ShippingAddress,
		&resp.Notes,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	buyerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.UserID = buyerID

	parsedStatus, err := order.StatusFromString(status)
	if err != nil {
		return OrderResponse{}, err
	}
	resp.Status = parsedStatus

	parsedTotal, err := kernel.MoneyFromString(total)
	if err != nil {
		return OrderResponse{}, err
	}
	resp.Total = parsedTotal

	return resp, nil
}

// scanItemRow converts one order_items row into the read model.
func scanItemRow(orderID *uuid.UUID, scan scanFunc) (OrderItemResponse, error) {
	var item OrderItemResponse
	var productID uuid.UUID
	var unitPrice string

	if err := scan(
		orderID,
		&productID,
		&item.ProductName,
		&item.Quantity,
		&unitPrice,
	); err != nil {
		return OrderItemResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return OrderItemResponse{}, err
	}
	item.ProductID = id

	price, err := kernel.MoneyFromString(unitPrice)
	if err != nil {
		return OrderItemResponse{}, err
	}
	item.UnitPrice = price
	item.Subtotal = price.MulQuantity(item.Quantity)

	return item, nil
}
