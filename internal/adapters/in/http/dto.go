package http

import (
	"time"

	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/core/domain/model/user"
)

// Error is the uniform error payload for all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderLine is a requested purchase line.
type OrderLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	UserID          string      `json:"userId"`
	ShippingAddress string      `json:"shippingAddress"`
	Notes           string      `json:"notes,omitempty"`
	Items           []OrderLine `json:"items"`
}

// UpdateOrderRequest is the body of PATCH /api/v1/orders/{orderId}.
// Absent fields are left unchanged.
type UpdateOrderRequest struct {
	Status          *string `json:"status,omitempty"`
	ShippingAddress *string `json:"shippingAddress,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// CreateProductRequest is the body of POST /api/v1/products.
type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
	Category    string `json:"category,omitempty"`
}

// RestockLine is one product adjustment in a restock request.
type RestockLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// RestockRequest is the body of POST /api/v1/products/restock.
type RestockRequest struct {
	Items []RestockLine `json:"items"`
}

// CreateUserRequest is the body of POST /api/v1/users.
type CreateUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// OrderItem is a line item in an order payload.
type OrderItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	Subtotal    string `json:"subtotal"`
}

// Order is the order payload returned by order endpoints.
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	Status          string      `json:"status"`
	Total           string      `json:"total"`
	ShippingAddress string      `json:"shippingAddress"`
	Notes           string      `json:"notes,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	Items           []OrderItem `json:"items"`
}

// OrderPage is a page of orders plus pagination metadata.
type OrderPage struct {
	Orders   []Order `json:"orders"`
	Total    int64   `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
}

// Product is the product payload returned by catalog endpoints.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProductPage is a page of products plus pagination metadata.
type ProductPage struct {
	Products []Product `json:"products"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
}

// User is the user payload returned by user endpoints.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notification is the notification payload returned by notification endpoints.
type Notification struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	RecipientID string    `json:"recipientId"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	ReferenceID string    `json:"referenceId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func orderFromDomain(aggregate *order.Order) Order {
	items := make([]OrderItem, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items[i] = OrderItem{
			ProductID:   item.ProductID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().String(),
			Subtotal:    item.Subtotal().String(),
		}
	}

	return Order{
		ID:              aggregate.ID().String(),
		UserID:          aggregate.UserID().String(),
		Status:          aggregate.Status().String(),
		Total:           aggregate.Total().String(),
		ShippingAddress: aggregate.ShippingAddress(),
		Notes:           aggregate.Notes(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		Items:           items,
	}
}

func orderFromReadModel(model queries.OrderResponse) Order {
	items := make([]OrderItem, len(model.Items))
	for i, item := range model.Items {
		items[i] = OrderItem{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.String(),
			Subtotal:    item.Subtotal.String(),
		}
	}

	return Order{
		ID:              model.ID.String(),
		UserID:          model.UserID.String(),
		Status:          model.Status.String(),
		Total:           model.Total.String(),
		ShippingAddress: model.ShippingAddress,
		Notes:           model.Notes,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
		Items:           items,
	}
}

func productFromDomain(aggregate *product.Product) Product {
	return Product{
		ID:          aggregate.ID().String(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price().String(),
		Stock:       aggregate.Stock(),
		Category:    aggregate.Category(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func productFromReadModel(model queries.ProductResponse) Product {
	return Product{
		ID:          model.ID.String(),
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price.String(),
		Stock:       model.Stock,
		Category:    model.Category,
		CreatedAt:   model.CreatedAt,
	}
}

func userFromDomain(aggregate *user.User) User {
	return User{
		ID:        aggregate.ID().String(),
		Email:     aggregate.Email(),
		Name:      aggregate.Name(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func userFromReadModel(model queries.UserResponse) User {
	return User{
		ID:        model.ID.String(),
		Email:     model.Email,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
	}
}

func notificationFromReadModel(model queries.NotificationResponse) Notification {
	return Notification{
		ID:          model.ID.String(),
		Type:        string(model.Type),
		RecipientID: model.RecipientID.String(),
		Subject:     model.Subject,
		Message:     model.Message,
		Status:      string(model.Status),
		ReferenceID: model.ReferenceID.String(),
		CreatedAt:   model.CreatedAt,
	}
}
