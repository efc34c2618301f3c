// Package http exposes the commerce API over HTTP.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// Server handles the commerce HTTP API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	updateOrderHandler   commands.UpdateOrderCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	createProductHandler commands.CreateProductCommandHandler
	restockHandler       commands.RestockProductsCommandHandler
	createUserHandler    commands.CreateUserCommandHandler

	// Query handlers
	listOrdersHandler              queries.ListOrdersQueryHandler
	getOrderHandler                queries.GetOrderQueryHandler
	listProductsHandler            queries.ListProductsQueryHandler
	getLowStockHandler             queries.GetLowStockProductsQueryHandler
	getUserHandler                 queries.GetUserQueryHandler
	getPendingNotificationsHandler queries.GetPendingNotificationsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	restockHandler commands.RestockProductsCommandHandler,
	createUserHandler commands.CreateUserCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listProductsHandler queries.ListProductsQueryHandler,
	getLowStockHandler queries.GetLowStockProductsQueryHandler,
	getUserHandler queries.GetUserQueryHandler,
	getPendingNotificationsHandler queries.GetPendingNotificationsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:             createOrderHandler,
		updateOrderHandler:             updateOrderHandler,
		cancelOrderHandler:             cancelOrderHandler,
		createProductHandler:           createProductHandler,
		restockHandler:                 restockHandler,
		createUserHandler:              createUserHandler,
		listOrdersHandler:              listOrdersHandler,
		getOrderHandler:                getOrderHandler,
		listProductsHandler:            listProductsHandler,
		getLowStockHandler:             getLowStockHandler,
		getUserHandler:                 getUserHandler,
		getPendingNotificationsHandler: getPendingNotificationsHandler,
	}
}

// RegisterRoutes binds all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PATCH("/orders/:orderId", s.UpdateOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)

	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.ListProducts)
	api.GET("/products/low-stock", s.GetLowStockProducts)
	api.POST("/products/restock", s.RestockProducts)

	api.POST("/users", s.CreateUser)
	api.GET("/users/:userId", s.GetUser)
	api.GET("/users/:userId/orders", s.ListUserOrders)

	api.GET("/notifications/pending", s.GetPendingNotifications)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(request.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user ID: "+err.Error())
	}

	lines := make([]commands.OrderLine, len(request.Items))
	for i, item := range request.Items {
		productID, lineErr := kernel.UUIDFromString(item.ProductID)
		if lineErr != nil {
			return badRequest(ctx, "Invalid product ID: "+lineErr.Error())
		}
		lines[i] = commands.OrderLine{ProductID: productID, Quantity: item.Quantity}
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), userID, request.ShippingAddress, request.Notes, lines)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// ListOrders handles GET /api/v1/orders - retrieves a page of orders,
// optionally filtered by user and status.
func (s *Server) ListOrders(ctx echo.Context) error {
	return s.listOrders(ctx, ctx.QueryParam("userId"))
}

// ListUserOrders handles GET /api/v1/users/{userId}/orders - retrieves a page
// of the user's orders.
func (s *Server) ListUserOrders(ctx echo.Context) error {
	return s.listOrders(ctx, ctx.Param("userId"))
}

func (s *Server) listOrders(ctx echo.Context, rawUserID string) error {
	var userID *kernel.UUID
	if rawUserID != "" {
		parsed, err := kernel.UUIDFromString(rawUserID)
		if err != nil {
			return badRequest(ctx, "Invalid user ID: "+err.Error())
		}
		userID = &parsed
	}

	var status *order.Status
	if rawStatus := ctx.QueryParam("status"); rawStatus != "" {
		parsed, err := order.StatusFromString(rawStatus)
		if err != nil {
			return badRequest(ctx, "Invalid status: "+err.Error())
		}
		status = &parsed
	}

	page, pageSize, err := pagination(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewListOrdersQuery(userID, status, page, pageSize)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	orders := make([]Order, len(result.Orders))
	for i, model := range result.Orders {
		orders[i] = orderFromReadModel(model)
	}

	return ctx.JSON(http.StatusOK, OrderPage{
		Orders:   orders,
		Total:    result.Total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(result))
}

// UpdateOrder handles PATCH /api/v1/orders/{orderId} - updates order status
// or shipping details.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var request UpdateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var status *order.Status
	if request.Status != nil {
		parsed, statusErr := order.StatusFromString(*request.Status)
		if statusErr != nil {
			return badRequest(ctx, "Invalid status: "+statusErr.Error())
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, status, request.ShippingAddress, request.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - cancels an order
// and restores product stock.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(cancelled))
}

// CreateProduct handles POST /api/v1/products - registers a catalog product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request CreateProductRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.MoneyFromString(request.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), request.Name, request.Description, price, request.Stock, request.Category)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productFromDomain(created))
}

// ListProducts handles GET /api/v1/products - retrieves a page of catalog
// products, optionally filtered by category.
func (s *Server) ListProducts(ctx echo.Context) error {
	page, pageSize, err := pagination(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewListProductsQuery(ctx.QueryParam("category"), page, pageSize)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	result, err := s.listProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	products := make([]Product, len(result.Products))
	for i, model := range result.Products {
		products[i] = productFromReadModel(model)
	}

	return ctx.JSON(http.StatusOK, ProductPage{
		Products: products,
		Total:    result.Total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetLowStockProducts handles GET /api/v1/products/low-stock - retrieves
// products below the stock threshold.
func (s *Server) GetLowStockProducts(ctx echo.Context) error {
	threshold := 0
	if raw := ctx.QueryParam("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid threshold")
		}
		threshold = parsed
	}

	query, err := queries.NewGetLowStockProductsQuery(threshold)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	result, err := s.getLowStockHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	products := make([]Product, len(result))
	for i, model := range result {
		products[i] = productFromReadModel(model)
	}

	return ctx.JSON(http.StatusOK, products)
}

// RestockProducts handles POST /api/v1/products/restock - increments stock
// on the listed products.
func (s *Server) RestockProducts(ctx echo.Context) error {
	var request RestockRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines := make([]commands.RestockLine, len(request.Items))
	for i, item := range request.Items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return badRequest(ctx, "Invalid product ID: "+err.Error())
		}
		lines[i] = commands.RestockLine{ProductID: productID, Quantity: item.Quantity}
	}

	cmd, err := commands.NewRestockProductsCommand(lines)
	if err != nil {
		return badRequest(ctx, "Invalid restock data: "+err.Error())
	}

	restocked, err := s.restockHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.domainError(ctx, err)
	}

	products := make([]Product, len(restocked))
	for i, aggregate := range restocked {
		products[i] = productFromDomain(aggregate)
	}

	return ctx.JSON(http.StatusOK, products)
}

// CreateUser handles POST /api/v1/users - registers a user.
func (s *Server) CreateUser(ctx echo.Context) error {
	var request CreateUserRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateUserCommand(kernel.NewUUID(), request.Email, request.Name)
	if err != nil {
		return badRequest(ctx, "Invalid user data: "+err.Error())
	}

	created, err := s.createUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, userFromDomain(created))
}

// GetUser handles GET /api/v1/users/{userId} - retrieves a single user.
func (s *Server) GetUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID: "+err.Error())
	}

	query, err := queries.NewGetUserQuery(userID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	result, err := s.getUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userFromReadModel(result))
}

// GetPendingNotifications handles GET /api/v1/notifications/pending -
// retrieves notifications awaiting dispatch.
func (s *Server) GetPendingNotifications(ctx echo.Context) error {
	query := queries.NewGetPendingNotificationsQuery()

	result, err := s.getPendingNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	notifications := make([]Notification, len(result))
	for i, model := range result {
		notifications[i] = notificationFromReadModel(model)
	}

	return ctx.JSON(http.StatusOK, notifications)
}

// pagination extracts page and pageSize query parameters with defaults.
func pagination(ctx echo.Context) (int, int, error) {
	page := defaultPage
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errors.New("invalid page")
		}
		page = parsed
	}

	pageSize := defaultPageSize
	if raw := ctx.QueryParam("pageSize"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errors.New("invalid pageSize")
		}
		pageSize = parsed
	}

	return page, pageSize, nil
}

// domainError maps application errors to HTTP status codes.
func (s *Server) domainError(ctx echo.Context, err error) error {
	var invalidTransition *order.InvalidTransitionError
	var cancellation *order.CancellationError
	var insufficientStock *product.InsufficientStockError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.As(err, &invalidTransition),
		errors.As(err, &cancellation),
		errors.As(err, &insufficientStock):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return errorJSON(ctx, http.StatusBadRequest, message)
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
