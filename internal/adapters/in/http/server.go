// Package http exposes the application's use cases over a REST API.
// Handlers translate between JSON payloads and commands/queries; all
// business decisions stay in the application and domain layers.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	ConfirmOrder       commands.ConfirmOrderCommandHandler
	StartPreparation   commands.StartPreparationCommandHandler
	MarkReadyForPickup commands.MarkReadyForPickupCommandHandler
	CompleteOrder      commands.CompleteOrderCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	FailOrder          commands.FailOrderCommandHandler
	DeleteOrder        commands.DeleteOrderCommandHandler
	AdjustStock        commands.AdjustStockCommandHandler
	SaleStock          commands.SaleStockCommandHandler

	GetOrder         queries.GetOrderQueryHandler
	GetOrderList     queries.GetOrderListQueryHandler
	GetStock         queries.GetStockQueryHandler
	GetInventoryLogs queries.GetInventoryLogsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts all API routes on the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/confirm", s.ConfirmOrder)
	api.POST("/orders/:id/start-preparation", s.StartPreparation)
	api.POST("/orders/:id/ready", s.MarkReadyForPickup)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/fail", s.FailOrder)

	api.GET("/products/:productId/stock", s.GetStock)
	api.POST("/products/:productId/stock/adjust", s.AdjustStock)
	api.POST("/products/:productId/stock/sale", s.SaleStock)
	api.GET("/products/:productId/stock/logs", s.GetInventoryLogs)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// ErrorDTO is the JSON body returned on every failed request.
type ErrorDTO struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// errorResponse maps application errors to HTTP status codes. Malformed
// input is a 400, a missing resource a 404, a broken business rule or a
// concurrent-modification conflict a 409. Anything unrecognized is a 500.
func errorResponse(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrBusinessRuleBroken),
		errors.Is(err, errs.ErrVersionConflict):
		status = http.StatusConflict
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorDTO{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}

	return ctx.JSON(status, ErrorDTO{Code: status, Message: err.Error()})
}

// NewOrderItemDTO is one order line in a creation request.
type NewOrderItemDTO struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// NewOrderDTO is the request body for creating an order.
type NewOrderDTO struct {
	UserID      string            `json:"userId"`
	Description string            `json:"description"`
	Items       []NewOrderItemDTO `json:"items"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrderDTO
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDTO{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]order.Item, 0, len(body.Items))
	for _, line := range body.Items {
		item, err := order.NewItem(kernel.NewUUID().String(),
			line.ProductID, line.Name, line.Quantity, line.Price)
		if err != nil {
			return errorResponse(ctx, err)
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, body.UserID, items, body.Description)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	resp, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDTO(resp))
}

// GetOrders handles GET /api/v1/orders with optional userId, status, limit
// and offset query parameters.
func (s *Server) GetOrders(ctx echo.Context) error {
	limit, err := intQueryParam(ctx, "limit")
	if err != nil {
		return errorResponse(ctx, err)
	}
	offset, err := intQueryParam(ctx, "offset")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var userID *string
	if raw := ctx.QueryParam("userId"); raw != "" {
		userID = &raw
	}

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, parseErr := order.StatusFromName(raw)
		if parseErr != nil {
			return errorResponse(ctx, parseErr)
		}
		status = &parsed
	}

	query, err := queries.NewGetOrderListQuery(limit, offset, userID, status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	resp, err := s.handlers.GetOrderList.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderListDTO(resp))
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewConfirmOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.handlers.ConfirmOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// StartPreparation handles POST /api/v1/orders/:id/start-preparation.
func (s *Server) StartPreparation(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewStartPreparationCommand(orderID)
		if err != nil {
			return err
		}
		return s.handlers.StartPreparation.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkReadyForPickup handles POST /api/v1/orders/:id/ready.
func (s *Server) MarkReadyForPickup(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewMarkReadyForPickupCommand(orderID)
		if err != nil {
			return err
		}
		return s.handlers.MarkReadyForPickup.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewCompleteOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.handlers.CompleteOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrderDTO is the request body for cancelling an order. CancelledBy
// defaults to "user" when the body is empty.
type CancelOrderDTO struct {
	CancelledBy string `json:"cancelledBy"`
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	var body CancelOrderDTO
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDTO{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cancelledBy := order.CancelledBy(body.CancelledBy)
	if body.CancelledBy == "" {
		cancelledBy = order.CancelledByUser
	}

	return s.transitionOrder(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewCancelOrderCommand(orderID, cancelledBy)
		if err != nil {
			return err
		}
		return s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// FailOrderDTO is the request body for marking preparation as failed.
type FailOrderDTO struct {
	Reason string `json:"reason"`
}

// FailOrder handles POST /api/v1/orders/:id/fail.
func (s *Server) FailOrder(ctx echo.Context) error {
	var body FailOrderDTO
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDTO{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	return s.transitionOrder(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewFailOrderCommand(orderID, body.Reason)
		if err != nil {
			return err
		}
		return s.handlers.FailOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewDeleteOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// transitionOrder factors the shared shape of the lifecycle endpoints:
// parse the order ID, run the command, answer 204 on success.
func (s *Server) transitionOrder(ctx echo.Context, run func(orderID kernel.UUID) error) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = run(orderID); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StockDTO is the stock level read model returned to clients.
type StockDTO struct {
	ProductID  string `json:"productId"`
	Quantity   int    `json:"quantity"`
	OutOfStock bool   `json:"outOfStock"`
	UpdatedAt  string `json:"updatedAt"`
}

// GetStock handles GET /api/v1/products/:productId/stock.
func (s *Server) GetStock(ctx echo.Context) error {
	query, err := queries.NewGetStockQuery(ctx.Param("productId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	resp, err := s.handlers.GetStock.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StockDTO{
		ProductID:  resp.ProductID,
		Quantity:   resp.Quantity,
		OutOfStock: resp.OutOfStock,
		UpdatedAt:  resp.UpdatedAt.Format(timeFormat),
	})
}

// AdjustStockDTO is the request body for a manual stock adjustment.
type AdjustStockDTO struct {
	TargetQuantity int    `json:"targetQuantity"`
	Reason         string `json:"reason"`
	Operator       string `json:"operator"`
}

// AdjustStock handles POST /api/v1/products/:productId/stock/adjust.
func (s *Server) AdjustStock(ctx echo.Context) error {
	var body AdjustStockDTO
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDTO{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAdjustStockCommand(ctx.Param("productId"),
		body.TargetQuantity, body.Reason, body.Operator)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.AdjustStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SaleStockDTO is the request body for recording a sale.
type SaleStockDTO struct {
	Quantity int    `json:"quantity"`
	Operator string `json:"operator"`
}

// SaleStock handles POST /api/v1/products/:productId/stock/sale.
func (s *Server) SaleStock(ctx echo.Context) error {
	var body SaleStockDTO
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDTO{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSaleStockCommand(ctx.Param("productId"), body.Quantity, body.Operator)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.SaleStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetInventoryLogs handles GET /api/v1/products/:productId/stock/logs with
// optional limit and offset query parameters.
func (s *Server) GetInventoryLogs(ctx echo.Context) error {
	limit, err := intQueryParam(ctx, "limit")
	if err != nil {
		return errorResponse(ctx, err)
	}
	offset, err := intQueryParam(ctx, "offset")
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetInventoryLogsQuery(ctx.Param("productId"), limit, offset)
	if err != nil {
		return errorResponse(ctx, err)
	}

	resp, err := s.handlers.GetInventoryLogs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toInventoryLogsDTO(resp))
}

// intQueryParam parses an optional integer query parameter; absence means zero.
func intQueryParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}
