package handler

import (
	"log/slog"
	"net/http"

	"bistro/config"
	"bistro/internal/delivery/http/middleware"
	"bistro/internal/delivery/http/response"
	"bistro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, cfg *config.Config, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// PlaceOrder handles the checkout request, turning the session cart into an order.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var input *usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	actor := middleware.ActorFromContext(c)
	sessionID := cartSessionID(c, h.cfg.Cart.TTL)

	order, err := h.uc.PlaceOrder(c.Request().Context(), actor, sessionID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// GetOrder handles the request for one order.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	actor := middleware.ActorFromContext(c)

	order, err := h.uc.GetOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ListOrders handles the request for the actor's visible orders.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	actor := middleware.ActorFromContext(c)

	orders, err := h.uc.ListOrders(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// UpdateStatus handles the staff request to move an order through its lifecycle.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	var input *usecase.UpdateOrderStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	actor := middleware.ActorFromContext(c)

	order, err := h.uc.UpdateStatus(c.Request().Context(), actor, orderID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}

// DeleteOrder handles the admin request to remove an order.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	actor := middleware.ActorFromContext(c)

	if err := h.uc.DeleteOrder(c.Request().Context(), actor, orderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted successfully")
}

// TrackOrder handles the public tracking request for an order.
func (h *OrderHandler) TrackOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	tracking, err := h.uc.TrackOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tracking, "Order tracking retrieved")
}

// TrackingQR handles the public request for a tracking QR code image.
func (h *OrderHandler) TrackingQR(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	png, err := h.uc.TrackingQR(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
