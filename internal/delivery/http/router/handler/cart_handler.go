package handler

import (
	"log/slog"
	"net/http"

	"bistro/config"
	"bistro/internal/delivery/http/response"
	"bistro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for session cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, cfg *config.Config, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// GetCart handles the request to read the session's cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	sessionID := cartSessionID(c, h.cfg.Cart.TTL)

	cart, err := h.uc.GetCart(c.Request().Context(), sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart retrieved successfully")
}

// AddItem handles the request to put a product into the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input *usecase.AddCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	sessionID := cartSessionID(c, h.cfg.Cart.TTL)

	cart, err := h.uc.AddItem(c.Request().Context(), sessionID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item added to cart")
}

// UpdateItem handles the request to change a cart line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var input *usecase.UpdateCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	sessionID := cartSessionID(c, h.cfg.Cart.TTL)

	cart, err := h.uc.UpdateItem(c.Request().Context(), sessionID, productID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart item updated")
}

// RemoveItem handles the request to drop a line from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	sessionID := cartSessionID(c, h.cfg.Cart.TTL)

	cart, err := h.uc.RemoveItem(c.Request().Context(), sessionID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item removed from cart")
}

// ClearCart handles the request to empty the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	sessionID := cartSessionID(c, h.cfg.Cart.TTL)

	if err := h.uc.ClearCart(c.Request().Context(), sessionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
