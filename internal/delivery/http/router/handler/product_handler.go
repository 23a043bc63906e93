package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bistro/internal/delivery/http/middleware"
	"bistro/internal/delivery/http/response"
	"bistro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for menu catalog handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetMenu handles the public request for the available menu.
func (h *ProductHandler) GetMenu(c echo.Context) error {
	products, err := h.uc.GetMenu(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Menu retrieved successfully")
}

// GetProduct handles the public request for one menu entry.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// ListProducts handles the staff request for the whole catalog.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	actor := middleware.ActorFromContext(c)

	products, err := h.uc.ListProducts(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// CreateProduct handles the staff request to add a menu entry.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input *usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	actor := middleware.ActorFromContext(c)

	product, err := h.uc.CreateProduct(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct handles the staff request to edit a menu entry.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var input *usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	actor := middleware.ActorFromContext(c)

	product, err := h.uc.UpdateProduct(c.Request().Context(), actor, productID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// SetAvailability handles the staff request to toggle a menu entry.
func (h *ProductHandler) SetAvailability(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	available, err := strconv.ParseBool(c.QueryParam("available"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'available' must be true or false")
	}

	actor := middleware.ActorFromContext(c)

	if err := h.uc.SetAvailability(c.Request().Context(), actor, productID, available); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product availability updated")
}

// DeleteProduct handles the staff request to remove a menu entry.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	actor := middleware.ActorFromContext(c)

	if err := h.uc.DeleteProduct(c.Request().Context(), actor, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}
