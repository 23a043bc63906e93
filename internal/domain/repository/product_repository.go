package repository

import (
	"context"

	"github.com/google/uuid"

	"bistro/internal/domain/entity"
	"bistro/internal/errors"
)

// Product repository errors
var (
	// ErrProductNotFound indicates that the product was not found
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines persistence operations for the menu catalog.
type ProductRepository interface {
	// CreateProduct persists a new menu entry.
	CreateProduct(ctx context.Context, product *entity.Product) error
	// FindProductByID loads one product.
	// Returns ErrProductNotFound when no such product exists.
	FindProductByID(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	// FindAllProducts lists the whole catalog, including unavailable entries.
	FindAllProducts(ctx context.Context) ([]*entity.Product, error)
	// FindAvailableProducts lists only entries currently offered.
	FindAvailableProducts(ctx context.Context) ([]*entity.Product, error)
	// UpdateProduct persists edits to an existing entry.
	// Returns ErrProductNotFound when no such product exists.
	UpdateProduct(ctx context.Context, product *entity.Product) error
	// SetProductAvailability toggles whether the entry is offered.
	// Returns ErrProductNotFound when no such product exists.
	SetProductAvailability(ctx context.Context, productID uuid.UUID, available bool) error
	// DeleteProduct removes an entry from the catalog.
	// Returns ErrProductNotFound when no such product exists.
	DeleteProduct(ctx context.Context, productID uuid.UUID) error
}
