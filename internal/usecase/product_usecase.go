package usecase

import (
	"context"

	"bistro/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput represents the input for creating a menu entry
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,url"`
	Category    string  `json:"category" validate:"required"`
	Available   *bool   `json:"available,omitempty"`
}

// UpdateProductInput represents the input for editing a menu entry
type UpdateProductInput struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	ImageURL    *string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Category    *string  `json:"category,omitempty"`
	Available   *bool    `json:"available,omitempty"`
}

// ProductUsecase defines the interface for menu catalog use cases
type ProductUsecase interface {
	// GetMenu returns the products currently offered to shoppers.
	GetMenu(ctx context.Context) ([]*entity.Product, error)
	// GetProduct returns one product regardless of availability.
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	// ListProducts returns the whole catalog. Staff and admins only.
	ListProducts(ctx context.Context, actor entity.Actor) ([]*entity.Product, error)
	// CreateProduct adds a menu entry. Staff and admins only.
	CreateProduct(ctx context.Context, actor entity.Actor, input *CreateProductInput) (*entity.Product, error)
	// UpdateProduct edits a menu entry. Staff and admins only.
	UpdateProduct(ctx context.Context, actor entity.Actor, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	// SetAvailability toggles whether the entry is offered. Staff and admins only.
	SetAvailability(ctx context.Context, actor entity.Actor, productID uuid.UUID, available bool) error
	// DeleteProduct removes a menu entry. Staff and admins only.
	DeleteProduct(ctx context.Context, actor entity.Actor, productID uuid.UUID) error
}
