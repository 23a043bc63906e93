// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bistro/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCartItemInput represents the input for adding a product to the cart
type AddCartItemInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1,max=10"`
}

// UpdateCartItemInput represents the input for changing a cart line
type UpdateCartItemInput struct {
	Quantity            *int    `json:"quantity,omitempty" validate:"omitempty,min=1,max=10"`
	SpecialInstructions *string `json:"specialInstructions,omitempty"`
}

// CartView is the cart as returned to clients, with the derived total.
type CartView struct {
	Items []entity.CartItem `json:"items"`
	Total float64           `json:"total"`
}

// CartUsecase defines the interface for session cart use cases
type CartUsecase interface {
	// GetCart returns the session's cart, empty when nothing is stored.
	GetCart(ctx context.Context, sessionID string) (*CartView, error)
	// AddItem puts a product into the cart, merging with an existing line.
	AddItem(ctx context.Context, sessionID string, input *AddCartItemInput) (*CartView, error)
	// UpdateItem changes the quantity or special instructions of a line.
	UpdateItem(ctx context.Context, sessionID string, productID uuid.UUID, input *UpdateCartItemInput) (*CartView, error)
	// RemoveItem drops a line from the cart.
	RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) (*CartView, error)
	// ClearCart empties the cart.
	ClearCart(ctx context.Context, sessionID string) error
}
