package usecase

import (
	"context"
	"time"

	"bistro/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderInput represents the checkout form accompanying the session cart
type PlaceOrderInput struct {
	CustomerName    string `json:"customerName" validate:"required"`
	CustomerPhone   string `json:"customerPhone" validate:"required,phone10"`
	CustomerAddress string `json:"customerAddress" validate:"required"`
}

// UpdateOrderStatusInput represents a requested lifecycle transition
type UpdateOrderStatusInput struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// OrderTrackingView is the public tracking projection of an order.
// It intentionally omits customer contact details.
type OrderTrackingView struct {
	ID                uuid.UUID          `json:"id"`
	Status            entity.OrderStatus `json:"status"`
	Items             []entity.OrderItem `json:"items"`
	TotalAmount       float64            `json:"totalAmount"`
	CreatedAt         time.Time          `json:"createdAt"`
	EstimatedDelivery *time.Time         `json:"estimatedDelivery,omitempty"`
}

// OrderUsecase defines the interface for order lifecycle use cases
type OrderUsecase interface {
	// PlaceOrder turns the session cart into a pending order and clears the cart.
	PlaceOrder(ctx context.Context, actor entity.Actor, sessionID string, input *PlaceOrderInput) (*entity.Order, error)
	// GetOrder returns one order, subject to the actor's visibility.
	GetOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error)
	// ListOrders returns the orders the actor may see, newest first.
	ListOrders(ctx context.Context, actor entity.Actor) ([]*entity.Order, error)
	// UpdateStatus applies a lifecycle transition. Staff and admins only.
	UpdateStatus(ctx context.Context, actor entity.Actor, orderID uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)
	// DeleteOrder removes an order and its items. Admins only.
	DeleteOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID) error
	// TrackOrder returns the public tracking projection of an order.
	TrackOrder(ctx context.Context, orderID uuid.UUID) (*OrderTrackingView, error)
	// TrackingQR renders a PNG QR code linking to the tracking page.
	TrackingQR(ctx context.Context, orderID uuid.UUID) ([]byte, error)
}
