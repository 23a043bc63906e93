package repository

import (
	"context"

	"github.com/google/uuid"

	"bistro/internal/domain/entity"
	"bistro/internal/errors"
)

// Order repository errors
var (
	// ErrOrderNotFound indicates that the order was not found
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository defines persistence operations for orders and their items.
type OrderRepository interface {
	// CreateOrder persists the order header.
	CreateOrder(ctx context.Context, order *entity.Order) error
	// CreateOrderItems persists the order's line items.
	CreateOrderItems(ctx context.Context, items []entity.OrderItem) error
	// FindOrderByID loads an order with its items.
	// Returns ErrOrderNotFound when no such order exists.
	FindOrderByID(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)
	// FindAllOrders lists every order, newest first.
	FindAllOrders(ctx context.Context) ([]*entity.Order, error)
	// FindOrdersByUser lists the orders placed by one user, newest first.
	FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	// UpdateOrderStatus persists a status change.
	// Returns ErrOrderNotFound when no such order exists.
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error
	// DeleteOrderItems removes the line items of an order.
	DeleteOrderItems(ctx context.Context, orderID uuid.UUID) error
	// DeleteOrder removes the order header.
	// Returns ErrOrderNotFound when no such order exists.
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error
}
