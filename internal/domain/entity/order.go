package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is a line of a placed order, snapshotted from the cart at
// checkout time. It never tracks later product edits.
type OrderItem struct {
	OrderID             uuid.UUID `json:"orderId"`
	ProductID           uuid.UUID `json:"productId"`
	ProductName         string    `json:"productName"`
	Price               float64   `json:"price"`
	Quantity            int       `json:"quantity"`
	SpecialInstructions string    `json:"specialInstructions,omitempty"`
}

// Order is the checked-out aggregate. Everything except Status and UpdatedAt
// is immutable once created. TotalAmount equals the sum of price*quantity
// over Items as computed at creation time.
type Order struct {
	ID              uuid.UUID   `json:"id"`
	Items           []OrderItem `json:"items"`
	Status          OrderStatus `json:"status"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerAddress string      `json:"customerAddress"`
	TotalAmount     float64     `json:"totalAmount"`
	UserID          uuid.UUID   `json:"userId"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}
