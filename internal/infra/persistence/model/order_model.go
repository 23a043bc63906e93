package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Order IDs are generated by the
// application so the tracking URL exists before the insert commits.
type OrderModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	Status          string    `gorm:"type:varchar(20);not null;index"`
	CustomerName    string    `gorm:"type:varchar(100);not null"`
	CustomerPhone   string    `gorm:"type:varchar(20);not null"`
	CustomerAddress string    `gorm:"type:text;not null"`
	TotalAmount     float64   `gorm:"type:numeric(10,2);not null"`
	UserID          uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. A line is identified by
// (order_id, product_id) since the cart holds at most one line per product.
type OrderItemModel struct {
	OrderID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductName         string    `gorm:"type:varchar(100);not null"`
	Price               float64   `gorm:"type:numeric(10,2);not null"`
	Quantity            int       `gorm:"not null"`
	SpecialInstructions string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
