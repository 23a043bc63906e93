package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:numeric(10,2);not null"`
	ImageURL    string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(50);not null;index"`
	Available   bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
