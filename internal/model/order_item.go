package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem links a product to an order with the price charged at sale time.
// The (order, product) pair is unique: quantity changes update the row.
type OrderItem struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	OrderID       uint            `json:"order_id" gorm:"not null;uniqueIndex:uq_order_product"`
	ProductID     uint            `json:"product_id" gorm:"not null;uniqueIndex:uq_order_product"`
	Quantity      int             `json:"quantity" gorm:"not null;default:1"`
	PriceAtMoment decimal.Decimal `json:"price_at_moment" gorm:"type:decimal(10,2);not null"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Relations
	Order   Order   `json:"-" gorm:"foreignKey:OrderID"`
	Product Product `json:"-" gorm:"foreignKey:ProductID"`
}
