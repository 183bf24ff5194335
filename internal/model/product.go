package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog item available for sale.
type Product struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	Name           string          `json:"name" gorm:"size:255;not null;index"`
	Description    string          `json:"description" gorm:"type:text"`
	Price          decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Barcode        string          `json:"barcode" gorm:"uniqueIndex;size:50"`
	Section        string          `json:"section" gorm:"size:100;index"`
	Stock          int             `json:"stock" gorm:"not null;default:0"`
	ExpirationDate *time.Time      `json:"expiration_date"`
	ImageURL       string          `json:"image_url" gorm:"type:text"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
