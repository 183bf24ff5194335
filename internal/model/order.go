package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a sale placed for a client by a back-office user.
type Order struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	ClientID    uint            `json:"client_id" gorm:"not null;index"`
	UserID      uint            `json:"user_id" gorm:"not null;index"`
	Status      string          `json:"status" gorm:"size:20;not null;index"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relations
	Client Client      `json:"-" gorm:"foreignKey:ClientID"`
	User   User        `json:"-" gorm:"foreignKey:UserID"`
	Items  []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}
