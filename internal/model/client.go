package model

import "time"

// Client represents a customer that places orders.
type Client struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:64;not null;index"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:128;not null"`
	Phone     *string   `json:"phone" gorm:"uniqueIndex;size:20"`
	CpfCnpj   string    `json:"cpf_cnpj" gorm:"uniqueIndex;size:20;not null"`
	Address   string    `json:"address" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Orders []Order `json:"-" gorm:"foreignKey:ClientID"`
}
