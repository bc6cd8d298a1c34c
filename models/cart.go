package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    uint       `gorm:"uniqueIndex" json:"user_id"` // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem keeps the unit price as it stood when the product was added.
// Later catalog price changes never touch carts or the orders built from them.
type CartItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CartID     uint      `gorm:"index" json:"cart_id"`
	ProductID  uint      `gorm:"index" json:"product_id"`
	Quantity   int       `gorm:"default:1" json:"quantity"`
	UnitPrice  float64   `json:"unit_price"`
	RentalDays int       `gorm:"default:1" json:"rental_days"`
	AddedAt    time.Time `json:"added_at"`
}
