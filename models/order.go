package models

import "time"

type OrderStatus string

const (
	// Rental order lifecycle
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by staff
	OrderStatusActive    OrderStatus = "active"    // Equipment handed over / delivered
	OrderStatusReturned  OrderStatus = "returned"  // Equipment returned
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before the rental started
)

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	OrderRef        string      `gorm:"uniqueIndex" json:"order_ref"`
	UserID          uint        `gorm:"not null;index" json:"user_id"`
	User            User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	IsDelivery      bool        `json:"is_delivery"`
	DeliveryName    string      `json:"delivery_name"`
	DeliveryPhone   string      `json:"delivery_phone"`
	DeliveryAddress string      `json:"delivery_address"`
	City            string      `json:"city"`
	ZipCode         string      `json:"zip_code"`
	StartDate       time.Time   `gorm:"not null" json:"start_date"`
	EndDate         time.Time   `gorm:"not null" json:"end_date"`
	TotalPrice      float64     `json:"total_price"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
}

// OrderItem snapshots quantity and unit price as they stood at checkout.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}
