package models

import (
	"time"

	"gorm.io/gorm"
)

type Brand struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"unique;not null" json:"name"`
	Logo     string `json:"logo"`
	Products []Product `gorm:"foreignKey:BrandID" json:"products,omitempty"`
}

type Category struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"unique;not null" json:"name"`
	IconClass string `json:"icon_class"`
	Products  []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `gorm:"not null" json:"price"` // daily rental rate
	BrandID     uint    `gorm:"index" json:"brand_id"`
	Brand       Brand   `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	CategoryID  uint    `gorm:"index" json:"category_id"`
	Category    Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
