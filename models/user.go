package models

import "time"

type AccountType string

const (
	AccountTypeIndividual AccountType = "individual"
	AccountTypeCorporate  AccountType = "corporate"
	AccountTypeStudio     AccountType = "studio"
)

type User struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Username      string      `gorm:"unique;not null" json:"username"`
	Email         string      `gorm:"unique;not null" json:"email"`
	PasswordHash  string      `gorm:"not null" json:"-"`
	AccountType   AccountType `gorm:"type:VARCHAR(20);default:'individual'" json:"account_type"`
	Cart          Cart        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart,omitempty"`
	Orders        []Order     `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	WishlistItems []WishlistItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"wishlist_items,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}
