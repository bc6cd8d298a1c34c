package models

import "time"

// WishlistItem is unique per user+product to prevent duplicate entries.
type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_wishlist_user_product" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	AddedAt   time.Time `gorm:"autoCreateTime" json:"added_at"`
}
