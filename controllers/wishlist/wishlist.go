package wishlistControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/eya415/RentHub/models"
	"gorm.io/gorm"
)

// GET /user/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		var items []models.WishlistItem
		if err := db.Preload("Product").
			Where("user_id = ?", userID).
			Order("added_at DESC").
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /user/wishlist/:product_id — idempotent: re-adding an item reports
// that it is already there instead of duplicating it.
func AddToWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, uint(productID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		var item models.WishlistItem
		err = db.Where("user_id = ? AND product_id = ?", userID, product.ID).First(&item).Error
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"message": "Item is already in your wishlist."})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}

		item = models.WishlistItem{UserID: userID, ProductID: product.ID}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to wishlist"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Item added successfully ✅", "item": item})
	}
}

// DELETE /user/wishlist/:item_id
func RemoveFromWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		itemID := c.Param("item_id")
		result := db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.WishlistItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from your wishlist."})
	}
}
