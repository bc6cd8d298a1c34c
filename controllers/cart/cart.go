package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/eya415/RentHub/models"
	"github.com/eya415/RentHub/repository"
	"gorm.io/gorm"
)

type CartItemInput struct {
	ProductID  uint `json:"product_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"omitempty,min=1"`
	RentalDays int  `json:"rental_days" binding:"omitempty,min=1"`
}

// POST /user/cart — add a product, snapshotting its current daily rate.
// Adding a product already in the cart bumps its quantity.
func AddToCart(db *gorm.DB, carts repository.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}
		if input.RentalDays == 0 {
			input.RentalDays = 1
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		cart, err := carts.Get(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		item := models.CartItem{
			ProductID:  product.ID,
			Quantity:   input.Quantity,
			UnitPrice:  product.Price, // snapshot at add-to-cart time
			RentalDays: input.RentalDays,
		}
		for _, existing := range cart.Items {
			if existing.ProductID == product.ID {
				item.Quantity = existing.Quantity + input.Quantity
				item.RentalDays = existing.RentalDays
				break
			}
		}

		if err := carts.SaveItem(c.Request.Context(), userID, &item); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

type UpdateCartItemInput struct {
	// Pointer so an explicit zero survives the required check; zero means
	// "remove this line".
	Quantity   *int `json:"quantity" binding:"required"`
	RentalDays int  `json:"rental_days" binding:"omitempty,min=1"`
}

// PUT /user/cart/:product_id — set the quantity outright; zero or less
// removes the line, matching the storefront's cart form.
func UpdateCartItem(carts repository.CartRepository) gin.HandlerFunc {
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

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if *input.Quantity <= 0 {
			if err := carts.RemoveItem(c.Request.Context(), userID, uint(productID)); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Item removed from your cart."})
			return
		}

		cart, err := carts.Get(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		for _, existing := range cart.Items {
			if existing.ProductID == uint(productID) {
				item := existing
				item.Quantity = *input.Quantity
				if input.RentalDays > 0 {
					item.RentalDays = input.RentalDays
				}
				if err := carts.SaveItem(c.Request.Context(), userID, &item); err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
					return
				}
				c.JSON(http.StatusOK, item)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
	}
}

// DELETE /user/cart/:product_id
func RemoveFromCart(carts repository.CartRepository) gin.HandlerFunc {
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

		if err := carts.RemoveItem(c.Request.Context(), userID, uint(productID)); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from your cart."})
	}
}

// DELETE /user/cart
func ClearCart(carts repository.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		if err := carts.Clear(c.Request.Context(), userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Your cart has been cleared."})
	}
}

// GET /user/cart — cart lines with per-line subtotals. Lines whose product
// has been deleted are left out of the view.
func GetCart(db *gorm.DB, carts repository.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		cart, err := carts.Get(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		type cartLine struct {
			Product    models.Product `json:"product"`
			Quantity   int            `json:"quantity"`
			RentalDays int            `json:"rental_days"`
			UnitPrice  float64        `json:"unit_price"`
			Subtotal   float64        `json:"subtotal"`
		}

		var lines []cartLine
		var total float64
		for _, item := range cart.Items {
			var product models.Product
			if err := db.First(&product, item.ProductID).Error; err != nil {
				continue
			}
			subtotal := item.UnitPrice * float64(item.Quantity) * float64(item.RentalDays)
			total += subtotal
			lines = append(lines, cartLine{
				Product:    product,
				Quantity:   item.Quantity,
				RentalDays: item.RentalDays,
				UnitPrice:  item.UnitPrice,
				Subtotal:   subtotal,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"cart_items": lines,
			"total":      total,
			"message":    c.Query("message"),
		})
	}
}
