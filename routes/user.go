package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/eya415/RentHub/controllers/cart"
	orderControllers "github.com/eya415/RentHub/controllers/order"
	paymentControllers "github.com/eya415/RentHub/controllers/payment"
	userControllers "github.com/eya415/RentHub/controllers/user"
	wishlistControllers "github.com/eya415/RentHub/controllers/wishlist"
	"github.com/eya415/RentHub/middleware"
	"github.com/eya415/RentHub/repository"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, jwtSecret string, carts repository.CartRepository, products repository.ProductRepository, orders repository.OrderRepository) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(jwtSecret))
	{
		// ──────────────── Account ────────────────
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateUser(db))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(db, carts))
			cartGroup.POST("/", cartControllers.AddToCart(db, carts))
			cartGroup.PUT("/:product_id", cartControllers.UpdateCartItem(carts))
			cartGroup.DELETE("/:product_id", cartControllers.RemoveFromCart(carts))
			cartGroup.DELETE("/", cartControllers.ClearCart(carts))
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", wishlistControllers.GetWishlist(db))
			wishlistGroup.POST("/:product_id", wishlistControllers.AddToWishlist(db))
			wishlistGroup.DELETE("/:item_id", wishlistControllers.RemoveFromWishlist(db))
		}

		// ──────────────── Checkout & Orders ────────────────
		userGroup.GET("/checkout", orderControllers.CheckoutSummaryHandler(carts, products))
		userGroup.POST("/checkout", orderControllers.CheckoutHandler(db, carts, products, orders))
		userGroup.GET("/orders", orderControllers.MyOrdersHandler(orders))
		userGroup.GET("/orders/:orderID", orderControllers.GetOrderByIDHandler(db))

		// Payment placeholder
		userGroup.POST("/place-order", paymentControllers.PlaceOrderHandler())
	}
}
