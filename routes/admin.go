package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/eya415/RentHub/controllers/order"
	productControllers "github.com/eya415/RentHub/controllers/product"
	userControllers "github.com/eya415/RentHub/controllers/user"
	"github.com/eya415/RentHub/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, adminKey string) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(adminKey))
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(db))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(db))
			productAdmin.GET("", productControllers.GetProducts(db))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(db))
			productAdmin.POST("/import-excel", productControllers.ImportProductsFromExcel(db))
			productAdmin.GET("/export-excel", productControllers.ExportProductsToExcel(db))
		}

		// ─────────── Brand & Category Management ───────────
		brandAdmin := adminGroup.Group("/brands")
		{
			brandAdmin.POST("", productControllers.CreateBrand(db))
			brandAdmin.PUT("/:id", productControllers.UpdateBrand(db))
			brandAdmin.GET("", productControllers.GetAllBrands(db))
			brandAdmin.DELETE("/:id", productControllers.DeleteBrand(db))
		}
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productControllers.CreateCategory(db))
			categoryAdmin.PUT("/:id", productControllers.UpdateCategory(db))
			categoryAdmin.GET("", productControllers.GetAllCategories(db))
			categoryAdmin.DELETE("/:id", productControllers.DeleteCategory(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
		}

		// websocket endpoint for real-time order updates
		adminGroup.GET("/orders/ws", orderControllers.OrderWebSocketHandler)
	}
}
