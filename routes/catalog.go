package routes

import (
	"github.com/gin-gonic/gin"
	productControllers "github.com/eya415/RentHub/controllers/product"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers the public storefront browsing endpoints:
// the gallery with its search/brand/category filters, product detail,
// and the brand/category lists used to build filter menus.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productControllers.GetProducts(db))
	r.GET("/products/:id", productControllers.GetProductByID(db))
	r.GET("/brands", productControllers.GetAllBrands(db))
	r.GET("/categories", productControllers.GetAllCategories(db))
	r.GET("/categories-with-products", productControllers.GetAllCategoriesWithProducts(db))
}
