package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/eya415/RentHub/config"
	"github.com/eya415/RentHub/repository"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public, user and
// admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	carts := repository.NewCartRepository(db)
	products := repository.NewProductRepository(db)
	orders := repository.NewOrderRepository(db)

	// Public auth + catalog browsing (no middleware)
	SetupAuthRoutes(r, db, cfg.JWTSecret)
	SetupCatalogRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db, cfg.JWTSecret, carts, products, orders)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db, cfg.AdminKey)
}
