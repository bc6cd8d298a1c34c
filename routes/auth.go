package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/eya415/RentHub/auth"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, jwtSecret string) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(db, jwtSecret))
		authGroup.POST("/login", auth.LoginHandler(db, jwtSecret))
	}
}
