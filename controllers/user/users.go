package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/eya415/RentHub/models"
	"gorm.io/gorm"
)

type UpdateUserInput struct {
	Email *string `json:"email"`
}

// GET /user — the signed-in account with its profile document row.
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		var user models.User
		if err := db.Preload("Cart.Items").Preload("Orders").First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		resp := gin.H{"user": user}
		switch user.AccountType {
		case models.AccountTypeIndividual:
			var profile models.IndividualProfile
			if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
				resp["profile"] = profile
			}
		case models.AccountTypeCorporate:
			var profile models.CorporateProfile
			if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
				resp["profile"] = profile
			}
		case models.AccountTypeStudio:
			var profile models.StudioProfile
			if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
				resp["profile"] = profile
			}
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "username", "email", "account_type", "created_at").
			Order("created_at desc").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// PUT /user
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Email != nil {
			updates["email"] = *input.Email
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
				return
			}
		}

		c.JSON(http.StatusOK, user)
	}
}
