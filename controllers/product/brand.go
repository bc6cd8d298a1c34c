package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/eya415/RentHub/models"
	"gorm.io/gorm"
)

func CreateBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		brand := models.Brand{
			Name: name,
			Logo: c.PostForm("logo"),
		}
		if err := db.Create(&brand).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create brand"})
			return
		}
		c.JSON(http.StatusCreated, brand)
	}
}

// GetAllBrands returns all brands.
func GetAllBrands(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var brands []models.Brand
		if err := db.Find(&brands).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brands"})
			return
		}
		c.JSON(http.StatusOK, brands)
	}
}

func UpdateBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var brand models.Brand
		if err := db.First(&brand, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			brand.Name = v
		}
		if v := c.PostForm("logo"); v != "" {
			brand.Logo = v
		}

		if err := db.Save(&brand).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update brand"})
			return
		}
		c.JSON(http.StatusOK, brand)
	}
}

func DeleteBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var brand models.Brand
		if err := db.Preload("Products").First(&brand, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
			return
		}
		if len(brand.Products) > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Brand still has products"})
			return
		}

		if err := db.Delete(&brand).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete brand"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Brand deleted successfully"})
	}
}
