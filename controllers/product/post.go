package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/eya415/RentHub/models"
	"gorm.io/gorm"
)

// uploadRoot resolves the local uploads directory served under /uploads.
func uploadRoot() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// CreateProduct creates a new catalog product with an image upload.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		// Optional fields
		description := c.PostForm("description")
		brandIDStr := c.PostForm("brand_id")
		categoryIDStr := c.PostForm("category_id")

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		var brandID, categoryID uint
		if brandIDStr != "" {
			id64, parseErr := strconv.ParseUint(brandIDStr, 10, 64)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand_id"})
				return
			}
			var brand models.Brand
			if err := db.First(&brand, uint(id64)).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Brand does not exist"})
				return
			}
			brandID = brand.ID
		}
		if categoryIDStr != "" {
			id64, parseErr := strconv.ParseUint(categoryIDStr, 10, 64)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			var category models.Category
			if err := db.First(&category, uint(id64)).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			categoryID = category.ID
		}

		// Image upload
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}
		saveDir := filepath.Join(uploadRoot(), "products")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to create upload folder: %v", err)})
			return
		}

		ext := filepath.Ext(file.Filename)
		base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
		base = strings.ReplaceAll(base, " ", "_")
		filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
		savePath := filepath.Join(saveDir, filename)

		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", err)})
			return
		}

		product := models.Product{
			Name:        name,
			Description: description,
			Price:       price,
			BrandID:     brandID,
			CategoryID:  categoryID,
			Image:       fmt.Sprintf("/uploads/products/%s", filename),
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
