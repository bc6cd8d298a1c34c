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

// UpdateProduct updates an existing product by ID.
// Accepts the same fields as CreateProduct and an optional "image" file.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("price"); v != "" {
			if f, parseErr := strconv.ParseFloat(v, 64); parseErr == nil {
				product.Price = f
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
		}
		if v := c.PostForm("brand_id"); v != "" {
			if id64, parseErr := strconv.ParseUint(v, 10, 64); parseErr == nil {
				product.BrandID = uint(id64)
			}
		}
		if v := c.PostForm("category_id"); v != "" {
			if id64, parseErr := strconv.ParseUint(v, 10, 64); parseErr == nil {
				product.CategoryID = uint(id64)
			}
		}

		// Handle optional image upload
		file, err := c.FormFile("image")
		if err == nil {
			saveDir := filepath.Join(uploadRoot(), "products")
			if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
				return
			}

			ext := filepath.Ext(file.Filename)
			base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
			base = strings.ReplaceAll(base, " ", "_")
			filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
			savePath := filepath.Join(saveDir, filename)

			if err := c.SaveUploadedFile(file, savePath); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			product.Image = fmt.Sprintf("/uploads/products/%s", filename)
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
