package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/eya415/RentHub/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ImportProductsFromExcel bulk loads the rental catalog from a spreadsheet.
// Columns: ID, Name, Description, Price, BrandID, CategoryID, Image.
// Rows with an existing ID update that product; the rest insert.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			description := get(2)
			price, priceErr := strconv.ParseFloat(get(3), 64)
			brandID, _ := strconv.Atoi(get(4))
			categoryID, _ := strconv.Atoi(get(5))
			image := get(6)

			if name == "" || priceErr != nil {
				skippedCount++
				continue
			}

			product := models.Product{
				Name:        name,
				Description: description,
				Price:       price,
				BrandID:     uint(brandID),
				CategoryID:  uint(categoryID),
				Image:       image,
			}

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Product
					if err := db.First(&existing, id).Error; err == nil {
						existing.Name = product.Name
						existing.Description = product.Description
						existing.Price = product.Price
						existing.BrandID = product.BrandID
						existing.CategoryID = product.CategoryID
						existing.Image = product.Image

						if err := db.Save(&existing).Error; err == nil {
							updatedCount++
							continue
						}
					}
				}
			}

			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}

func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Brand").Preload("Category").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Description", "Price", "BrandID", "CategoryID",
			"Image", "Brand", "Category", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.BrandID)
			row.AddCell().SetValue(p.CategoryID)
			row.AddCell().SetValue(p.Image)
			row.AddCell().SetValue(p.Brand.Name)
			row.AddCell().SetValue(p.Category.Name)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
