package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/eya415/RentHub/models"
	"github.com/eya415/RentHub/repository"
	"gorm.io/gorm"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusActive):
		return models.OrderStatusActive, nil
	case string(models.OrderStatusReturned):
		return models.OrderStatusReturned, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// GET /user/orders — the signed-in user's rental history, newest first.
func MyOrdersHandler(orders repository.OrderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		list, err := orders.ListByUser(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"orders":  list,
			"message": c.Query("message"),
		})
	}
}

// GET /user/orders/:orderID
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		param := c.Param("orderID")
		query := db.Preload("Items").Where("user_id = ?", userID)
		// Accept a numeric id or an order_ref. The id column is an integer,
		// so a ref only ever compares against order_ref.
		if id, err := strconv.ParseUint(param, 10, 64); err == nil {
			query = query.Where("id = ?", id)
		} else {
			query = query.Where("order_ref = ?", param)
		}

		var order models.Order
		if err := query.First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// DELETE /admin/orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Where("id = ?", orderID).
				Delete(&models.Order{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
