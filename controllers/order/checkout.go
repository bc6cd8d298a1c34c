package orderControllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/eya415/RentHub/models"
	"github.com/eya415/RentHub/repository"
	"gorm.io/gorm"
)

const rentalDateLayout = "2006-01-02"

var (
	ErrInvalidDates = errors.New("invalid rental dates")
	ErrEmptyCart    = errors.New("cart is empty")
)

// skippedItems counts cart lines dropped because their product no longer
// exists in the catalog. The lines are skipped on purpose, but the signal
// should not be lost.
var skippedItems atomic.Int64

// SkippedItemCount reports how many cart lines have been dropped at checkout
// since startup.
func SkippedItemCount() int64 {
	return skippedItems.Load()
}

type CheckoutRequest struct {
	StartDate      string `form:"start_date" binding:"required,rentaldate"`
	EndDate        string `form:"end_date" binding:"required,rentaldate"`
	DeliveryOption string `form:"delivery_option" binding:"omitempty,oneof=pickup delivery"`
	FullName       string `form:"full_name"`
	Phone          string `form:"phone"`
	Address        string `form:"address"`
	City           string `form:"city"`
	ZipCode        string `form:"zip_code"`
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("rentaldate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(rentalDateLayout, fl.Field().String())
			return err == nil
		})
	}
}

// generateOrderRef returns a unique order reference, e.g. 20250908130500-<uuid>.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// rentalDaysBetween is the day span between the two dates, clamped to 1 so a
// same-day rental is still billed for one day.
func rentalDaysBetween(start, end time.Time) int {
	days := int(end.Sub(start).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// PlaceRentalOrder converts the user's cart plus a rental date range into a
// persisted Order with snapshotted line items.
//
// On bad dates it fails with ErrInvalidDates before any mutation. A cart line
// whose product has been deleted is skipped, not an error, so one stale line
// cannot block the rest of the checkout. The cart is cleared only after the
// order transaction commits; a crash in between re-offers the cart on retry
// instead of losing the order.
func PlaceRentalOrder(
	ctx context.Context,
	db *gorm.DB,
	carts repository.CartRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	userID uint,
	req CheckoutRequest,
) (*models.Order, error) {
	start, err := time.Parse(rentalDateLayout, req.StartDate)
	if err != nil {
		return nil, ErrInvalidDates
	}
	end, err := time.Parse(rentalDateLayout, req.EndDate)
	if err != nil {
		return nil, ErrInvalidDates
	}

	cart, err := carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	rentalDays := rentalDaysBetween(start, end)

	order := models.Order{
		UserID:    userID,
		OrderRef:  generateOrderRef(),
		StartDate: start,
		EndDate:   end,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now(),
	}
	if req.DeliveryOption == "delivery" {
		order.IsDelivery = true
		order.DeliveryName = req.FullName
		order.DeliveryPhone = req.Phone
		order.DeliveryAddress = req.Address
		order.City = req.City
		order.ZipCode = req.ZipCode
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		// The shell goes in first with a zero total so line items have an
		// order ID to reference.
		if err := orders.Create(ctx, tx, &order); err != nil {
			return err
		}

		var total float64
		for _, item := range cart.Items {
			if _, err := products.Get(ctx, item.ProductID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					skippedItems.Add(1)
					log.Printf("ℹ️ checkout: product %d no longer exists, line skipped (order %s)",
						item.ProductID, order.OrderRef)
					continue
				}
				return err
			}

			quantity := item.Quantity
			if quantity < 1 {
				quantity = 1
			}

			total += item.UnitPrice * float64(quantity) * float64(rentalDays)

			orderItem := models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  quantity,
				UnitPrice: item.UnitPrice,
			}
			if err := orders.CreateItem(ctx, tx, &orderItem); err != nil {
				return err
			}
			order.Items = append(order.Items, orderItem)
		}

		if err := orders.UpdateTotal(ctx, tx, order.ID, total); err != nil {
			return err
		}
		order.TotalPrice = total
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Cart clearing is deliberately the last step.
	if err := carts.Clear(ctx, userID); err != nil {
		return nil, err
	}

	return &order, nil
}

// POST /user/checkout
func CheckoutHandler(db *gorm.DB, carts repository.CartRepository, products repository.ProductRepository, orders repository.OrderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		var req CheckoutRequest
		if err := c.ShouldBind(&req); err != nil {
			redirectWithFlash(c, "/user/checkout", "error", bindErrorMessage(err))
			return
		}

		order, err := PlaceRentalOrder(c.Request.Context(), db, carts, products, orders, userID, req)
		switch {
		case errors.Is(err, ErrInvalidDates):
			redirectWithFlash(c, "/user/checkout", "error", "Invalid rental dates.")
		case errors.Is(err, ErrEmptyCart):
			redirectWithFlash(c, "/user/cart", "error", "Your cart is empty.")
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		default:
			broadcastNewOrder(*order)
			redirectWithFlash(c, "/user/orders", "message", "Your order has been placed!")
		}
	}
}

// GET /user/checkout — cart summary with per-line subtotals, shown before the
// user picks rental dates and a delivery option.
func CheckoutSummaryHandler(carts repository.CartRepository, products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		cart, err := carts.Get(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		type checkoutLine struct {
			Product    models.Product `json:"product"`
			Quantity   int            `json:"quantity"`
			RentalDays int            `json:"rental_days"`
			UnitPrice  float64        `json:"unit_price"`
			Subtotal   float64        `json:"subtotal"`
		}

		var lines []checkoutLine
		var subtotal float64
		for _, item := range cart.Items {
			product, err := products.Get(c.Request.Context(), item.ProductID)
			if err != nil {
				continue
			}
			lineTotal := item.UnitPrice * float64(item.Quantity) * float64(item.RentalDays)
			subtotal += lineTotal
			lines = append(lines, checkoutLine{
				Product:    *product,
				Quantity:   item.Quantity,
				RentalDays: item.RentalDays,
				UnitPrice:  item.UnitPrice,
				Subtotal:   lineTotal,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"cart_items": lines,
			"subtotal":   subtotal,
			"total":      subtotal,
		})
	}
}

func redirectWithFlash(c *gin.Context, path, key, msg string) {
	c.Redirect(http.StatusSeeOther, path+"?"+key+"="+url.QueryEscape(msg))
}

// bindErrorMessage names the form field that failed so a bad delivery option
// is not reported as a date problem.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "DeliveryOption" {
				return "Invalid delivery option."
			}
		}
	}
	return "Invalid rental dates."
}
