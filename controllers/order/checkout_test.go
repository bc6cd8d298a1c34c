package orderControllers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/eya415/RentHub/models"
	"github.com/eya415/RentHub/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Brand{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

type testEnv struct {
	db       *gorm.DB
	carts    repository.CartRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
}

func newTestEnv(t *testing.T) *testEnv {
	db := newTestDB(t)
	return &testEnv{
		db:       db,
		carts:    repository.NewCartRepository(db),
		products: repository.NewProductRepository(db),
		orders:   repository.NewOrderRepository(db),
	}
}

func (e *testEnv) seedProduct(t *testing.T, id uint, price float64) models.Product {
	t.Helper()
	product := models.Product{ID: id, Name: fmt.Sprintf("Camera %d", id), Price: price}
	require.NoError(t, e.db.Create(&product).Error)
	return product
}

func (e *testEnv) seedCartItem(t *testing.T, userID uint, productID uint, quantity int, unitPrice float64) {
	t.Helper()
	item := models.CartItem{
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		RentalDays: 1,
	}
	require.NoError(t, e.carts.SaveItem(context.Background(), userID, &item))
}

func TestPlaceRentalOrderComputesTotal(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, 7, 50.00)
	env.seedCartItem(t, 1, 7, 2, 50.00)

	order, err := PlaceRentalOrder(context.Background(), env.db, env.carts, env.products, env.orders, 1, CheckoutRequest{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-03",
	})
	require.NoError(t, err)

	// two rental days, qty 2, 50.00/day
	assert.Equal(t, 200.00, order.TotalPrice)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	var items []models.OrderItem
	require.NoError(t, env.db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, uint(7), items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 50.00, items[0].UnitPrice)

	// persisted total matches the sum of line totals
	var persisted models.Order
	require.NoError(t, env.db.First(&persisted, order.ID).Error)
	assert.Equal(t, 200.00, persisted.TotalPrice)
}

func TestPlaceRentalOrderClearsCart(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, 1, 10.00)
	env.seedCartItem(t, 1, 1, 1, 10.00)

	_, err := PlaceRentalOrder(context.Background(), env.db, env.carts, env.products, env.orders, 1, CheckoutRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-02",
	})
	require.NoError(t, err)

	cart, err := env.carts.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestRentalDaysBetween(t *testing.T) {
	date := func(s string) time.Time {
		d, err := time.Parse(rentalDateLayout, s)
		require.NoError(t, err)
		return d
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same day clamps to one", "2024-01-01", "2024-01-01", 1},
		{"three day span", "2024-01-01", "2024-01-04", 3},
		{"single day", "2024-01-01", "2024-01-02", 1},
		{"end before start clamps to one", "2024-01-05", "2024-01-01", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rentalDaysBetween(date(tt.start), date(tt.end)))
		})
	}
}

func TestPlaceRentalOrderSameDayBillsOneDay(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, 3, 25.00)
	env.seedCartItem(t, 1, 3, 1, 25.00)

	order, err := PlaceRentalOrder(context.Background(), env.db, env.carts, env.products, env.orders, 1, CheckoutRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 25.00, order.TotalPrice)
}

func TestPlaceRentalOrderSkipsDeletedProduct(t *testing.T) {
	env := newTestEnv(t)
	kept := env.seedProduct(t, 1, 30.00)
	gone := env.seedProduct(t, 2, 99.00)
	env.seedCartItem(t, 1, kept.ID, 1, 30.00)
	env.seedCartItem(t, 1, gone.ID, 1, 99.00)

	require.NoError(t, env.db.Delete(&gone).Error)

	before := SkippedItemCount()
	order, err := PlaceRentalOrder(context.Background(), env.db, env.carts, env.products, env.orders, 1, CheckoutRequest{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-02",
	})
	require.NoError(t, err)

	var items []models.OrderItem
	require.NoError(t, env.db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, kept.ID, items[0].ProductID)
	assert.Equal(t, 30.00, order.TotalPrice)
	assert.Equal(t, before+1, SkippedItemCount())
}

func TestPlaceRentalOrderInvalidDates(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, 1, 10.00)
	env.seedCartItem(t, 1, 1, 2, 10.00)

	for _, req := range []CheckoutRequest{
		{StartDate: "not-a-date", EndDate: "2024-01-02"},
		{StartDate: "2024-01-01", EndDate: "02/01/2024"},
		{StartDate: "", EndDate: "2024-01-02"},
	} {
		_, err := PlaceRentalOrder(context.Background(), env.db, env.carts, env.products, env.orders, 1, req)
		assert.ErrorIs(t, err, ErrInvalidDates)
	}

	// no order rows, cart untouched
	var orderCount int64
	require.NoError(t, env.db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)

	cart, err := env.carts.Get(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestPlaceRentalOrderEmptyCart(t *testing.T) {
	env := newTestEnv(t)

	_, err := PlaceRentalOrder(context.Background(), env.db, env.carts, env.products, env.orders, 1, CheckoutRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-02",
	})
	assert.ErrorIs(t, err, ErrEmptyCart)

	var orderCount int64
	require.NoError(t, env.db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)
}

func TestPlaceRentalOrderDeliveryFields(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, 1, 15.00)
	env.seedCartItem(t, 1, 1, 1, 15.00)

	order, err := PlaceRentalOrder(context.Background(), env.db, env.carts, env.products, env.orders, 1, CheckoutRequest{
		StartDate:      "2024-02-01",
		EndDate:        "2024-02-05",
		DeliveryOption: "delivery",
		FullName:       "Sara Adel",
		Phone:          "0100000000",
		Address:        "12 Tahrir St",
		City:           "Cairo",
		ZipCode:        "11511",
	})
	require.NoError(t, err)
	assert.True(t, order.IsDelivery)
	assert.Equal(t, "Sara Adel", order.DeliveryName)
	assert.Equal(t, "Cairo", order.City)

	// pickup orders leave the contact fields blank
	env.seedCartItem(t, 2, 1, 1, 15.00)
	pickup, err := PlaceRentalOrder(context.Background(), env.db, env.carts, env.products, env.orders, 2, CheckoutRequest{
		StartDate:      "2024-02-01",
		EndDate:        "2024-02-05",
		DeliveryOption: "pickup",
		FullName:       "Sara Adel",
	})
	require.NoError(t, err)
	assert.False(t, pickup.IsDelivery)
	assert.Empty(t, pickup.DeliveryName)
}

func TestPlaceRentalOrderSnapshotImmuneToPriceChange(t *testing.T) {
	env := newTestEnv(t)
	product := env.seedProduct(t, 1, 40.00)
	env.seedCartItem(t, 1, product.ID, 1, 40.00)

	order, err := PlaceRentalOrder(context.Background(), env.db, env.carts, env.products, env.orders, 1, CheckoutRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-03",
	})
	require.NoError(t, err)
	require.Equal(t, 80.00, order.TotalPrice)

	// raising the catalog price afterwards must not touch the order
	require.NoError(t, env.db.Model(&models.Product{}).Where("id = ?", product.ID).Update("price", 400.00).Error)

	var persisted models.Order
	require.NoError(t, env.db.Preload("Items").First(&persisted, order.ID).Error)
	assert.Equal(t, 80.00, persisted.TotalPrice)
	require.Len(t, persisted.Items, 1)
	assert.Equal(t, 40.00, persisted.Items[0].UnitPrice)
}

func newCheckoutRouter(env *testEnv, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})
	r.POST("/user/checkout", CheckoutHandler(env.db, env.carts, env.products, env.orders))
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutHandlerRedirectsToOrders(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, 1, 20.00)
	env.seedCartItem(t, 1, 1, 1, 20.00)

	w := postForm(newCheckoutRouter(env, 1), "/user/checkout", url.Values{
		"start_date":      {"2024-03-01"},
		"end_date":        {"2024-03-03"},
		"delivery_option": {"pickup"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/user/orders")

	var orderCount int64
	require.NoError(t, env.db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Equal(t, int64(1), orderCount)
}

func TestCheckoutHandlerBadDatesRedirectsBack(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, 1, 20.00)
	env.seedCartItem(t, 1, 1, 1, 20.00)

	w := postForm(newCheckoutRouter(env, 1), "/user/checkout", url.Values{
		"start_date": {"not-a-date"},
		"end_date":   {"2024-03-03"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/user/checkout")

	var orderCount int64
	require.NoError(t, env.db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)
}

func TestCheckoutHandlerBadDeliveryOptionMessage(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, 1, 20.00)
	env.seedCartItem(t, 1, 1, 1, 20.00)

	w := postForm(newCheckoutRouter(env, 1), "/user/checkout", url.Values{
		"start_date":      {"2024-03-01"},
		"end_date":        {"2024-03-03"},
		"delivery_option": {"teleport"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	location := w.Header().Get("Location")
	assert.Contains(t, location, "/user/checkout")
	// the flash names the delivery option, not the dates
	assert.Contains(t, location, "delivery+option")
	assert.NotContains(t, location, "rental+dates")
}

func TestCheckoutHandlerEmptyCartRedirectsToCart(t *testing.T) {
	env := newTestEnv(t)

	w := postForm(newCheckoutRouter(env, 1), "/user/checkout", url.Values{
		"start_date": {"2024-03-01"},
		"end_date":   {"2024-03-03"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/user/cart")
}
