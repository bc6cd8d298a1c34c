package cartControllers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

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
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
	))
	return db
}

func newCartRouter(carts repository.CartRepository, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})
	r.PUT("/user/cart/:product_id", UpdateCartItem(carts))
	return r
}

func putJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedCartItem(t *testing.T, carts repository.CartRepository, userID uint, productID uint) {
	t.Helper()
	item := models.CartItem{
		ProductID:  productID,
		Quantity:   2,
		UnitPrice:  10.00,
		RentalDays: 1,
	}
	require.NoError(t, carts.SaveItem(context.Background(), userID, &item))
}

func TestUpdateCartItemZeroQuantityRemovesLine(t *testing.T) {
	carts := repository.NewCartRepository(newTestDB(t))
	seedCartItem(t, carts, 1, 1)

	// the storefront cart form sends quantity 0 to drop a line
	w := putJSON(newCartRouter(carts, 1), "/user/cart/1", `{"quantity":0}`)
	assert.Equal(t, http.StatusOK, w.Code)

	cart, err := carts.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestUpdateCartItemMissingQuantityRejected(t *testing.T) {
	carts := repository.NewCartRepository(newTestDB(t))
	seedCartItem(t, carts, 1, 1)

	w := putJSON(newCartRouter(carts, 1), "/user/cart/1", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	cart, err := carts.Get(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestUpdateCartItemSetsQuantity(t *testing.T) {
	carts := repository.NewCartRepository(newTestDB(t))
	seedCartItem(t, carts, 1, 1)

	w := putJSON(newCartRouter(carts, 1), "/user/cart/1", `{"quantity":5}`)
	assert.Equal(t, http.StatusOK, w.Code)

	cart, err := carts.Get(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	// the price snapshot survives a quantity change
	assert.Equal(t, 10.00, cart.Items[0].UnitPrice)
}
