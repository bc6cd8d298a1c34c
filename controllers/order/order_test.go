package orderControllers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/eya415/RentHub/models"
)

func newOrderRouter(env *testEnv, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})
	r.GET("/user/orders/:orderID", GetOrderByIDHandler(env.db))
	return r
}

func getOrder(r *gin.Engine, param string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/user/orders/"+param, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func placeTestOrder(t *testing.T, env *testEnv, userID uint) *models.Order {
	t.Helper()
	env.seedProduct(t, userID*10, 20.00)
	env.seedCartItem(t, userID, userID*10, 1, 20.00)
	order, err := PlaceRentalOrder(context.Background(), env.db, env.carts, env.products, env.orders, userID, CheckoutRequest{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-03",
	})
	require.NoError(t, err)
	return order
}

func TestGetOrderByNumericID(t *testing.T) {
	env := newTestEnv(t)
	order := placeTestOrder(t, env, 1)

	w := getOrder(newOrderRouter(env, 1), fmt.Sprint(order.ID))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), order.OrderRef)
}

func TestGetOrderByOrderRef(t *testing.T) {
	env := newTestEnv(t)
	order := placeTestOrder(t, env, 1)

	// refs are hyphenated strings and must never be compared against the
	// integer id column
	w := getOrder(newOrderRouter(env, 1), order.OrderRef)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), order.OrderRef)
}

func TestGetOrderByUnknownRefIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	placeTestOrder(t, env, 1)

	w := getOrder(newOrderRouter(env, 1), "20240101000000-no-such-ref")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrderScopedToOwner(t *testing.T) {
	env := newTestEnv(t)
	order := placeTestOrder(t, env, 1)

	w := getOrder(newOrderRouter(env, 2), order.OrderRef)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
