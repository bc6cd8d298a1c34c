package paymentControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PlaceOrderHandler is the payment hook left as a placeholder until a
// gateway is integrated. It only bounces the caller back home.
//
// POST /user/place-order
func PlaceOrderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/")
	}
}
