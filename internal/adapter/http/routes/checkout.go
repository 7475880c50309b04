package routes

import (
	"storefront_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.GET("/config", checkoutHandler.GetSDKConfig)
		checkout.POST("/orders", checkoutHandler.CreateOrder)
		checkout.PUT("/orders/:order_id/payment-data", checkoutHandler.AssignPaymentData)
		checkout.POST("/orders/:order_id/capture", checkoutHandler.CaptureOrder)
		checkout.GET("/orders/:order_id", checkoutHandler.GetPayment)
		checkout.GET("/carts/:cart_id/payments", checkoutHandler.GetCartPayments)
	}
}
