package handlers

import (
	"errors"
	"log"
	"net/http"

	request "storefront_checkout/internal/adapter/http/dto/request"
	response "storefront_checkout/internal/adapter/http/dto/response"
	"storefront_checkout/internal/usecase"
	"storefront_checkout/internal/usecase/interfaces"
	"storefront_checkout/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// CheckoutHandler handles the checkout-facing gateway endpoints: SDK
// configuration, order creation, payment-data assignment and capture.
type CheckoutHandler struct {
	checkout  usecase.ICheckoutUseCase
	sdkConfig usecase.ISDKConfigUseCase
}

func NewCheckoutHandler(checkout usecase.ICheckoutUseCase, sdkConfig usecase.ISDKConfigUseCase) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, sdkConfig: sdkConfig}
}

// GetSDKConfig returns the client-side SDK configuration for the checkout
// page.
func (h *CheckoutHandler) GetSDKConfig(c *gin.Context) {
	cfg, err := h.sdkConfig.Config()
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSDKConfig(cfg))
}

// CreateOrder creates a gateway order mirroring the active cart.
func (h *CheckoutHandler) CreateOrder(c *gin.Context) {
	var payload request.CheckoutOrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	log.Printf("[checkout][handler] create-order start cart_id=%s", payload.CartID)
	record, err := h.checkout.CreateOrder(c.Request.Context(), payload.CartID)
	if err != nil {
		log.Printf("[checkout][handler] create-order failed cart_id=%s err=%v", payload.CartID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] create-order success cart_id=%s order_id=%s", payload.CartID, record.OrderID)

	c.JSON(http.StatusCreated, response.FromPaymentRecord(record))
}

// AssignPaymentData attaches the checkout payment-source data to an order
// before capture.
func (h *CheckoutHandler) AssignPaymentData(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.PaymentDataRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	record, err := h.checkout.AssignData(c.Request.Context(), orderID, payload.ToPaymentSource())
	if err != nil {
		log.Printf("[checkout][handler] assign-data failed order_id=%s err=%v", orderID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRecord(record))
}

// CaptureOrder captures payment for a gateway order and returns the
// resulting payment record.
func (h *CheckoutHandler) CaptureOrder(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[checkout][handler] capture start order_id=%s", orderID)

	record, err := h.checkout.Capture(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[checkout][handler] capture failed order_id=%s err=%v", orderID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] capture success order_id=%s status=%s", orderID, record.Status)

	c.JSON(http.StatusOK, response.FromPaymentRecord(record))
}

// GetPayment returns the payment record for a gateway order.
func (h *CheckoutHandler) GetPayment(c *gin.Context) {
	orderID := c.Param("order_id")

	record, err := h.checkout.GetPaymentByOrderID(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRecord(record))
}

// GetCartPayments lists every payment attempt recorded for a cart.
func (h *CheckoutHandler) GetCartPayments(c *gin.Context) {
	cartID := c.Param("cart_id")

	records, err := h.checkout.ListPaymentsByCartID(c.Request.Context(), cartID)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.PaymentRecordResponse, 0, len(records))
	for _, record := range records {
		out = append(out, response.FromPaymentRecord(record))
	}
	c.JSON(http.StatusOK, out)
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCartID),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidPaymentSource):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingCurrencyCode), errors.Is(err, usecase.ErrMissingGrandTotal):
		return pkg.NewDomainErrorSimple("CART_INVALID", "Cart is not ready for checkout", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoActiveCart):
		return pkg.NewDomainErrorSimple("CART_NOT_FOUND", "No active cart", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentRecordNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyCaptured):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_CAPTURED", "Order has already been captured", http.StatusConflict)
	case errors.Is(err, usecase.ErrPendingNotAllowed), errors.Is(err, usecase.ErrGatewayDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment has been declined by Payment Gateway", http.StatusPaymentRequired)
	case errors.Is(err, interfaces.ErrGatewayTransport):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment gateway unavailable", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrMethodNotConfigured):
		return pkg.NewDomainErrorSimple("METHOD_NOT_CONFIGURED", "Payment method not configured", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
