package request

// CheckoutOrderCreateRequest starts a gateway order for the active cart.
type CheckoutOrderCreateRequest struct {
	CartID string `json:"cart_id" binding:"required"`
}
