package entities

// CaptureResponse is the raw outcome of a gateway capture call. StatusCode
// and Message come from the HTTP layer; Result is the decoded body.
type CaptureResponse struct {
	StatusCode int           `json:"status_code"`
	Message    string        `json:"message,omitempty"`
	Result     CaptureResult `json:"result"`
}

type CaptureResult struct {
	ID            string                `json:"id"`
	Status        string                `json:"status"`
	PurchaseUnits []CapturePurchaseUnit `json:"purchase_units"`
	PaymentSource *PaymentSourceResult  `json:"payment_source,omitempty"`
}

type CapturePurchaseUnit struct {
	Payments CapturePayments `json:"payments"`
}

type CapturePayments struct {
	Captures []Capture `json:"captures"`
}

type Capture struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type PaymentSourceResult struct {
	Card *CardResult `json:"card,omitempty"`
}

type CardResult struct {
	Brand      string `json:"brand"`
	LastDigits string `json:"last_digits"`
	Type       string `json:"type"`
}

// FirstCapture returns purchase_units[0].payments.captures[0], the only
// capture this integration ever issues per order.
func (r CaptureResponse) FirstCapture() (Capture, bool) {
	if len(r.Result.PurchaseUnits) == 0 {
		return Capture{}, false
	}
	captures := r.Result.PurchaseUnits[0].Payments.Captures
	if len(captures) == 0 {
		return Capture{}, false
	}
	return captures[0], true
}

// CapturePatch describes the payment-record mutations implied by a capture
// response. The interpreter never touches host records; the repository
// applies the patch atomically.
type CapturePatch struct {
	PaymentID          string           `json:"payment_id"`
	TransactionID      string           `json:"transaction_id,omitempty"`
	TransactionPending bool             `json:"transaction_pending"`
	TransactionClosed  bool             `json:"transaction_closed"`
	Card               *CardMetadata    `json:"card,omitempty"`
	Annotation         *OrderAnnotation `json:"annotation,omitempty"`
}

// CardMetadata is the stored-card information surfaced by the gateway for
// card-funded captures.
type CardMetadata struct {
	Brand      string `json:"brand"`
	LastDigits string `json:"last_digits"`
	Type       string `json:"type"`
}

// OrderAnnotation is a status-history comment appended to the host order.
type OrderAnnotation struct {
	Comment        string `json:"comment"`
	NotifyCustomer bool   `json:"notify_customer"`
}
