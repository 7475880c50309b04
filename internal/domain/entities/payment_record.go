package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus tracks the capture lifecycle of a gateway order:
//
//	created -> requested -> {pending, completed, declined, failed}
//
// pending is non-terminal and is resolved out-of-band by the gateway;
// completed, declined and failed are terminal for this service.
type PaymentStatus string

const (
	PaymentStatusCreated   PaymentStatus = "created"
	PaymentStatusRequested PaymentStatus = "requested"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusDeclined  PaymentStatus = "declined"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PaymentRecord is the local payment entity persisted per gateway order.
//
// Storage model (DynamoDB):
//   - PK: order_id (the gateway order id)
//   - GSI1 (cart_id-index): cart_id
type PaymentRecord struct {
	OrderID            string            `json:"order_id"`
	CartID             string            `json:"cart_id"`
	Status             PaymentStatus     `json:"status"`
	Amount             string            `json:"amount"`
	CurrencyCode       string            `json:"currency_code"`
	PaymentID          string            `json:"payment_id,omitempty"`
	TransactionID      string            `json:"transaction_id,omitempty"`
	TransactionPending bool              `json:"transaction_pending"`
	TransactionClosed  bool              `json:"transaction_closed"`
	Source             *PaymentSource    `json:"source,omitempty"`
	Card               *CardMetadata     `json:"card,omitempty"`
	Annotations        []OrderAnnotation `json:"annotations,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// PaymentSource is the typed checkout payment-source data assigned before
// capture: the funding kind, the raw gateway payload forwarded verbatim on
// capture, and the fraud-metadata header value.
type PaymentSource struct {
	Kind            string          `json:"kind"`
	Payload         json.RawMessage `json:"payload,omitempty"`
	FraudMetadataID string          `json:"fraud_metadata_id,omitempty"`
}

// ApplyCapturePatch folds an interpreted capture outcome into the record.
func (p *PaymentRecord) ApplyCapturePatch(patch CapturePatch, now time.Time) {
	p.PaymentID = patch.PaymentID
	if patch.TransactionID != "" {
		p.TransactionID = patch.TransactionID
	}
	p.TransactionPending = patch.TransactionPending
	p.TransactionClosed = patch.TransactionClosed
	if patch.Card != nil {
		p.Card = patch.Card
	}
	if patch.Annotation != nil {
		p.Annotations = append(p.Annotations, *patch.Annotation)
	}
	switch {
	case patch.TransactionClosed:
		p.Status = PaymentStatusCompleted
	case patch.TransactionPending:
		p.Status = PaymentStatusPending
	}
	p.UpdatedAt = now
}
