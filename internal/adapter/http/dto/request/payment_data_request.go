package request

import (
	"encoding/json"

	"storefront_checkout/internal/domain/entities"
)

// PaymentDataRequest carries the checkout payment-source data assigned to
// an order before capture: the funding kind, the raw gateway payload
// forwarded verbatim on capture, and the fraud-metadata header value.
type PaymentDataRequest struct {
	Kind            string          `json:"kind" binding:"required"`
	Payload         json.RawMessage `json:"payload,omitempty"`
	FraudMetadataID string          `json:"fraud_metadata_id,omitempty"`
}

func (r PaymentDataRequest) ToPaymentSource() entities.PaymentSource {
	return entities.PaymentSource{
		Kind:            r.Kind,
		Payload:         r.Payload,
		FraudMetadataID: r.FraudMetadataID,
	}
}
