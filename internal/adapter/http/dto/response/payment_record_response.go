package response

import (
	"time"

	"storefront_checkout/internal/domain/entities"
)

type PaymentRecordResponse struct {
	OrderID            string             `json:"order_id"`
	CartID             string             `json:"cart_id"`
	Status             string             `json:"status"`
	Amount             string             `json:"amount"`
	CurrencyCode       string             `json:"currency_code"`
	PaymentID          string             `json:"payment_id,omitempty"`
	TransactionID      string             `json:"transaction_id,omitempty"`
	TransactionPending bool               `json:"transaction_pending"`
	TransactionClosed  bool               `json:"transaction_closed"`
	Card               *CardResponse      `json:"card,omitempty"`
	Annotations        []AnnotationEntry  `json:"annotations,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type CardResponse struct {
	Brand      string `json:"brand"`
	LastDigits string `json:"last_digits"`
	Type       string `json:"type"`
}

type AnnotationEntry struct {
	Comment        string `json:"comment"`
	NotifyCustomer bool   `json:"notify_customer"`
}

func FromPaymentRecord(p entities.PaymentRecord) PaymentRecordResponse {
	resp := PaymentRecordResponse{
		OrderID:            p.OrderID,
		CartID:             p.CartID,
		Status:             string(p.Status),
		Amount:             p.Amount,
		CurrencyCode:       p.CurrencyCode,
		PaymentID:          p.PaymentID,
		TransactionID:      p.TransactionID,
		TransactionPending: p.TransactionPending,
		TransactionClosed:  p.TransactionClosed,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
	if p.Card != nil {
		resp.Card = &CardResponse{Brand: p.Card.Brand, LastDigits: p.Card.LastDigits, Type: p.Card.Type}
	}
	for _, a := range p.Annotations {
		resp.Annotations = append(resp.Annotations, AnnotationEntry{Comment: a.Comment, NotifyCustomer: a.NotifyCustomer})
	}
	return resp
}
