package repository

import (
	"encoding/json"
	"testing"
	"time"

	"storefront_checkout/internal/domain/entities"
)

func TestPaymentRecordItemMapping(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)

	t.Run("round trip keeps source, card and annotations", func(t *testing.T) {
		record := entities.PaymentRecord{
			OrderID:            "ord-1",
			CartID:             "cart-1",
			Status:             entities.PaymentStatusPending,
			Amount:             "25.00",
			CurrencyCode:       "USD",
			PaymentID:          "cap-1",
			TransactionID:      "cap-1",
			TransactionPending: true,
			Source: &entities.PaymentSource{
				Kind:            "card",
				Payload:         json.RawMessage(`{"token":"abc"}`),
				FraudMetadataID: "fn-1",
			},
			Card:        &entities.CardMetadata{Brand: "VISA", LastDigits: "1234", Type: "CREDIT"},
			Annotations: []entities.OrderAnnotation{{Comment: "on hold", NotifyCustomer: false}},
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		got := fromPaymentRecordItem(toPaymentRecordItem(record))
		if got.OrderID != "ord-1" || got.Status != entities.PaymentStatusPending {
			t.Fatalf("identity fields lost: %+v", got)
		}
		if got.Source == nil || got.Source.Kind != "card" || string(got.Source.Payload) != `{"token":"abc"}` {
			t.Fatalf("source lost: %+v", got.Source)
		}
		if got.Source.FraudMetadataID != "fn-1" {
			t.Fatalf("fraud metadata lost: %+v", got.Source)
		}
		if got.Card == nil || got.Card.Brand != "VISA" {
			t.Fatalf("card lost: %+v", got.Card)
		}
		if len(got.Annotations) != 1 || got.Annotations[0].Comment != "on hold" {
			t.Fatalf("annotations lost: %+v", got.Annotations)
		}
		if !got.CreatedAt.Equal(now) || !got.UpdatedAt.Equal(now) {
			t.Fatalf("timestamps lost precision: %v %v", got.CreatedAt, got.UpdatedAt)
		}
	})

	t.Run("absent source and card stay nil", func(t *testing.T) {
		record := entities.PaymentRecord{OrderID: "ord-1", Status: entities.PaymentStatusCreated, CreatedAt: now, UpdatedAt: now}

		got := fromPaymentRecordItem(toPaymentRecordItem(record))
		if got.Source != nil || got.Card != nil || got.Annotations != nil {
			t.Fatalf("expected empty optionals: %+v", got)
		}
	})
}
