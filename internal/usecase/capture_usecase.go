package usecase

import (
	"errors"
	"fmt"
	"log"

	"storefront_checkout/internal/domain/entities"
)

const (
	captureStatePending   = "PENDING"
	captureStateCompleted = "COMPLETED"

	pendingPaymentNotification = "This order is on hold due to a pending payment. The order will be processed after the payment is approved at the payment gateway."
)

var (
	// ErrGatewayDeclined is the customer-visible generic decline. Full
	// diagnostic detail is only ever logged, never surfaced.
	ErrGatewayDeclined = errors.New("payment has been declined by payment gateway")
	// ErrPendingNotAllowed declines a PENDING capture when the merchant
	// disallows pending handling. Hard decline, not retryable.
	ErrPendingNotAllowed = errors.New("declining pending payment transaction")
)

// captureSuccessCodes are the accepted HTTP codes for a capture call.
var captureSuccessCodes = map[int]bool{200: true, 201: true}

// ICaptureUseCase translates a raw gateway capture response into a payment
// record patch. It never mutates host records itself.
type ICaptureUseCase interface {
	Interpret(resp entities.CaptureResponse, allowPending bool) (entities.CapturePatch, error)
}

type CaptureUseCase struct{}

var _ ICaptureUseCase = (*CaptureUseCase)(nil)

func NewCaptureUseCase() *CaptureUseCase {
	return &CaptureUseCase{}
}

// Interpret decides the local state transition for a capture response.
//
// Accepted capture states are PENDING and COMPLETED; anything else,
// including an absent capture node, is a decline. The capture id is always
// recorded as payment_id, and card metadata is patched whenever the
// response carries a payment_source.card, whichever state was reached.
func (u *CaptureUseCase) Interpret(resp entities.CaptureResponse, allowPending bool) (entities.CapturePatch, error) {
	if !captureSuccessCodes[resp.StatusCode] {
		log.Printf("[payment][interpreter] gateway http failure status_code=%d message=%q", resp.StatusCode, resp.Message)
		return entities.CapturePatch{}, fmt.Errorf("%w: %s", ErrGatewayDeclined, resp.Message)
	}

	capture, ok := resp.FirstCapture()
	if !ok || capture.Status == "" {
		log.Printf("[payment][interpreter] capture state missing order_id=%s", resp.Result.ID)
		return entities.CapturePatch{}, ErrGatewayDeclined
	}
	if capture.Status != captureStatePending && capture.Status != captureStateCompleted {
		log.Printf("[payment][interpreter] capture state not accepted order_id=%s state=%s", resp.Result.ID, capture.Status)
		return entities.CapturePatch{}, ErrGatewayDeclined
	}

	patch := entities.CapturePatch{PaymentID: capture.ID}

	switch capture.Status {
	case captureStatePending:
		if !allowPending {
			log.Printf("[payment][interpreter] pending capture declined by configuration order_id=%s capture_id=%s", resp.Result.ID, capture.ID)
			return entities.CapturePatch{}, ErrPendingNotAllowed
		}
		patch.TransactionID = capture.ID
		patch.TransactionPending = true
		patch.TransactionClosed = false
		patch.Annotation = &entities.OrderAnnotation{
			Comment:        pendingPaymentNotification,
			NotifyCustomer: false,
		}
	case captureStateCompleted:
		patch.TransactionID = capture.ID
		patch.TransactionClosed = true
	default:
		// Unreached while the accepted set is {PENDING, COMPLETED};
		// keeps any future accepted state from silently closing.
		patch.TransactionPending = true
	}

	if src := resp.Result.PaymentSource; src != nil && src.Card != nil {
		patch.Card = &entities.CardMetadata{
			Brand:      src.Card.Brand,
			LastDigits: src.Card.LastDigits,
			Type:       src.Card.Type,
		}
	}

	log.Printf("[payment][interpreter] capture interpreted order_id=%s capture_id=%s state=%s pending=%t closed=%t",
		resp.Result.ID, capture.ID, capture.Status, patch.TransactionPending, patch.TransactionClosed)

	return patch, nil
}
