package interfaces

import (
	"context"

	"storefront_checkout/internal/domain/entities"
)

// IPaymentRecordRepository abstracts persistence for PaymentRecord.
//
// Update must replace the whole record so an interpreted capture patch plus
// its order annotation land atomically.
type IPaymentRecordRepository interface {
	Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.PaymentRecord, error)
	Update(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
	ListByCartID(ctx context.Context, cartID string) ([]entities.PaymentRecord, error)
}
