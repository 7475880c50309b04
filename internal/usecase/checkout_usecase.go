package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"
)

var (
	ErrInvalidCartID         = errors.New("invalid cart_id")
	ErrInvalidOrderID        = errors.New("invalid order_id")
	ErrNoActiveCart          = errors.New("no active cart")
	ErrPaymentRecordNotFound = errors.New("payment record not found")
	ErrInvalidPaymentSource  = errors.New("invalid payment source")
	ErrOrderAlreadyCaptured  = errors.New("order already captured")
)

// IPaymentMethod is the capability surface a checkout flow needs from a
// payment method: availability, checkout-data assignment and capture.
type IPaymentMethod interface {
	IsAvailable(ctx context.Context) bool
	AssignData(ctx context.Context, orderID string, source entities.PaymentSource) (entities.PaymentRecord, error)
	Capture(ctx context.Context, orderID string) (entities.PaymentRecord, error)
}

// ICheckoutUseCase drives the full gateway order lifecycle: create the
// gateway order from the active cart, then capture it.
type ICheckoutUseCase interface {
	IPaymentMethod
	CreateOrder(ctx context.Context, cartID string) (entities.PaymentRecord, error)
	GetPaymentByOrderID(ctx context.Context, orderID string) (entities.PaymentRecord, error)
	ListPaymentsByCartID(ctx context.Context, cartID string) ([]entities.PaymentRecord, error)
}

type CheckoutUseCase struct {
	carts       interfaces.ICartAccessor
	payments    interfaces.IPaymentRecordRepository
	gateway     interfaces.IGatewayClient
	cfg         interfaces.IConfigSource
	builder     IOrderRequestUseCase
	interpreter ICaptureUseCase
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	carts interfaces.ICartAccessor,
	payments interfaces.IPaymentRecordRepository,
	gateway interfaces.IGatewayClient,
	cfg interfaces.IConfigSource,
	builder IOrderRequestUseCase,
	interpreter ICaptureUseCase,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		carts:       carts,
		payments:    payments,
		gateway:     gateway,
		cfg:         cfg,
		builder:     builder,
		interpreter: interpreter,
	}
}

// IsAvailable reports whether the method can take payments: it needs a
// configured gateway client and SDK credentials.
func (u *CheckoutUseCase) IsAvailable(_ context.Context) bool {
	return u.gateway != nil && u.cfg != nil && u.cfg.SDK().ClientID != ""
}

// CreateOrder snapshots the active cart, builds the gateway order request
// and registers a created payment record under the gateway order id.
func (u *CheckoutUseCase) CreateOrder(ctx context.Context, cartID string) (entities.PaymentRecord, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		log.Printf("[checkout][usecase] create-order invalid cart_id (empty)")
		return entities.PaymentRecord{}, ErrInvalidCartID
	}

	log.Printf("[checkout][usecase] create-order start cart_id=%s", cartID)
	cart, err := u.carts.CurrentSnapshot(ctx, cartID)
	if err != nil {
		log.Printf("[checkout][usecase] cart snapshot failed cart_id=%s err=%v", cartID, err)
		return entities.PaymentRecord{}, err
	}
	if cart.CartID == "" {
		log.Printf("[checkout][usecase] no active cart cart_id=%s", cartID)
		return entities.PaymentRecord{}, ErrNoActiveCart
	}

	req, err := u.builder.Build(cart, u.cfg.CheckoutURLs(), OrderRequestFlags{
		ItemsEnabled: u.cfg.IsItemBreakdownEnabled(),
	})
	if err != nil {
		log.Printf("[checkout][usecase] order request build failed cart_id=%s err=%v", cartID, err)
		return entities.PaymentRecord{}, err
	}

	orderID, raw, err := u.gateway.CreateOrder(ctx, req)
	if err != nil {
		log.Printf("[checkout][usecase] gateway create-order failed cart_id=%s err=%v", cartID, err)
		return entities.PaymentRecord{}, err
	}
	log.Printf("[checkout][usecase] gateway order created cart_id=%s order_id=%s raw_len=%d", cartID, orderID, len(raw))

	now := time.Now().UTC()
	record := entities.PaymentRecord{
		OrderID:      orderID,
		CartID:       cartID,
		Status:       entities.PaymentStatusCreated,
		Amount:       entities.FormatAmount(cart.GrandTotal),
		CurrencyCode: cart.BaseCurrencyCode,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.payments.Create(ctx, record)
	if err != nil {
		log.Printf("[checkout][usecase] payment record create failed order_id=%s err=%v", orderID, err)
		return entities.PaymentRecord{}, err
	}
	log.Printf("[checkout][usecase] create-order success cart_id=%s order_id=%s", cartID, orderID)
	return created, nil
}

// AssignData attaches the typed checkout payment-source data (funding kind,
// raw gateway payload, fraud-metadata header value) to the payment record
// ahead of capture.
func (u *CheckoutUseCase) AssignData(ctx context.Context, orderID string, source entities.PaymentSource) (entities.PaymentRecord, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.PaymentRecord{}, ErrInvalidOrderID
	}
	if err := validatePaymentSource(source); err != nil {
		log.Printf("[checkout][usecase] assign-data rejected order_id=%s err=%v", orderID, err)
		return entities.PaymentRecord{}, err
	}

	record, err := u.payments.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if record.OrderID == "" {
		return entities.PaymentRecord{}, ErrPaymentRecordNotFound
	}

	record.Source = &source
	record.UpdatedAt = time.Now().UTC()

	updated, err := u.payments.Update(ctx, record)
	if err != nil {
		log.Printf("[checkout][usecase] assign-data update failed order_id=%s err=%v", orderID, err)
		return entities.PaymentRecord{}, err
	}
	log.Printf("[checkout][usecase] assign-data success order_id=%s kind=%s", orderID, source.Kind)
	return updated, nil
}

// Capture issues the gateway capture for an order and applies the
// interpreted outcome to the payment record. Already-closed records are
// rejected so a duplicate capture attempt can never charge twice.
func (u *CheckoutUseCase) Capture(ctx context.Context, orderID string) (entities.PaymentRecord, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.PaymentRecord{}, ErrInvalidOrderID
	}

	log.Printf("[checkout][usecase] capture start order_id=%s", orderID)
	record, err := u.payments.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if record.OrderID == "" {
		log.Printf("[checkout][usecase] capture unknown order order_id=%s", orderID)
		return entities.PaymentRecord{}, ErrPaymentRecordNotFound
	}
	if record.TransactionClosed || record.Status == entities.PaymentStatusCompleted {
		log.Printf("[checkout][usecase] capture rejected, already captured order_id=%s", orderID)
		return entities.PaymentRecord{}, ErrOrderAlreadyCaptured
	}

	record.Status = entities.PaymentStatusRequested
	resp, err := u.gateway.CaptureOrder(ctx, orderID, record.Source)
	if err != nil {
		log.Printf("[checkout][usecase] gateway capture failed order_id=%s err=%v", orderID, err)
		u.recordOutcome(ctx, record, entities.PaymentStatusFailed)
		return entities.PaymentRecord{}, err
	}

	patch, err := u.interpreter.Interpret(resp, u.cfg.IsPendingHandlingAllowed())
	if err != nil {
		log.Printf("[checkout][usecase] capture declined order_id=%s err=%v", orderID, err)
		u.recordOutcome(ctx, record, entities.PaymentStatusDeclined)
		return entities.PaymentRecord{}, err
	}

	record.ApplyCapturePatch(patch, time.Now().UTC())
	updated, err := u.payments.Update(ctx, record)
	if err != nil {
		log.Printf("[checkout][usecase] payment record update failed order_id=%s err=%v", orderID, err)
		return entities.PaymentRecord{}, err
	}
	log.Printf("[checkout][usecase] capture success order_id=%s payment_id=%s status=%s", orderID, updated.PaymentID, updated.Status)
	return updated, nil
}

func (u *CheckoutUseCase) GetPaymentByOrderID(ctx context.Context, orderID string) (entities.PaymentRecord, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.PaymentRecord{}, ErrInvalidOrderID
	}

	record, err := u.payments.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if record.OrderID == "" {
		return entities.PaymentRecord{}, ErrPaymentRecordNotFound
	}
	return record, nil
}

// ListPaymentsByCartID returns every gateway order opened for a cart,
// including abandoned and declined attempts.
func (u *CheckoutUseCase) ListPaymentsByCartID(ctx context.Context, cartID string) ([]entities.PaymentRecord, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return nil, ErrInvalidCartID
	}
	return u.payments.ListByCartID(ctx, cartID)
}

// recordOutcome persists a terminal decline/failure for audit. The capture
// error is what the caller sees, so a persistence failure here only logs.
func (u *CheckoutUseCase) recordOutcome(ctx context.Context, record entities.PaymentRecord, status entities.PaymentStatus) {
	record.Status = status
	record.UpdatedAt = time.Now().UTC()
	if _, err := u.payments.Update(ctx, record); err != nil {
		log.Printf("[checkout][usecase] outcome update failed order_id=%s status=%s err=%v", record.OrderID, status, err)
	}
}

func validatePaymentSource(source entities.PaymentSource) error {
	if strings.TrimSpace(source.Kind) == "" {
		return ErrInvalidPaymentSource
	}
	if len(source.Payload) > 0 && !json.Valid(source.Payload) {
		return ErrInvalidPaymentSource
	}
	return nil
}
