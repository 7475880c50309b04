package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"
	mock_interfaces "storefront_checkout/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type checkoutMocks struct {
	carts    *mock_interfaces.MockICartAccessor
	payments *mock_interfaces.MockIPaymentRecordRepository
	gateway  *mock_interfaces.MockIGatewayClient
	cfg      *mock_interfaces.MockIConfigSource
}

func newCheckoutUseCaseForTest(ctrl *gomock.Controller) (*CheckoutUseCase, checkoutMocks) {
	m := checkoutMocks{
		carts:    mock_interfaces.NewMockICartAccessor(ctrl),
		payments: mock_interfaces.NewMockIPaymentRecordRepository(ctrl),
		gateway:  mock_interfaces.NewMockIGatewayClient(ctrl),
		cfg:      mock_interfaces.NewMockIConfigSource(ctrl),
	}
	uc := NewCheckoutUseCase(m.carts, m.payments, m.gateway, m.cfg, NewOrderRequestUseCase(), NewCaptureUseCase())
	return uc, m
}

func TestCheckoutUseCase_CreateOrder(t *testing.T) {
	t.Run("empty cart id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newCheckoutUseCaseForTest(ctrl)

		_, err := uc.CreateOrder(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidCartID) {
			t.Fatalf("expected ErrInvalidCartID, got %v", err)
		}
	})

	t.Run("no active cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.carts.EXPECT().CurrentSnapshot(gomock.Any(), "cart-1").Return(entities.CartSnapshot{}, nil)

		_, err := uc.CreateOrder(context.Background(), "cart-1")
		if !errors.Is(err, ErrNoActiveCart) {
			t.Fatalf("expected ErrNoActiveCart, got %v", err)
		}
	})

	t.Run("cart accessor error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.carts.EXPECT().CurrentSnapshot(gomock.Any(), "cart-1").Return(entities.CartSnapshot{}, errors.New("db"))

		_, err := uc.CreateOrder(context.Background(), "cart-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("invalid cart fails the build", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		cart := checkoutTestCart()
		cart.BaseCurrencyCode = ""
		m.carts.EXPECT().CurrentSnapshot(gomock.Any(), "cart-1").Return(cart, nil)
		m.cfg.EXPECT().CheckoutURLs().Return(testCheckoutURLs())
		m.cfg.EXPECT().IsItemBreakdownEnabled().Return(false)

		_, err := uc.CreateOrder(context.Background(), "cart-1")
		if !errors.Is(err, ErrMissingCurrencyCode) {
			t.Fatalf("expected ErrMissingCurrencyCode, got %v", err)
		}
	})

	t.Run("success persists a created record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.carts.EXPECT().CurrentSnapshot(gomock.Any(), "cart-1").Return(checkoutTestCart(), nil)
		m.cfg.EXPECT().CheckoutURLs().Return(testCheckoutURLs())
		m.cfg.EXPECT().IsItemBreakdownEnabled().Return(true)
		m.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return("ord-1", json.RawMessage(`{"id":"ord-1"}`), nil)
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
				if p.OrderID != "ord-1" || p.CartID != "cart-1" {
					t.Fatalf("unexpected record ids: %+v", p)
				}
				if p.Status != entities.PaymentStatusCreated {
					t.Fatalf("expected created status, got %s", p.Status)
				}
				if p.Amount != "25.00" || p.CurrencyCode != "USD" {
					t.Fatalf("unexpected record amount: %+v", p)
				}
				return p, nil
			})

		record, err := uc.CreateOrder(context.Background(), "cart-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.OrderID != "ord-1" {
			t.Fatalf("unexpected record: %+v", record)
		}
	})

	t.Run("gateway error propagates without persisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.carts.EXPECT().CurrentSnapshot(gomock.Any(), "cart-1").Return(checkoutTestCart(), nil)
		m.cfg.EXPECT().CheckoutURLs().Return(testCheckoutURLs())
		m.cfg.EXPECT().IsItemBreakdownEnabled().Return(false)
		m.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return("", nil, interfaces.ErrGatewayTransport)

		_, err := uc.CreateOrder(context.Background(), "cart-1")
		if !errors.Is(err, interfaces.ErrGatewayTransport) {
			t.Fatalf("expected transport error, got %v", err)
		}
	})
}

func TestCheckoutUseCase_AssignData(t *testing.T) {
	validSource := entities.PaymentSource{Kind: "paypal", Payload: json.RawMessage(`{"token":"abc"}`)}

	t.Run("empty order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newCheckoutUseCaseForTest(ctrl)

		_, err := uc.AssignData(context.Background(), " ", validSource)
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("missing kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newCheckoutUseCaseForTest(ctrl)

		_, err := uc.AssignData(context.Background(), "ord-1", entities.PaymentSource{})
		if !errors.Is(err, ErrInvalidPaymentSource) {
			t.Fatalf("expected ErrInvalidPaymentSource, got %v", err)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newCheckoutUseCaseForTest(ctrl)

		_, err := uc.AssignData(context.Background(), "ord-1", entities.PaymentSource{
			Kind:    "card",
			Payload: json.RawMessage(`{`),
		})
		if !errors.Is(err, ErrInvalidPaymentSource) {
			t.Fatalf("expected ErrInvalidPaymentSource, got %v", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.payments.EXPECT().GetByOrderID(gomock.Any(), "ord-404").Return(entities.PaymentRecord{}, nil)

		_, err := uc.AssignData(context.Background(), "ord-404", validSource)
		if !errors.Is(err, ErrPaymentRecordNotFound) {
			t.Fatalf("expected ErrPaymentRecordNotFound, got %v", err)
		}
	})

	t.Run("success stores the source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		existing := entities.PaymentRecord{OrderID: "ord-1", CartID: "cart-1", Status: entities.PaymentStatusCreated}
		m.payments.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return(existing, nil)
		m.payments.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
				if p.Source == nil || p.Source.Kind != "paypal" {
					t.Fatalf("source not assigned: %+v", p.Source)
				}
				return p, nil
			})

		record, err := uc.AssignData(context.Background(), "ord-1", validSource)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.Source == nil || record.Source.Kind != "paypal" {
			t.Fatalf("unexpected record: %+v", record)
		}
	})
}

func TestCheckoutUseCase_Capture(t *testing.T) {
	completedResponse := captureTestResponse(201, "COMPLETED")

	t.Run("empty order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newCheckoutUseCaseForTest(ctrl)

		_, err := uc.Capture(context.Background(), "")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.payments.EXPECT().GetByOrderID(gomock.Any(), "ord-404").Return(entities.PaymentRecord{}, nil)

		_, err := uc.Capture(context.Background(), "ord-404")
		if !errors.Is(err, ErrPaymentRecordNotFound) {
			t.Fatalf("expected ErrPaymentRecordNotFound, got %v", err)
		}
	})

	t.Run("already captured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.payments.EXPECT().GetByOrderID(gomock.Any(), "ord-1").
			Return(entities.PaymentRecord{OrderID: "ord-1", TransactionClosed: true}, nil)

		_, err := uc.Capture(context.Background(), "ord-1")
		if !errors.Is(err, ErrOrderAlreadyCaptured) {
			t.Fatalf("expected ErrOrderAlreadyCaptured, got %v", err)
		}
	})

	t.Run("completed status also rejects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.payments.EXPECT().GetByOrderID(gomock.Any(), "ord-1").
			Return(entities.PaymentRecord{OrderID: "ord-1", Status: entities.PaymentStatusCompleted}, nil)

		_, err := uc.Capture(context.Background(), "ord-1")
		if !errors.Is(err, ErrOrderAlreadyCaptured) {
			t.Fatalf("expected ErrOrderAlreadyCaptured, got %v", err)
		}
	})

	t.Run("transport failure records a failed outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.payments.EXPECT().GetByOrderID(gomock.Any(), "ord-1").
			Return(entities.PaymentRecord{OrderID: "ord-1", Status: entities.PaymentStatusCreated}, nil)
		m.gateway.EXPECT().CaptureOrder(gomock.Any(), "ord-1", gomock.Nil()).
			Return(entities.CaptureResponse{}, interfaces.ErrGatewayTransport)
		m.payments.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
				if p.Status != entities.PaymentStatusFailed {
					t.Fatalf("expected failed status, got %s", p.Status)
				}
				return p, nil
			})

		_, err := uc.Capture(context.Background(), "ord-1")
		if !errors.Is(err, interfaces.ErrGatewayTransport) {
			t.Fatalf("expected transport error, got %v", err)
		}
	})

	t.Run("decline records a declined outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.payments.EXPECT().GetByOrderID(gomock.Any(), "ord-1").
			Return(entities.PaymentRecord{OrderID: "ord-1", Status: entities.PaymentStatusCreated}, nil)
		m.gateway.EXPECT().CaptureOrder(gomock.Any(), "ord-1", gomock.Nil()).
			Return(captureTestResponse(201, "DECLINED"), nil)
		m.cfg.EXPECT().IsPendingHandlingAllowed().Return(true)
		m.payments.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
				if p.Status != entities.PaymentStatusDeclined {
					t.Fatalf("expected declined status, got %s", p.Status)
				}
				return p, nil
			})

		_, err := uc.Capture(context.Background(), "ord-1")
		if !errors.Is(err, ErrGatewayDeclined) {
			t.Fatalf("expected ErrGatewayDeclined, got %v", err)
		}
	})

	t.Run("success applies the patch and persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		source := &entities.PaymentSource{Kind: "paypal"}
		m.payments.EXPECT().GetByOrderID(gomock.Any(), "ord-1").
			Return(entities.PaymentRecord{OrderID: "ord-1", Status: entities.PaymentStatusCreated, Source: source}, nil)
		m.gateway.EXPECT().CaptureOrder(gomock.Any(), "ord-1", source).
			Return(completedResponse, nil)
		m.cfg.EXPECT().IsPendingHandlingAllowed().Return(false)
		m.payments.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
				return p, nil
			})

		record, err := uc.Capture(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.Status != entities.PaymentStatusCompleted {
			t.Fatalf("expected completed status, got %s", record.Status)
		}
		if record.PaymentID != "cap-1" || record.TransactionID != "cap-1" {
			t.Fatalf("capture ids not applied: %+v", record)
		}
		if !record.TransactionClosed {
			t.Fatal("expected closed transaction")
		}
	})
}

func TestCheckoutUseCase_GetPaymentByOrderID(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newCheckoutUseCaseForTest(ctrl)

		_, err := uc.GetPaymentByOrderID(context.Background(), "")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.payments.EXPECT().GetByOrderID(gomock.Any(), "ord-404").Return(entities.PaymentRecord{}, nil)

		_, err := uc.GetPaymentByOrderID(context.Background(), "ord-404")
		if !errors.Is(err, ErrPaymentRecordNotFound) {
			t.Fatalf("expected ErrPaymentRecordNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.payments.EXPECT().GetByOrderID(gomock.Any(), "ord-1").
			Return(entities.PaymentRecord{OrderID: "ord-1", Status: entities.PaymentStatusCompleted}, nil)

		record, err := uc.GetPaymentByOrderID(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.OrderID != "ord-1" {
			t.Fatalf("unexpected record: %+v", record)
		}
	})
}

func TestCheckoutUseCase_ListPaymentsByCartID(t *testing.T) {
	t.Run("empty cart id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newCheckoutUseCaseForTest(ctrl)

		_, err := uc.ListPaymentsByCartID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidCartID) {
			t.Fatalf("expected ErrInvalidCartID, got %v", err)
		}
	})

	t.Run("returns every attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.payments.EXPECT().ListByCartID(gomock.Any(), "cart-1").Return([]entities.PaymentRecord{
			{OrderID: "ord-1", Status: entities.PaymentStatusDeclined},
			{OrderID: "ord-2", Status: entities.PaymentStatusCompleted},
		}, nil)

		records, err := uc.ListPaymentsByCartID(context.Background(), "cart-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 2 || records[1].OrderID != "ord-2" {
			t.Fatalf("unexpected records: %+v", records)
		}
	})
}

func TestCheckoutUseCase_IsAvailable(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.cfg.EXPECT().SDK().Return(entities.SDKSettings{ClientID: "client-1"})
		if !uc.IsAvailable(context.Background()) {
			t.Fatal("expected method to be available")
		}
	})

	t.Run("missing client id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.cfg.EXPECT().SDK().Return(entities.SDKSettings{})
		if uc.IsAvailable(context.Background()) {
			t.Fatal("expected method to be unavailable")
		}
	})

	t.Run("no gateway client", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, nil, NewOrderRequestUseCase(), NewCaptureUseCase())
		if uc.IsAvailable(context.Background()) {
			t.Fatal("expected method to be unavailable")
		}
	})
}
