package interfaces

import (
	"context"
	"encoding/json"
	"errors"

	"storefront_checkout/internal/domain/entities"
)

// ErrGatewayTransport marks network/HTTP-layer failures talking to the
// gateway. Callers may retry per their own policy; the core never does.
var ErrGatewayTransport = errors.New("payment gateway transport failure")

// IGatewayClient performs the network calls to the payment gateway. Both
// calls surface transport failures as errors wrapping the gateway-transport
// sentinel; response bodies are never interpreted here.
type IGatewayClient interface {
	CreateOrder(ctx context.Context, req entities.OrderRequest) (orderID string, raw json.RawMessage, err error)
	CaptureOrder(ctx context.Context, orderID string, source *entities.PaymentSource) (entities.CaptureResponse, error)
}
