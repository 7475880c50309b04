package interfaces

import (
	"context"

	"storefront_checkout/internal/domain/entities"
)

// ICartAccessor reads the active cart snapshot owned by the host platform.
// A zero-ID snapshot means no active cart.
type ICartAccessor interface {
	CurrentSnapshot(ctx context.Context, cartID string) (entities.CartSnapshot, error)
}
