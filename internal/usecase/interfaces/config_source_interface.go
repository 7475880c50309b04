package interfaces

import "storefront_checkout/internal/domain/entities"

// IConfigSource exposes merchant configuration to the checkout core.
type IConfigSource interface {
	// IsItemBreakdownEnabled gates the per-item amount breakdown in order
	// requests.
	IsItemBreakdownEnabled() bool
	// IsPendingHandlingAllowed decides whether a PENDING capture is held
	// for out-of-band approval or declined outright.
	IsPendingHandlingAllowed() bool
	SDK() entities.SDKSettings
	CheckoutURLs() entities.CheckoutURLs
}
