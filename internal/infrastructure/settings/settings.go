package settings

import (
	"os"
	"strings"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"
)

const defaultGatewayBaseURL = "https://api-m.sandbox.paypal.com"

// Settings is the env-backed configuration source for the checkout service.
//
// Supported env vars:
//   - PAYPAL_CLIENT_ID / PAYPAL_CLIENT_SECRET
//   - PAYPAL_BASE_URL (default: sandbox)
//   - PAYPAL_ENABLE_ITEMS (item breakdown in order requests)
//   - PAYPAL_HANDLE_PENDING_PAYMENTS (hold vs decline PENDING captures)
//   - PAYPAL_DEBUG_MODE, PAYPAL_CURRENCY, PAYPAL_LOCALE, PAYPAL_TITLE
//   - PAYPAL_BUTTON_LAYOUT / _COLOR / _SHAPE / _LABEL
//   - PAYPAL_ENABLE_CARD_FIELDS, PAYPAL_ENABLE_VAULTING
//   - PAYPAL_FRAUDNET_SWI, PAYPAL_FRAUDNET_FNCLS
//   - PAYPAL_TITLE_METHOD_PAYPAL, PAYPAL_TITLE_METHOD_CARD
//   - CHECKOUT_RETURN_URL, CHECKOUT_CANCEL_URL, CHECKOUT_NOTIFY_URL
type Settings struct {
	clientID      string
	clientSecret  string
	baseURL       string
	itemsEnabled  bool
	handlePending bool
	sdk           entities.SDKSettings
	urls          entities.CheckoutURLs
}

var _ interfaces.IConfigSource = (*Settings)(nil)

func NewFromEnv() *Settings {
	baseURL := getenvDefault("PAYPAL_BASE_URL", defaultGatewayBaseURL)

	return &Settings{
		clientID:      os.Getenv("PAYPAL_CLIENT_ID"),
		clientSecret:  os.Getenv("PAYPAL_CLIENT_SECRET"),
		baseURL:       baseURL,
		itemsEnabled:  isTruthy(os.Getenv("PAYPAL_ENABLE_ITEMS")),
		handlePending: isTruthy(os.Getenv("PAYPAL_HANDLE_PENDING_PAYMENTS")),
		sdk: entities.SDKSettings{
			ClientID: os.Getenv("PAYPAL_CLIENT_ID"),
			Currency: getenvDefault("PAYPAL_CURRENCY", "MXN"),
			Locale:   getenvDefault("PAYPAL_LOCALE", "es_MX"),
			Debug:    isTruthy(os.Getenv("PAYPAL_DEBUG_MODE")),
			Title:    getenvDefault("PAYPAL_TITLE", "PayPal"),
			Style: entities.ButtonStyle{
				Layout: getenvDefault("PAYPAL_BUTTON_LAYOUT", "vertical"),
				Color:  getenvDefault("PAYPAL_BUTTON_COLOR", "gold"),
				Shape:  getenvDefault("PAYPAL_BUTTON_SHAPE", "rect"),
				Label:  getenvDefault("PAYPAL_BUTTON_LABEL", "paypal"),
			},
			EnableVaulting:     isTruthy(os.Getenv("PAYPAL_ENABLE_VAULTING")),
			EnableCardFields:   isTruthy(os.Getenv("PAYPAL_ENABLE_CARD_FIELDS")),
			FraudnetSWI:        os.Getenv("PAYPAL_FRAUDNET_SWI"),
			FraudnetFncls:      os.Getenv("PAYPAL_FRAUDNET_FNCLS"),
			GatewayBaseURL:     baseURL,
			TitleMethodGateway: getenvDefault("PAYPAL_TITLE_METHOD_PAYPAL", "PayPal"),
			TitleMethodCard:    getenvDefault("PAYPAL_TITLE_METHOD_CARD", "Credit or debit card"),
		},
		urls: entities.CheckoutURLs{
			ReturnURL: os.Getenv("CHECKOUT_RETURN_URL"),
			CancelURL: os.Getenv("CHECKOUT_CANCEL_URL"),
			NotifyURL: os.Getenv("CHECKOUT_NOTIFY_URL"),
		},
	}
}

func (s *Settings) IsItemBreakdownEnabled() bool { return s.itemsEnabled }

func (s *Settings) IsPendingHandlingAllowed() bool { return s.handlePending }

func (s *Settings) SDK() entities.SDKSettings { return s.sdk }

func (s *Settings) CheckoutURLs() entities.CheckoutURLs { return s.urls }

// GatewayCredentials returns the client id, secret and base URL for the
// gateway REST client.
func (s *Settings) GatewayCredentials() (string, string, string) {
	return s.clientID, s.clientSecret, s.baseURL
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
