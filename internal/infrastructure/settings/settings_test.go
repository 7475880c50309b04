package settings

import "testing"

func clearCheckoutEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PAYPAL_CLIENT_ID", "PAYPAL_CLIENT_SECRET", "PAYPAL_BASE_URL",
		"PAYPAL_ENABLE_ITEMS", "PAYPAL_HANDLE_PENDING_PAYMENTS",
		"PAYPAL_DEBUG_MODE", "PAYPAL_CURRENCY", "PAYPAL_LOCALE",
		"CHECKOUT_RETURN_URL", "CHECKOUT_CANCEL_URL", "CHECKOUT_NOTIFY_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestNewFromEnv_Defaults(t *testing.T) {
	clearCheckoutEnv(t)

	s := NewFromEnv()
	if s.IsItemBreakdownEnabled() || s.IsPendingHandlingAllowed() {
		t.Fatalf("toggles should default off")
	}

	sdk := s.SDK()
	if sdk.Currency != "MXN" || sdk.Locale != "es_MX" {
		t.Fatalf("unexpected sdk defaults: %+v", sdk)
	}
	if sdk.GatewayBaseURL != "https://api-m.sandbox.paypal.com" {
		t.Fatalf("unexpected base url %q", sdk.GatewayBaseURL)
	}
	if sdk.Style.Layout != "vertical" || sdk.Style.Color != "gold" {
		t.Fatalf("unexpected button style: %+v", sdk.Style)
	}

	_, _, baseURL := s.GatewayCredentials()
	if baseURL != "https://api-m.sandbox.paypal.com" {
		t.Fatalf("unexpected credentials base url %q", baseURL)
	}
}

func TestNewFromEnv_Overrides(t *testing.T) {
	clearCheckoutEnv(t)
	t.Setenv("PAYPAL_CLIENT_ID", "client-1")
	t.Setenv("PAYPAL_CLIENT_SECRET", "secret-1")
	t.Setenv("PAYPAL_BASE_URL", "https://api-m.paypal.com")
	t.Setenv("PAYPAL_ENABLE_ITEMS", "true")
	t.Setenv("PAYPAL_HANDLE_PENDING_PAYMENTS", "1")
	t.Setenv("PAYPAL_CURRENCY", "USD")
	t.Setenv("CHECKOUT_RETURN_URL", "https://store.example.com/return")

	s := NewFromEnv()
	if !s.IsItemBreakdownEnabled() || !s.IsPendingHandlingAllowed() {
		t.Fatalf("toggles not picked up")
	}
	if s.SDK().ClientID != "client-1" || s.SDK().Currency != "USD" {
		t.Fatalf("unexpected sdk settings: %+v", s.SDK())
	}
	if s.CheckoutURLs().ReturnURL != "https://store.example.com/return" {
		t.Fatalf("unexpected urls: %+v", s.CheckoutURLs())
	}

	id, secret, baseURL := s.GatewayCredentials()
	if id != "client-1" || secret != "secret-1" || baseURL != "https://api-m.paypal.com" {
		t.Fatalf("unexpected credentials: %s %s %s", id, secret, baseURL)
	}
}

func TestIsTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", " yes ", "on"} {
		if !isTruthy(v) {
			t.Fatalf("expected %q to be truthy", v)
		}
	}
	for _, v := range []string{"", "0", "false", "off", "nope"} {
		if isTruthy(v) {
			t.Fatalf("expected %q to be falsy", v)
		}
	}
}
