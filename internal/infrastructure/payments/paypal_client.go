package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

const (
	endpointOAuthToken   = "/v1/oauth2/token"
	endpointOrders       = "/v2/checkout/orders"
	preferRepresentation = "return=representation"

	// Capture requests carry the fraudnet session id in this header.
	clientMetadataIDHeader = "PayPal-Client-Metadata-Id"

	// Refresh the cached token a minute before the gateway expires it.
	tokenExpirySlack = time.Minute
)

var ErrMissingPayPalCredentials = errors.New("missing PAYPAL_CLIENT_ID / PAYPAL_CLIENT_SECRET")

// PayPalClient talks to the PayPal Commerce orders v2 REST API. All
// network and HTTP-layer failures wrap interfaces.ErrGatewayTransport;
// capture response bodies are returned undecided for the interpreter.
type PayPalClient struct {
	http         *resty.Client
	clientID     string
	clientSecret string
	mockMode     bool

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

var _ interfaces.IGatewayClient = (*PayPalClient)(nil)

func NewPayPalClient(clientID, clientSecret, baseURL string) (*PayPalClient, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &PayPalClient{mockMode: true}, nil
	}

	if clientID == "" || clientSecret == "" {
		log.Printf("[payment][gateway] missing PAYPAL_CLIENT_ID / PAYPAL_CLIENT_SECRET")
		return nil, ErrMissingPayPalCredentials
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json")

	log.Printf("[payment][gateway] PayPal client initialized base_url=%s", baseURL)
	return &PayPalClient{http: client, clientID: clientID, clientSecret: clientSecret}, nil
}

// CreateOrder posts the order-creation payload and returns the gateway
// order id plus the raw response body for audit.
func (g *PayPalClient) CreateOrder(ctx context.Context, req entities.OrderRequest) (string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		raw, _ := json.Marshal(map[string]any{"id": id, "status": "CREATED"})
		log.Printf("[payment][gateway] mock create-order success order_id=%s", id)
		return id, raw, nil
	}

	token, err := g.accessToken(ctx)
	if err != nil {
		return "", nil, err
	}

	var result struct {
		ID string `json:"id"`
	}
	resp, err := g.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Prefer", preferRepresentation).
		SetBody(req).
		SetResult(&result).
		Post(endpointOrders)
	if err != nil {
		log.Printf("[payment][gateway] create-order request failed err=%v", err)
		return "", nil, fmt.Errorf("%w: %v", interfaces.ErrGatewayTransport, err)
	}
	if resp.IsError() {
		log.Printf("[payment][gateway] create-order rejected status=%d body=%s", resp.StatusCode(), resp.String())
		return "", nil, fmt.Errorf("%w: create order status %d", interfaces.ErrGatewayTransport, resp.StatusCode())
	}

	log.Printf("[payment][gateway] create-order success order_id=%s", result.ID)
	return result.ID, json.RawMessage(resp.Body()), nil
}

// CaptureOrder issues the capture call. The stored payment source payload
// is forwarded verbatim and the fraud metadata id travels in the
// PayPal-Client-Metadata-Id header. A gateway response of any HTTP status
// is handed back for interpretation; only transport failures error out.
func (g *PayPalClient) CaptureOrder(ctx context.Context, orderID string, source *entities.PaymentSource) (entities.CaptureResponse, error) {
	if g != nil && g.mockMode {
		captureID := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock capture success order_id=%s capture_id=%s", orderID, captureID)
		return entities.CaptureResponse{
			StatusCode: 201,
			Result: entities.CaptureResult{
				ID:     orderID,
				Status: "COMPLETED",
				PurchaseUnits: []entities.CapturePurchaseUnit{{
					Payments: entities.CapturePayments{
						Captures: []entities.Capture{{ID: captureID, Status: "COMPLETED"}},
					},
				}},
			},
		}, nil
	}

	token, err := g.accessToken(ctx)
	if err != nil {
		return entities.CaptureResponse{}, err
	}

	r := g.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Prefer", preferRepresentation)

	if source != nil {
		if source.FraudMetadataID != "" {
			r.SetHeader(clientMetadataIDHeader, source.FraudMetadataID)
		}
		if len(source.Payload) > 0 {
			r.SetBody(map[string]json.RawMessage{"payment_source": source.Payload})
		}
	}

	resp, err := r.Post(endpointOrders + "/" + orderID + "/capture")
	if err != nil {
		log.Printf("[payment][gateway] capture request failed order_id=%s err=%v", orderID, err)
		return entities.CaptureResponse{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayTransport, err)
	}

	var result entities.CaptureResult
	if jsonErr := json.Unmarshal(resp.Body(), &result); jsonErr != nil {
		log.Printf("[payment][gateway] capture body decode failed order_id=%s status=%d err=%v", orderID, resp.StatusCode(), jsonErr)
	}

	out := entities.CaptureResponse{
		StatusCode: resp.StatusCode(),
		Result:     result,
	}
	if resp.IsError() {
		out.Message = gatewayMessage(resp.Body())
		log.Printf("[payment][gateway] capture rejected order_id=%s status=%d message=%q", orderID, out.StatusCode, out.Message)
	} else {
		log.Printf("[payment][gateway] capture response order_id=%s status=%d", orderID, out.StatusCode)
	}
	return out, nil
}

// accessToken returns a cached OAuth2 client-credentials token, fetching a
// fresh one when the cached token is close to expiry.
func (g *PayPalClient) accessToken(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.token != "" && time.Now().Before(g.tokenExpiry) {
		return g.token, nil
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	resp, err := g.http.R().
		SetContext(ctx).
		SetBasicAuth(g.clientID, g.clientSecret).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		SetResult(&result).
		Post(endpointOAuthToken)
	if err != nil {
		log.Printf("[payment][gateway] token request failed err=%v", err)
		return "", fmt.Errorf("%w: %v", interfaces.ErrGatewayTransport, err)
	}
	if resp.IsError() || result.AccessToken == "" {
		log.Printf("[payment][gateway] token rejected status=%d", resp.StatusCode())
		return "", fmt.Errorf("%w: oauth token status %d", interfaces.ErrGatewayTransport, resp.StatusCode())
	}

	g.token = result.AccessToken
	g.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn)*time.Second - tokenExpirySlack)
	return g.token, nil
}

// gatewayMessage pulls the human message out of a gateway error body.
func gatewayMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return strings.TrimSpace(string(body))
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "PAYPAL_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
