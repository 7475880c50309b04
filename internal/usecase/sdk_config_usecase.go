package usecase

import (
	"errors"
	"net/url"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	sdkBaseURL                  = "https://www.paypal.com/sdk/js?"
	endpointAccessToken         = "/v1/oauth2/token"
	endpointGenerateClientToken = "/v1/identity/generate-token"
	sdkComponents               = "hosted-fields,buttons"
	sdkIntent                   = "capture"
)

// ErrMethodNotConfigured means the gateway method is inactive for this
// store and the checkout page should not render it.
var ErrMethodNotConfigured = errors.New("payment method not configured")

// ISDKConfigUseCase surfaces the client-side JS SDK configuration to the
// checkout page.
type ISDKConfigUseCase interface {
	Config() (entities.SDKConfig, error)
}

type SDKConfigUseCase struct {
	cfg interfaces.IConfigSource
}

var _ ISDKConfigUseCase = (*SDKConfigUseCase)(nil)

func NewSDKConfigUseCase(cfg interfaces.IConfigSource) *SDKConfigUseCase {
	return &SDKConfigUseCase{cfg: cfg}
}

// Config assembles the SDK script URL plus the presentation and fraud
// screening settings the checkout page needs. The fraudnet session id is
// freshly generated per call.
func (u *SDKConfigUseCase) Config() (entities.SDKConfig, error) {
	sdk := u.cfg.SDK()
	if sdk.ClientID == "" {
		return entities.SDKConfig{}, ErrMethodNotConfigured
	}

	return entities.SDKConfig{
		Title:          sdk.Title,
		SDKURL:         buildSDKURL(sdk),
		Style:          sdk.Style,
		AccessTokenURL: sdk.GatewayBaseURL + endpointAccessToken,
		ClientTokenURL: sdk.GatewayBaseURL + endpointGenerateClientToken,
		Debug:          sdk.Debug,
		CardFields: entities.CardFieldsOpts{
			Enable:         sdk.EnableCardFields,
			EnableVaulting: sdk.EnableVaulting,
		},
		SplitOptions: entities.SplitOptions{
			TitleMethodGateway: sdk.TitleMethodGateway,
			TitleMethodCard:    sdk.TitleMethodCard,
		},
		FraudNet: entities.FraudNetConfig{
			SourceWebIdentifier: sdk.FraudnetSWI,
			Fncls:               sdk.FraudnetFncls,
			SessionID:           uuid.NewString(),
		},
	}, nil
}

func buildSDKURL(sdk entities.SDKSettings) string {
	params := url.Values{}
	params.Set("client-id", sdk.ClientID)
	params.Set("currency", sdk.Currency)
	if sdk.Debug {
		params.Set("debug", "true")
	} else {
		params.Set("debug", "false")
	}
	params.Set("components", sdkComponents)
	params.Set("locale", sdk.Locale)
	params.Set("intent", sdkIntent)

	return sdkBaseURL + params.Encode()
}
