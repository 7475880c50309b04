package entities

// SDKSettings is the merchant-side gateway configuration backing the
// checkout page: credentials, presentation and feature toggles.
type SDKSettings struct {
	ClientID            string      `json:"client_id"`
	Currency            string      `json:"currency"`
	Locale              string      `json:"locale"`
	Debug               bool        `json:"debug"`
	Title               string      `json:"title"`
	Style               ButtonStyle `json:"style"`
	EnableVaulting      bool        `json:"enable_vaulting"`
	EnableCardFields    bool        `json:"enable_card_fields"`
	FraudnetSWI         string      `json:"fraudnet_swi"`
	FraudnetFncls       string      `json:"fraudnet_fncls"`
	GatewayBaseURL      string      `json:"gateway_base_url"`
	TitleMethodGateway  string      `json:"title_method_gateway"`
	TitleMethodCard     string      `json:"title_method_card"`
}

// ButtonStyle mirrors the gateway JS SDK button style options.
type ButtonStyle struct {
	Layout string `json:"layout"`
	Color  string `json:"color"`
	Shape  string `json:"shape"`
	Label  string `json:"label"`
}

// CheckoutURLs are the host-platform URLs attached to a single order
// request. They are computed per call and passed by value.
type CheckoutURLs struct {
	ReturnURL string `json:"return_url"`
	CancelURL string `json:"cancel_url"`
	NotifyURL string `json:"notify_url"`
}

// SDKConfig is the payload handed to the checkout page so it can load and
// drive the gateway JS SDK.
type SDKConfig struct {
	Title             string         `json:"title"`
	SDKURL            string         `json:"url_sdk"`
	Style             ButtonStyle    `json:"style"`
	AccessTokenURL    string         `json:"url_access_token"`
	ClientTokenURL    string         `json:"url_generate_client_token"`
	Debug             bool           `json:"debug"`
	CardFields        CardFieldsOpts `json:"card_fields"`
	SplitOptions      SplitOptions   `json:"split_options"`
	FraudNet          FraudNetConfig `json:"fraudnet"`
}

type CardFieldsOpts struct {
	Enable         bool `json:"enable"`
	EnableVaulting bool `json:"enable_vaulting"`
}

type SplitOptions struct {
	TitleMethodGateway string `json:"title_method_gateway"`
	TitleMethodCard    string `json:"title_method_card"`
}

// FraudNetConfig identifies the checkout session to the gateway's fraud
// screening; SessionID must be unique per page view.
type FraudNetConfig struct {
	SourceWebIdentifier string `json:"source_web_identifier"`
	Fncls               string `json:"fncls"`
	SessionID           string `json:"session_identifier"`
}
