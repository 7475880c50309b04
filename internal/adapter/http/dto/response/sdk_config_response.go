package response

import "storefront_checkout/internal/domain/entities"

// SDKConfigResponse is the checkout-page configuration payload.
type SDKConfigResponse struct {
	Title          string            `json:"title"`
	URLSdk         string            `json:"url_sdk"`
	Style          StyleResponse     `json:"style"`
	AccessTokenURL string            `json:"url_access_token"`
	ClientTokenURL string            `json:"url_generate_client_token"`
	Debug          bool              `json:"debug"`
	CardFields     CardFieldsConfig  `json:"card_fields"`
	SplitOptions   SplitOptionsEntry `json:"split_options"`
	FraudNet       FraudNetEntry     `json:"fraudnet"`
}

type StyleResponse struct {
	Layout string `json:"layout"`
	Color  string `json:"color"`
	Shape  string `json:"shape"`
	Label  string `json:"label"`
}

type CardFieldsConfig struct {
	Enable         bool `json:"enable"`
	EnableVaulting bool `json:"enable_vaulting"`
}

type SplitOptionsEntry struct {
	TitleMethodGateway string `json:"title_method_gateway"`
	TitleMethodCard    string `json:"title_method_card"`
}

type FraudNetEntry struct {
	SourceWebIdentifier string `json:"source_web_identifier"`
	Fncls               string `json:"fncls"`
	SessionIdentifier   string `json:"session_identifier"`
}

func FromSDKConfig(c entities.SDKConfig) SDKConfigResponse {
	return SDKConfigResponse{
		Title:          c.Title,
		URLSdk:         c.SDKURL,
		Style:          StyleResponse{Layout: c.Style.Layout, Color: c.Style.Color, Shape: c.Style.Shape, Label: c.Style.Label},
		AccessTokenURL: c.AccessTokenURL,
		ClientTokenURL: c.ClientTokenURL,
		Debug:          c.Debug,
		CardFields:     CardFieldsConfig{Enable: c.CardFields.Enable, EnableVaulting: c.CardFields.EnableVaulting},
		SplitOptions:   SplitOptionsEntry{TitleMethodGateway: c.SplitOptions.TitleMethodGateway, TitleMethodCard: c.SplitOptions.TitleMethodCard},
		FraudNet:       FraudNetEntry{SourceWebIdentifier: c.FraudNet.SourceWebIdentifier, Fncls: c.FraudNet.Fncls, SessionIdentifier: c.FraudNet.SessionID},
	}
}
