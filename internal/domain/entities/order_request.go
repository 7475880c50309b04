package entities

// OrderRequest is the body of a gateway order-creation call
// (PayPal orders v2, POST /v2/checkout/orders).
type OrderRequest struct {
	Intent             string             `json:"intent"`
	ApplicationContext ApplicationContext `json:"application_context"`
	Payer              Payer              `json:"payer"`
	PurchaseUnits      []PurchaseUnit     `json:"purchase_units"`
}

// ApplicationContext carries the per-request checkout URLs. These are
// computed once per request and passed by value; there is no shared
// process-wide URL state.
type ApplicationContext struct {
	ShippingPreference string `json:"shipping_preference"`
	ReturnURL          string `json:"return_url,omitempty"`
	CancelURL          string `json:"cancel_url,omitempty"`
}

type Payer struct {
	EmailAddress string         `json:"email_address"`
	Name         PayerName      `json:"name"`
	Address      RequestAddress `json:"address"`
}

type PayerName struct {
	GivenName string `json:"given_name"`
	Surname   string `json:"surname"`
}

type PurchaseUnit struct {
	Amount   PurchaseAmount `json:"amount"`
	Items    []RequestItem  `json:"items,omitempty"`
	Shipping *ShippingBlock `json:"shipping,omitempty"`
}

type PurchaseAmount struct {
	CurrencyCode string           `json:"currency_code"`
	Value        string           `json:"value"`
	Breakdown    *AmountBreakdown `json:"breakdown,omitempty"`
}

// AmountBreakdown itemizes the purchase-unit total. Discount is omitted
// entirely when the cart carries no discount.
type AmountBreakdown struct {
	ItemTotal Money  `json:"item_total"`
	Shipping  Money  `json:"shipping"`
	Discount  *Money `json:"discount,omitempty"`
	TaxTotal  Money  `json:"tax_total"`
}

type Money struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type RequestItem struct {
	Name        string `json:"name"`
	SKU         string `json:"sku"`
	Description string `json:"description"`
	UnitAmount  Money  `json:"unit_amount"`
	Tax         Money  `json:"tax"`
	Quantity    int    `json:"quantity"`
}

type ShippingBlock struct {
	Name    RecipientName  `json:"name"`
	Address RequestAddress `json:"address"`
}

type RecipientName struct {
	FullName string `json:"full_name"`
}

// RequestAddress is the gateway address shape: admin_area_2 is the city,
// admin_area_1 the region.
type RequestAddress struct {
	AdminArea2   string `json:"admin_area_2"`
	AdminArea1   string `json:"admin_area_1"`
	PostalCode   string `json:"postal_code"`
	CountryCode  string `json:"country_code"`
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
}
