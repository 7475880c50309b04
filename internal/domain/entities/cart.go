package entities

import "strings"

// CartSnapshot is the read-only view of a cart taken at checkout time.
//
// It is produced by the cart accessor and never mutated by the checkout
// core; all monetary amounts are in the cart's base currency and already
// computed by the host platform (totals, tax, discounts).
type CartSnapshot struct {
	CartID           string     `json:"cart_id"`
	BaseCurrencyCode string     `json:"base_currency_code"`
	GrandTotal       float64    `json:"grand_total"`
	Subtotal         float64    `json:"subtotal"`
	ShippingAmount   float64    `json:"shipping_amount"`
	TaxAmount        float64    `json:"tax_amount"`
	DiscountAmount   float64    `json:"discount_amount"`
	GiftCardsAmount  float64    `json:"gift_cards_amount"`
	StoreCreditUsed  float64    `json:"store_credit_used"`
	Virtual          bool       `json:"virtual"`
	CustomerEmail    string     `json:"customer_email"`
	ShippingAddress  Address    `json:"shipping_address"`
	BillingAddress   Address    `json:"billing_address"`
	Items            []LineItem `json:"items"`
}

// LineItem is a single cart row. Price and Tax are per-unit, non-negative
// amounts in the cart's base currency. Visible distinguishes rows shown to
// the customer from bundle/kit children and other hidden rows.
type LineItem struct {
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Tax         float64 `json:"tax"`
	Quantity    int     `json:"quantity"`
	Visible     bool    `json:"visible"`
}

// Address is a checkout address as stored by the host platform. Street may
// hold any number of free-text lines; only the first two survive request
// building.
type Address struct {
	Firstname  string   `json:"firstname"`
	Lastname   string   `json:"lastname"`
	Email      string   `json:"email"`
	City       string   `json:"city"`
	RegionCode string   `json:"region_code"`
	Region     string   `json:"region"`
	Postcode   string   `json:"postcode"`
	CountryID  string   `json:"country_id"`
	Street     []string `json:"street"`
}

// VisibleItems returns the rows that belong in a gateway item list.
func (c CartSnapshot) VisibleItems() []LineItem {
	items := make([]LineItem, 0, len(c.Items))
	for _, it := range c.Items {
		if it.Visible {
			items = append(items, it)
		}
	}
	return items
}

// FullName joins firstname and lastname the way the gateway expects a
// recipient name.
func (a Address) FullName() string {
	return a.Firstname + " " + a.Lastname
}

// SplitStreetLines flattens free-text street lines to at most max lines.
// Blank lines are skipped; overflow lines are dropped.
func SplitStreetLines(lines []string, max int) []string {
	out := make([]string, 0, max)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(out) == max {
			break
		}
		out = append(out, line)
	}
	return out
}
