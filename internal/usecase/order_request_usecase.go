package usecase

import (
	"errors"
	"log"

	"storefront_checkout/internal/domain/entities"
)

const (
	orderIntentCapture         = "CAPTURE"
	shippingPreferenceProvided = "SET_PROVIDED_ADDRESS"
	regionFallback             = "n/a"
	maxAddressLines            = 2
)

var (
	ErrMissingCurrencyCode = errors.New("cart snapshot has no base currency code")
	ErrMissingGrandTotal   = errors.New("cart snapshot has no grand total")
)

// OrderRequestFlags are the merchant toggles that shape an order request.
type OrderRequestFlags struct {
	ItemsEnabled bool
}

// IOrderRequestUseCase builds a gateway order-creation payload from a cart
// snapshot. The build is a pure transform; it performs no network calls.
type IOrderRequestUseCase interface {
	Build(cart entities.CartSnapshot, urls entities.CheckoutURLs, flags OrderRequestFlags) (entities.OrderRequest, error)
}

type OrderRequestUseCase struct{}

var _ IOrderRequestUseCase = (*OrderRequestUseCase)(nil)

func NewOrderRequestUseCase() *OrderRequestUseCase {
	return &OrderRequestUseCase{}
}

// Build assembles the order-creation request. The currency code is passed
// through verbatim and every monetary value goes through the shared
// two-digit formatter.
//
// Payer name, email and address always come from the shipping address,
// including billing-oriented flows. Changing this would break parity with
// the storefront checkout, so billing data stays unused here.
func (u *OrderRequestUseCase) Build(cart entities.CartSnapshot, urls entities.CheckoutURLs, flags OrderRequestFlags) (entities.OrderRequest, error) {
	if cart.BaseCurrencyCode == "" {
		return entities.OrderRequest{}, ErrMissingCurrencyCode
	}
	if cart.GrandTotal <= 0 {
		return entities.OrderRequest{}, ErrMissingGrandTotal
	}

	currency := cart.BaseCurrencyCode
	unit := entities.PurchaseUnit{
		Amount: entities.PurchaseAmount{
			CurrencyCode: currency,
			Value:        entities.FormatAmount(cart.GrandTotal),
		},
	}

	if flags.ItemsEnabled {
		unit.Items = buildItems(cart)
		unit.Amount.Breakdown = &entities.AmountBreakdown{
			ItemTotal: entities.Money{CurrencyCode: currency, Value: entities.FormatAmount(cart.Subtotal)},
			Shipping:  entities.Money{CurrencyCode: currency, Value: entities.FormatAmount(cart.ShippingAmount)},
			Discount:  discountAmount(cart),
			TaxTotal:  entities.Money{CurrencyCode: currency, Value: entities.FormatAmount(cart.TaxAmount)},
		}
		checkBreakdownReconciles(cart, unit.Amount.Breakdown)
	}

	if !cart.Virtual {
		unit.Shipping = &entities.ShippingBlock{
			Name:    entities.RecipientName{FullName: cart.ShippingAddress.FullName()},
			Address: prepareAddress(cart.ShippingAddress),
		}
	}

	return entities.OrderRequest{
		Intent: orderIntentCapture,
		ApplicationContext: entities.ApplicationContext{
			ShippingPreference: shippingPreferenceProvided,
			ReturnURL:          urls.ReturnURL,
			CancelURL:          urls.CancelURL,
		},
		Payer: entities.Payer{
			EmailAddress: cart.ShippingAddress.Email,
			Name: entities.PayerName{
				GivenName: cart.ShippingAddress.Firstname,
				Surname:   cart.ShippingAddress.Lastname,
			},
			Address: prepareAddress(cart.ShippingAddress),
		},
		PurchaseUnits: []entities.PurchaseUnit{unit},
	}, nil
}

// buildItems maps the visible cart rows one-to-one; bundle children and
// other hidden rows are excluded, nothing is aggregated.
func buildItems(cart entities.CartSnapshot) []entities.RequestItem {
	currency := cart.BaseCurrencyCode
	items := make([]entities.RequestItem, 0, len(cart.Items))
	for _, it := range cart.VisibleItems() {
		items = append(items, entities.RequestItem{
			Name:        it.Name,
			SKU:         it.SKU,
			Description: it.Description,
			UnitAmount:  entities.Money{CurrencyCode: currency, Value: entities.FormatAmount(it.Price)},
			Tax:         entities.Money{CurrencyCode: currency, Value: entities.FormatAmount(it.Tax)},
			Quantity:    it.Quantity,
		})
	}
	return items
}

// discountAmount folds the cart discount, gift cards and store credit into
// the single combined discount line the gateway accepts. A zero discount
// yields no line at all.
func discountAmount(cart entities.CartSnapshot) *entities.Money {
	if cart.DiscountAmount == 0 {
		return nil
	}

	discount := cart.DiscountAmount
	if discount < 0 {
		discount = -discount
	}
	discount += cart.GiftCardsAmount
	discount += cart.StoreCreditUsed

	return &entities.Money{
		CurrencyCode: cart.BaseCurrencyCode,
		Value:        entities.FormatAmount(discount),
	}
}

// checkBreakdownReconciles warns when item_total + shipping + tax_total -
// discount drifts from the grand total. The host cart owns the totals, so a
// mismatch is logged for audit but never fails the build.
func checkBreakdownReconciles(cart entities.CartSnapshot, b *entities.AmountBreakdown) {
	combined := 0.0
	if b.Discount != nil {
		d := cart.DiscountAmount
		if d < 0 {
			d = -d
		}
		combined = d + cart.GiftCardsAmount + cart.StoreCreditUsed
	}
	expected := cart.Subtotal + cart.ShippingAmount + cart.TaxAmount - combined
	if entities.FormatAmount(expected) != entities.FormatAmount(cart.GrandTotal) {
		log.Printf("[checkout][builder] breakdown mismatch cart_id=%s expected=%s grand_total=%s",
			cart.CartID, entities.FormatAmount(expected), entities.FormatAmount(cart.GrandTotal))
	}
}

// prepareAddress converts a host address to the gateway shape: region code
// preferred, then free-text region, then the literal "n/a"; street lines
// flattened to at most two.
func prepareAddress(addr entities.Address) entities.RequestAddress {
	region := addr.RegionCode
	if region == "" {
		region = addr.Region
	}
	if region == "" {
		region = regionFallback
	}

	lines := entities.SplitStreetLines(addr.Street, maxAddressLines)
	line1, line2 := "", ""
	if len(lines) > 0 {
		line1 = lines[0]
	}
	if len(lines) > 1 {
		line2 = lines[1]
	}

	return entities.RequestAddress{
		AdminArea2:   addr.City,
		AdminArea1:   region,
		PostalCode:   addr.Postcode,
		CountryCode:  addr.CountryID,
		AddressLine1: line1,
		AddressLine2: line2,
	}
}
