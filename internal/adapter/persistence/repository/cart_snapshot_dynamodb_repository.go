package repository

import (
	"context"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCartsTableName = "checkout_carts"

type cartSnapshotItem struct {
	CartID           string         `dynamodbav:"cart_id"`
	BaseCurrencyCode string         `dynamodbav:"base_currency_code"`
	GrandTotal       float64        `dynamodbav:"grand_total"`
	Subtotal         float64        `dynamodbav:"subtotal"`
	ShippingAmount   float64        `dynamodbav:"shipping_amount"`
	TaxAmount        float64        `dynamodbav:"tax_amount"`
	DiscountAmount   float64        `dynamodbav:"discount_amount"`
	GiftCardsAmount  float64        `dynamodbav:"gift_cards_amount"`
	StoreCreditUsed  float64        `dynamodbav:"store_credit_used"`
	Virtual          bool           `dynamodbav:"virtual"`
	CustomerEmail    string         `dynamodbav:"customer_email"`
	ShippingAddress  addressItem    `dynamodbav:"shipping_address"`
	BillingAddress   addressItem    `dynamodbav:"billing_address"`
	Items            []lineItemItem `dynamodbav:"items,omitempty"`
}

type addressItem struct {
	Firstname  string   `dynamodbav:"firstname"`
	Lastname   string   `dynamodbav:"lastname"`
	Email      string   `dynamodbav:"email,omitempty"`
	City       string   `dynamodbav:"city"`
	RegionCode string   `dynamodbav:"region_code,omitempty"`
	Region     string   `dynamodbav:"region,omitempty"`
	Postcode   string   `dynamodbav:"postcode"`
	CountryID  string   `dynamodbav:"country_id"`
	Street     []string `dynamodbav:"street,omitempty"`
}

type lineItemItem struct {
	Name        string  `dynamodbav:"name"`
	SKU         string  `dynamodbav:"sku"`
	Description string  `dynamodbav:"description,omitempty"`
	Price       float64 `dynamodbav:"price"`
	Tax         float64 `dynamodbav:"tax"`
	Quantity    int     `dynamodbav:"quantity"`
	Visible     bool    `dynamodbav:"visible"`
}

// CartSnapshotDynamoRepository reads the cart snapshots the host platform
// publishes at checkout time.
//
// Table requirements:
//   - PK: cart_id (string)
type CartSnapshotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICartAccessor = (*CartSnapshotDynamoRepository)(nil)

func NewCartSnapshotDynamoRepository(ddb *dynamodb.Client) *CartSnapshotDynamoRepository {
	return &CartSnapshotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARTS_TABLE", defaultCartsTableName),
	}
}

// CurrentSnapshot returns the published snapshot for a cart; a zero-ID
// snapshot means no active cart.
func (r *CartSnapshotDynamoRepository) CurrentSnapshot(ctx context.Context, cartID string) (entities.CartSnapshot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"cart_id": &types.AttributeValueMemberS{Value: cartID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CartSnapshot{}, err
	}
	if len(out.Item) == 0 {
		return entities.CartSnapshot{}, nil
	}

	var it cartSnapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CartSnapshot{}, err
	}
	return fromCartSnapshotItem(it), nil
}

func fromCartSnapshotItem(it cartSnapshotItem) entities.CartSnapshot {
	cart := entities.CartSnapshot{
		CartID:           it.CartID,
		BaseCurrencyCode: it.BaseCurrencyCode,
		GrandTotal:       it.GrandTotal,
		Subtotal:         it.Subtotal,
		ShippingAmount:   it.ShippingAmount,
		TaxAmount:        it.TaxAmount,
		DiscountAmount:   it.DiscountAmount,
		GiftCardsAmount:  it.GiftCardsAmount,
		StoreCreditUsed:  it.StoreCreditUsed,
		Virtual:          it.Virtual,
		CustomerEmail:    it.CustomerEmail,
		ShippingAddress:  fromAddressItem(it.ShippingAddress),
		BillingAddress:   fromAddressItem(it.BillingAddress),
	}
	for _, li := range it.Items {
		cart.Items = append(cart.Items, entities.LineItem{
			Name:        li.Name,
			SKU:         li.SKU,
			Description: li.Description,
			Price:       li.Price,
			Tax:         li.Tax,
			Quantity:    li.Quantity,
			Visible:     li.Visible,
		})
	}
	return cart
}

func fromAddressItem(a addressItem) entities.Address {
	return entities.Address{
		Firstname:  a.Firstname,
		Lastname:   a.Lastname,
		Email:      a.Email,
		City:       a.City,
		RegionCode: a.RegionCode,
		Region:     a.Region,
		Postcode:   a.Postcode,
		CountryID:  a.CountryID,
		Street:     a.Street,
	}
}
