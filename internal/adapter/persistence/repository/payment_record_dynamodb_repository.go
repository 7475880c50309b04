package repository

import (
	"context"
	"encoding/json"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "checkout_payments"
	paymentsCartIDIndex      = "cart_id-index"
)

type paymentRecordItem struct {
	OrderID            string           `dynamodbav:"order_id"`
	CartID             string           `dynamodbav:"cart_id"`
	Status             string           `dynamodbav:"status"`
	Amount             string           `dynamodbav:"amount"`
	CurrencyCode       string           `dynamodbav:"currency_code"`
	PaymentID          string           `dynamodbav:"payment_id,omitempty"`
	TransactionID      string           `dynamodbav:"transaction_id,omitempty"`
	TransactionPending bool             `dynamodbav:"transaction_pending"`
	TransactionClosed  bool             `dynamodbav:"transaction_closed"`
	SourceKind         string           `dynamodbav:"source_kind,omitempty"`
	SourcePayload      string           `dynamodbav:"source_payload,omitempty"`
	FraudMetadataID    string           `dynamodbav:"fraud_metadata_id,omitempty"`
	CardBrand          string           `dynamodbav:"card_brand,omitempty"`
	CardLastDigits     string           `dynamodbav:"card_last_digits,omitempty"`
	CardType           string           `dynamodbav:"card_type,omitempty"`
	Annotations        []annotationItem `dynamodbav:"annotations,omitempty"`
	CreatedAt          string           `dynamodbav:"created_at"`
	UpdatedAt          string           `dynamodbav:"updated_at"`
}

type annotationItem struct {
	Comment        string `dynamodbav:"comment"`
	NotifyCustomer bool   `dynamodbav:"notify_customer"`
}

// PaymentRecordDynamoRepository persists PaymentRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)
//   - GSI: cart_id-index (PK: cart_id)
type PaymentRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb *dynamodb.Client) *PaymentRecordDynamoRepository {
	return &PaymentRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentRecordDynamoRepository) Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	it := toPaymentRecordItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#oid)"),
		ExpressionAttributeNames: map[string]string{
			"#oid": "order_id",
		},
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	return p, nil
}

func (r *PaymentRecordDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

// Update replaces the whole item so a capture patch and its annotation land
// in a single write.
func (r *PaymentRecordDynamoRepository) Update(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	it := toPaymentRecordItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#oid)"),
		ExpressionAttributeNames: map[string]string{
			"#oid": "order_id",
		},
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	return p, nil
}

func (r *PaymentRecordDynamoRepository) ListByCartID(ctx context.Context, cartID string) ([]entities.PaymentRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsCartIDIndex),
		KeyConditionExpression: aws.String("cart_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: cartID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentRecordItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentRecordItem(it))
	}
	return items, nil
}

func toPaymentRecordItem(p entities.PaymentRecord) paymentRecordItem {
	it := paymentRecordItem{
		OrderID:            p.OrderID,
		CartID:             p.CartID,
		Status:             string(p.Status),
		Amount:             p.Amount,
		CurrencyCode:       p.CurrencyCode,
		PaymentID:          p.PaymentID,
		TransactionID:      p.TransactionID,
		TransactionPending: p.TransactionPending,
		TransactionClosed:  p.TransactionClosed,
		CreatedAt:          p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.Source != nil {
		it.SourceKind = p.Source.Kind
		it.SourcePayload = string(p.Source.Payload)
		it.FraudMetadataID = p.Source.FraudMetadataID
	}
	if p.Card != nil {
		it.CardBrand = p.Card.Brand
		it.CardLastDigits = p.Card.LastDigits
		it.CardType = p.Card.Type
	}
	for _, a := range p.Annotations {
		it.Annotations = append(it.Annotations, annotationItem{Comment: a.Comment, NotifyCustomer: a.NotifyCustomer})
	}
	return it
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	p := entities.PaymentRecord{
		OrderID:            it.OrderID,
		CartID:             it.CartID,
		Status:             entities.PaymentStatus(it.Status),
		Amount:             it.Amount,
		CurrencyCode:       it.CurrencyCode,
		PaymentID:          it.PaymentID,
		TransactionID:      it.TransactionID,
		TransactionPending: it.TransactionPending,
		TransactionClosed:  it.TransactionClosed,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
	if it.SourceKind != "" {
		p.Source = &entities.PaymentSource{
			Kind:            it.SourceKind,
			Payload:         json.RawMessage(it.SourcePayload),
			FraudMetadataID: it.FraudMetadataID,
		}
	}
	if it.CardBrand != "" || it.CardLastDigits != "" || it.CardType != "" {
		p.Card = &entities.CardMetadata{Brand: it.CardBrand, LastDigits: it.CardLastDigits, Type: it.CardType}
	}
	for _, a := range it.Annotations {
		p.Annotations = append(p.Annotations, entities.OrderAnnotation{Comment: a.Comment, NotifyCustomer: a.NotifyCustomer})
	}
	return p
}
