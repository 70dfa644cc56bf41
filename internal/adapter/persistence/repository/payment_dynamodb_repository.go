package repository

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"buildconnect/internal/domain/entities"
	"buildconnect/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsQuoteIndex       = "quote_id-index"
)

type paymentItem struct {
	ID                 string  `dynamodbav:"id"`
	Quote              string  `dynamodbav:"quote_id"`
	Requirement        string  `dynamodbav:"requirement_id"`
	Payer              string  `dynamodbav:"payer"`
	Amount             float64 `dynamodbav:"amount"`
	Currency           string  `dynamodbav:"currency"`
	Type               string  `dynamodbav:"type"`
	Status             string  `dynamodbav:"status"`
	Date               string  `dynamodbav:"date"`
	ProviderPayloadRaw string  `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (provider payment id, string)
//   - GSI: quote_id-index (PK: quote_id)
//
// The provider response is stored as raw JSON and re-parsed on read.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(paymentItem{
		ID:                 p.ID,
		Quote:              p.Quote,
		Requirement:        p.Requirement,
		Payer:              p.Payer,
		Amount:             p.Amount,
		Currency:           p.Currency,
		Type:               string(p.Type),
		Status:             string(p.Status),
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	})
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsQuoteIndex),
		KeyConditionExpression: aws.String("#quote_id = :quote_id"),
		ExpressionAttributeNames: map[string]string{
			"#quote_id": "quote_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":quote_id": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(out.Items))
	for _, item := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	sort.Slice(payments, func(i, j int) bool {
		return payments[i].Date.After(payments[j].Date)
	})
	return payments, nil
}

func fromPaymentItem(it paymentItem) entities.Payment {
	p := entities.Payment{
		ID:          it.ID,
		Quote:       it.Quote,
		Requirement: it.Requirement,
		Payer:       it.Payer,
		Amount:      it.Amount,
		Currency:    it.Currency,
		Type:        entities.PaymentType(it.Type),
		Status:      entities.PaymentStatus(it.Status),
		Date:        parseOptionalTime(it.Date),
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = json.RawMessage(it.ProviderPayloadRaw)
		var parsed map[string]interface{}
		if err := json.Unmarshal(p.ProviderPayloadRaw, &parsed); err == nil {
			p.ProviderPayload = parsed
		}
	}
	return p
}
