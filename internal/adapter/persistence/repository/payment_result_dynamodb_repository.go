package repository

import (
	"context"
	"encoding/json"

	"ryft_bridge/internal/domain/entities"
	"ryft_bridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultPaymentResultsTableName = "payment_results"
	paymentResultsSessionIDIndex   = "session_id-index"
)

type paymentResultItem struct {
	ID           string         `dynamodbav:"id"`
	Operation    string         `dynamodbav:"operation"`
	Status       string         `dynamodbav:"status"`
	SessionID    string         `dynamodbav:"session_id,omitempty"`
	SubAccountID string         `dynamodbav:"sub_account_id,omitempty"`
	Envelope     map[string]any `dynamodbav:"envelope,omitempty"`
	EnvelopeRaw  string         `dynamodbav:"envelope_raw,omitempty"`
	StartedAt    string         `dynamodbav:"started_at"`
	ResolvedAt   string         `dynamodbav:"resolved_at"`
}

// PaymentResultDynamoRepository persists resolved envelopes in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: session_id-index (PK: session_id)
//
// Records without a session id are written without the attribute, so the
// sparse index only holds results that reached the vendor.

type PaymentResultDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentResultRepository = (*PaymentResultDynamoRepository)(nil)

func NewPaymentResultDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentResultDynamoRepository {
	return &PaymentResultDynamoRepository{
		ddb:       ddb,
		tableName: orDefault(tableName, DefaultPaymentResultsTableName),
	}
}

func (r *PaymentResultDynamoRepository) Create(ctx context.Context, rec entities.PaymentResultRecord) (entities.PaymentResultRecord, error) {
	it, err := toPaymentResultItem(rec)
	if err != nil {
		return entities.PaymentResultRecord{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentResultRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentResultRecord{}, err
	}
	return rec, nil
}

// GetByID returns a zero record when the id is unknown.
func (r *PaymentResultDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentResultRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentResultRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentResultRecord{}, nil
	}

	var it paymentResultItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentResultRecord{}, err
	}
	return fromPaymentResultItem(it), nil
}

func (r *PaymentResultDynamoRepository) ListBySessionID(ctx context.Context, sessionID string) ([]entities.PaymentResultRecord, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentResultsSessionIDIndex),
		KeyConditionExpression: aws.String("session_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: sessionID},
		},
	}

	items := make([]entities.PaymentResultRecord, 0)
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentResultItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromPaymentResultItem(it))
		}
	}
	return items, nil
}

func toPaymentResultItem(rec entities.PaymentResultRecord) (paymentResultItem, error) {
	raw, err := json.Marshal(rec.Envelope)
	if err != nil {
		return paymentResultItem{}, err
	}
	return paymentResultItem{
		ID:           rec.ID,
		Operation:    string(rec.Operation),
		Status:       string(rec.Status),
		SessionID:    rec.SessionID,
		SubAccountID: rec.SubAccountID,
		Envelope:     rec.Envelope,
		EnvelopeRaw:  string(raw),
		StartedAt:    formatTime(rec.StartedAt),
		ResolvedAt:   formatTime(rec.ResolvedAt),
	}, nil
}

// fromPaymentResultItem prefers the raw JSON copy of the envelope so that
// numeric fields come back with their original JSON shape.
func fromPaymentResultItem(it paymentResultItem) entities.PaymentResultRecord {
	env := it.Envelope
	if it.EnvelopeRaw != "" {
		var decoded map[string]any
		if err := json.Unmarshal([]byte(it.EnvelopeRaw), &decoded); err == nil {
			env = decoded
		}
	}
	return entities.PaymentResultRecord{
		ID:           it.ID,
		Operation:    entities.Operation(it.Operation),
		Status:       entities.ResultStatus(it.Status),
		SessionID:    it.SessionID,
		SubAccountID: it.SubAccountID,
		Envelope:     env,
		StartedAt:    parseTime(it.StartedAt),
		ResolvedAt:   parseTime(it.ResolvedAt),
	}
}
