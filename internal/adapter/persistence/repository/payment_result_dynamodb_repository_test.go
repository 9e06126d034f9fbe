package repository

import (
	"testing"
	"time"

	"ryft_bridge/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaymentResultDynamoRepository_DefaultTable(t *testing.T) {
	r := NewPaymentResultDynamoRepository(nil, "")
	assert.Equal(t, DefaultPaymentResultsTableName, r.tableName)

	r = NewPaymentResultDynamoRepository(nil, "results_test")
	assert.Equal(t, "results_test", r.tableName)
}

func TestPaymentResultItem_SparseSessionIndex(t *testing.T) {
	it, err := toPaymentResultItem(entities.PaymentResultRecord{
		ID:        "tok-1",
		Operation: entities.OperationShowDropIn,
		Status:    entities.ResultCancelled,
		Envelope:  entities.CancelledEnvelope().ToMap(),
		StartedAt: time.Now(),
	})
	require.NoError(t, err)

	av, err := attributevalue.MarshalMap(it)
	require.NoError(t, err)
	_, hasSession := av["session_id"]
	assert.False(t, hasSession, "records without a session must stay out of the index")
	assert.IsType(t, &types.AttributeValueMemberS{}, av["id"])
}

func TestPaymentResultItem_EnvelopeKeepsJSONShape(t *testing.T) {
	started := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	env := entities.ApprovedEnvelope(entities.PaymentSession{ID: "ps_1", Amount: 1000, Currency: "GBP", Status: "Approved"})

	it, err := toPaymentResultItem(entities.PaymentResultRecord{
		ID:         "tok-2",
		Operation:  entities.OperationProcessCardPayment,
		Status:     env.Status,
		SessionID:  "ps_1",
		Envelope:   env.ToMap(),
		StartedAt:  started,
		ResolvedAt: started.Add(time.Second),
	})
	require.NoError(t, err)

	got := fromPaymentResultItem(it)
	assert.Equal(t, "ps_1", got.SessionID)
	assert.Equal(t, entities.ResultApproved, got.Status)
	assert.True(t, got.StartedAt.Equal(started))
	session, ok := got.Envelope["paymentSession"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1000), session["amount"])
}

func TestParseTime_Invalid(t *testing.T) {
	assert.True(t, parseTime("not-a-time").IsZero())
	assert.Equal(t, "", formatTime(time.Time{}))
}
