package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultEnvelope_ToMap(t *testing.T) {
	session := PaymentSession{ID: "ps_1", Amount: 1500, Currency: "GBP", Status: "Approved", ReturnURL: "https://return"}

	t.Run("approved projects four session fields", func(t *testing.T) {
		got := ApprovedEnvelope(session).ToMap()
		assert.Equal(t, map[string]any{
			"status": "approved",
			"paymentSession": map[string]any{
				"id":       "ps_1",
				"amount":   int64(1500),
				"currency": "GBP",
				"status":   "Approved",
			},
		}, got)
	})

	t.Run("redirect", func(t *testing.T) {
		got := RedirectEnvelope("https://return", "https://acs").ToMap()
		assert.Equal(t, map[string]any{
			"status":      "requiresAction",
			"actionType":  "redirect",
			"returnUrl":   "https://return",
			"redirectUrl": "https://acs",
		}, got)
	})

	t.Run("identify keeps only the return url", func(t *testing.T) {
		got := IdentifyEnvelope("https://return").ToMap()
		assert.Equal(t, map[string]any{
			"status":     "requiresAction",
			"actionType": "identify",
			"returnUrl":  "https://return",
		}, got)
	})

	t.Run("failed falls back to unknown error", func(t *testing.T) {
		assert.Equal(t, map[string]any{"status": "failed", "errorMessage": "Unknown error"}, FailedEnvelope("").ToMap())
	})

	t.Run("unsupported carries a code", func(t *testing.T) {
		got := UnsupportedEnvelope(WalletAdvisory(WalletApplePay)).ToMap()
		assert.Equal(t, map[string]any{
			"status":       "failed",
			"errorCode":    "UNSUPPORTED_ON_PLATFORM",
			"errorMessage": "Apple Pay requires user interaction. Please use showDropIn instead.",
		}, got)
	})

	t.Run("cancelled", func(t *testing.T) {
		assert.Equal(t, map[string]any{"status": "cancelled"}, CancelledEnvelope().ToMap())
	})
}

func TestResultEnvelope_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(ApprovedEnvelope(PaymentSession{ID: "ps_1", Amount: 10, Currency: "EUR", Status: "Captured"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"approved","paymentSession":{"id":"ps_1","amount":10,"currency":"EUR","status":"Captured"}}`, string(b))

	b, err = json.Marshal(IdentifyEnvelope(""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"requiresAction","actionType":"identify","returnUrl":""}`, string(b))
}

func TestResultEnvelope_SessionID(t *testing.T) {
	assert.Equal(t, "ps_9", ApprovedEnvelope(PaymentSession{ID: "ps_9"}).SessionID())
	assert.Equal(t, "", CancelledEnvelope().SessionID())
}
