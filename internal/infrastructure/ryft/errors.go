package ryft

import (
	"fmt"
	"strings"
)

// APIError is a non-2xx reply from the Ryft API.
type APIError struct {
	StatusCode int
	RequestID  string
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("ryft api status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("ryft api status %d", e.StatusCode)
}

var declineText = map[string]string{
	"insufficient_funds":      "Insufficient funds",
	"do_not_honor":            "Your card was declined by the issuer",
	"card_declined":           "Your card was declined",
	"expired_card":            "Your card has expired",
	"invalid_card_number":     "Your card number is invalid",
	"incorrect_cvc":           "Your card's security code is incorrect",
	"invalid_expiry_date":     "Your card's expiry date is invalid",
	"lost_or_stolen_card":     "Your card was declined",
	"suspected_fraud":         "Your payment was declined",
	"three_ds_failure":        "3-D Secure authentication failed",
	"processing_error":        "An error occurred while processing your card",
	"transaction_not_allowed": "This transaction is not allowed for your card",
}

// DisplayText turns a session lastError code into a message for the payer.
func DisplayText(code string) string {
	if text, ok := declineText[strings.ToLower(code)]; ok {
		return text
	}
	return "Your payment was declined"
}
