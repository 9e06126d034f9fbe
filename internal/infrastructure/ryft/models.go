package ryft

import "ryft_bridge/internal/domain/entities"

type cardDetails struct {
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	CVC         string `json:"cvc"`
	Name        string `json:"name,omitempty"`
}

type paymentMethodRef struct {
	ID string `json:"id"`
}

type walletDetails struct {
	Type           string `json:"type"`
	GooglePayToken string `json:"googlePayToken,omitempty"`
	ApplePayToken  string `json:"applePayToken,omitempty"`
}

type paymentMethodOptions struct {
	Store bool `json:"store"`
}

type customerDetails struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
}

// attemptPaymentRequest carries exactly one of CardDetails, PaymentMethod or WalletDetails.
type attemptPaymentRequest struct {
	ClientSecret         string                `json:"clientSecret"`
	CardDetails          *cardDetails          `json:"cardDetails,omitempty"`
	PaymentMethod        *paymentMethodRef     `json:"paymentMethod,omitempty"`
	WalletDetails        *walletDetails        `json:"walletDetails,omitempty"`
	PaymentMethodOptions *paymentMethodOptions `json:"paymentMethodOptions,omitempty"`
	CustomerDetails      *customerDetails      `json:"customerDetails"`
}

type identifyPayload struct {
	SessionID       string `json:"sessionId"`
	SessionSecret   string `json:"sessionSecret"`
	Scheme          string `json:"scheme"`
	PaymentMethodID string `json:"paymentMethodId"`
}

type requiredAction struct {
	Type     string           `json:"type"`
	URL      string           `json:"url,omitempty"`
	Identify *identifyPayload `json:"identify,omitempty"`
}

type paymentSession struct {
	ID             string          `json:"id"`
	Amount         int64           `json:"amount"`
	Currency       string          `json:"currency"`
	Status         string          `json:"status"`
	ReturnURL      string          `json:"returnUrl"`
	LastError      string          `json:"lastError,omitempty"`
	RequiredAction *requiredAction `json:"requiredAction,omitempty"`
}

func (s paymentSession) toEntity() entities.PaymentSession {
	return entities.PaymentSession{
		ID:        s.ID,
		Amount:    s.Amount,
		Currency:  s.Currency,
		Status:    s.Status,
		ReturnURL: s.ReturnURL,
	}
}

func (a requiredAction) toEntity() entities.RequiredAction {
	out := entities.RequiredAction{Type: entities.RequiredActionType(a.Type), URL: a.URL}
	if a.Identify != nil {
		out.Identify = &entities.IdentifyAction{
			SessionID:       a.Identify.SessionID,
			SessionSecret:   a.Identify.SessionSecret,
			Scheme:          a.Identify.Scheme,
			PaymentMethodID: a.Identify.PaymentMethodID,
		}
	}
	return out
}

type apiErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiErrorResponse struct {
	RequestID string           `json:"requestId"`
	Code      string           `json:"code"`
	Errors    []apiErrorDetail `json:"errors"`
}
