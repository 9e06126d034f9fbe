package response

import "ryft_bridge/internal/domain/entities"

// NotImplementedResponse answers an unknown method name. It is never a Result Envelope.
type NotImplementedResponse struct {
	NotImplemented bool   `json:"notImplemented"`
	Method         string `json:"method"`
}

func NotImplemented(method string) NotImplementedResponse {
	return NotImplementedResponse{NotImplemented: true, Method: method}
}

// EnvelopeResponse documents the Result Envelope wire shape. Handlers write
// entities.ResultEnvelope.ToMap directly so absent keys stay absent.
type EnvelopeResponse struct {
	Status         string                      `json:"status" example:"approved"`
	PaymentSession *entities.SessionProjection `json:"paymentSession,omitempty"`
	ActionType     string                      `json:"actionType,omitempty" example:"redirect"`
	ReturnURL      string                      `json:"returnUrl,omitempty"`
	RedirectURL    string                      `json:"redirectUrl,omitempty"`
	ErrorCode      string                      `json:"errorCode,omitempty" example:"UNSUPPORTED_ON_PLATFORM"`
	ErrorMessage   string                      `json:"errorMessage,omitempty"`
}

func FromEnvelope(env entities.ResultEnvelope) map[string]any {
	return env.ToMap()
}
