package request

import (
	"errors"
	"strings"

	"ryft_bridge/internal/domain/entities"
)

var (
	ErrInvalidDropInOutcome  = errors.New("invalid drop-in outcome")
	ErrMissingPaymentSession = errors.New("paymentSession is required for approved outcomes")
	ErrMissingRequiredAction = errors.New("requiredAction is required for pendingAction outcomes")
)

// HostAttachRequest is sent by the native shell when its screen becomes active.
type HostAttachRequest struct {
	Name string `json:"name"`
}

type PaymentSessionPayload struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	ReturnURL string `json:"returnUrl"`
}

type RequiredActionPayload struct {
	Type     string                   `json:"type" binding:"required"`
	URL      string                   `json:"url"`
	Identify *entities.IdentifyAction `json:"identify"`
}

// DropInResultRequest is what the drop-in reports back through the UI host.
type DropInResultRequest struct {
	Outcome        string                 `json:"outcome" binding:"required"`
	PaymentSession *PaymentSessionPayload `json:"paymentSession"`
	ErrorMessage   string                 `json:"errorMessage"`
	RequiredAction *RequiredActionPayload `json:"requiredAction"`
}

func (r DropInResultRequest) ToOutcome() (entities.DropInOutcome, error) {
	out := entities.DropInOutcome{
		Kind:         entities.DropInOutcomeKind(strings.TrimSpace(r.Outcome)),
		ErrorMessage: r.ErrorMessage,
	}
	if r.PaymentSession != nil {
		out.Session = &entities.PaymentSession{
			ID:        r.PaymentSession.ID,
			Amount:    r.PaymentSession.Amount,
			Currency:  r.PaymentSession.Currency,
			Status:    r.PaymentSession.Status,
			ReturnURL: r.PaymentSession.ReturnURL,
		}
	}

	switch out.Kind {
	case entities.DropInApproved:
		if out.Session == nil {
			return entities.DropInOutcome{}, ErrMissingPaymentSession
		}
	case entities.DropInFailed, entities.DropInCancelled:
	case entities.DropInPendingAction:
		if r.RequiredAction == nil {
			return entities.DropInOutcome{}, ErrMissingRequiredAction
		}
		actionType := entities.RequiredActionType(r.RequiredAction.Type)
		if actionType != entities.RequiredActionRedirect && actionType != entities.RequiredActionIdentify {
			return entities.DropInOutcome{}, ErrInvalidDropInOutcome
		}
		out.RequiredAction = &entities.RequiredAction{
			Type:     actionType,
			URL:      r.RequiredAction.URL,
			Identify: r.RequiredAction.Identify,
		}
	default:
		return entities.DropInOutcome{}, ErrInvalidDropInOutcome
	}
	return out, nil
}
