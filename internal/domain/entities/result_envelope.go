package entities

import "encoding/json"

// ResultStatus is the top level status of a Result Envelope.
type ResultStatus string

const (
	ResultApproved       ResultStatus = "approved"
	ResultRequiresAction ResultStatus = "requiresAction"
	ResultFailed         ResultStatus = "failed"
	ResultCancelled      ResultStatus = "cancelled"
)

type ActionType string

const (
	ActionRedirect ActionType = "redirect"
	ActionIdentify ActionType = "identify"
)

const (
	UnknownErrorMessage       = "Unknown error"
	CodeUnsupportedOnPlatform = "UNSUPPORTED_ON_PLATFORM"
)

// ResultEnvelope is the unified response returned for every payment operation.
//
// The serialized form is a flat map whose keys depend on Status; it must stay
// identical across platforms, so serialization always goes through ToMap.
type ResultEnvelope struct {
	Status         ResultStatus
	PaymentSession *SessionProjection
	ActionType     ActionType
	ReturnURL      string
	RedirectURL    string
	ErrorCode      string
	ErrorMessage   string
}

func ApprovedEnvelope(session PaymentSession) ResultEnvelope {
	p := session.Projection()
	return ResultEnvelope{Status: ResultApproved, PaymentSession: &p}
}

func RedirectEnvelope(returnURL, redirectURL string) ResultEnvelope {
	return ResultEnvelope{Status: ResultRequiresAction, ActionType: ActionRedirect, ReturnURL: returnURL, RedirectURL: redirectURL}
}

func IdentifyEnvelope(returnURL string) ResultEnvelope {
	return ResultEnvelope{Status: ResultRequiresAction, ActionType: ActionIdentify, ReturnURL: returnURL}
}

func FailedEnvelope(message string) ResultEnvelope {
	if message == "" {
		message = UnknownErrorMessage
	}
	return ResultEnvelope{Status: ResultFailed, ErrorMessage: message}
}

func UnsupportedEnvelope(message string) ResultEnvelope {
	return ResultEnvelope{Status: ResultFailed, ErrorCode: CodeUnsupportedOnPlatform, ErrorMessage: message}
}

func CancelledEnvelope() ResultEnvelope {
	return ResultEnvelope{Status: ResultCancelled}
}

func (e ResultEnvelope) ToMap() map[string]any {
	out := map[string]any{"status": string(e.Status)}
	switch e.Status {
	case ResultApproved:
		if e.PaymentSession != nil {
			out["paymentSession"] = e.PaymentSession.ToMap()
		}
	case ResultRequiresAction:
		out["actionType"] = string(e.ActionType)
		out["returnUrl"] = e.ReturnURL
		if e.ActionType == ActionRedirect {
			out["redirectUrl"] = e.RedirectURL
		}
	case ResultFailed:
		out["errorMessage"] = e.ErrorMessage
		if e.ErrorCode != "" {
			out["errorCode"] = e.ErrorCode
		}
	}
	return out
}

// SessionID returns the projected session id, if any.
func (e ResultEnvelope) SessionID() string {
	if e.PaymentSession == nil {
		return ""
	}
	return e.PaymentSession.ID
}

func (e ResultEnvelope) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.ToMap())
}
