package entities

// OutcomeKind tags a notification emitted by the vendor payment service.
//
// Attempting and Loading are progress notifications; every other kind is
// terminal and is reported exactly once per request.
type OutcomeKind string

const (
	OutcomeAttempting             OutcomeKind = "attempting"
	OutcomeLoading                OutcomeKind = "loading"
	OutcomeApproved               OutcomeKind = "approved"
	OutcomeRequiresRedirect       OutcomeKind = "requiresRedirect"
	OutcomeRequiresIdentification OutcomeKind = "requiresIdentification"
	OutcomePaymentError           OutcomeKind = "paymentError"
	OutcomeTransportError         OutcomeKind = "transportError"
)

type RequiredActionType string

const (
	RequiredActionRedirect RequiredActionType = "Redirect"
	RequiredActionIdentify RequiredActionType = "Identify"
)

// IdentifyAction is the 3-D Secure device identification payload.
type IdentifyAction struct {
	SessionID       string `json:"sessionId"`
	SessionSecret   string `json:"sessionSecret"`
	Scheme          string `json:"scheme"`
	PaymentMethodID string `json:"paymentMethodId"`
}

type RequiredAction struct {
	Type     RequiredActionType `json:"type"`
	URL      string             `json:"url,omitempty"`
	Identify *IdentifyAction    `json:"identify,omitempty"`
}

// PaymentSessionError is the vendor's last error on a session (a decline).
type PaymentSessionError struct {
	Code        string
	DisplayText string
}

// VendorError is an API level failure (bad request, auth, unexpected state).
type VendorError struct {
	Code        string
	DisplayText string
}

type PaymentOutcome struct {
	Kind OutcomeKind

	Session        *PaymentSession
	ReturnURL      string
	RedirectURL    string
	IdentifyAction *RequiredAction
	LastError      *PaymentSessionError
	VendorError    *VendorError
	Cause          error
}

func (o PaymentOutcome) Terminal() bool {
	return o.Kind != OutcomeAttempting && o.Kind != OutcomeLoading
}

func AttemptingOutcome() PaymentOutcome {
	return PaymentOutcome{Kind: OutcomeAttempting}
}

func LoadingOutcome() PaymentOutcome {
	return PaymentOutcome{Kind: OutcomeLoading}
}

func ApprovedOutcome(session PaymentSession) PaymentOutcome {
	return PaymentOutcome{Kind: OutcomeApproved, Session: &session}
}

func RedirectOutcome(returnURL, redirectURL string) PaymentOutcome {
	return PaymentOutcome{Kind: OutcomeRequiresRedirect, ReturnURL: returnURL, RedirectURL: redirectURL}
}

func IdentifyOutcome(returnURL string, action RequiredAction) PaymentOutcome {
	return PaymentOutcome{Kind: OutcomeRequiresIdentification, ReturnURL: returnURL, IdentifyAction: &action}
}

func PaymentErrorOutcome(lastError PaymentSessionError) PaymentOutcome {
	return PaymentOutcome{Kind: OutcomePaymentError, LastError: &lastError}
}

// TransportErrorOutcome reports a failure to obtain a result. Either argument may be nil.
func TransportErrorOutcome(vendorErr *VendorError, cause error) PaymentOutcome {
	return PaymentOutcome{Kind: OutcomeTransportError, VendorError: vendorErr, Cause: cause}
}

// DropInOutcomeKind tags a result reported by the drop-in UI delegate.
type DropInOutcomeKind string

const (
	DropInApproved      DropInOutcomeKind = "approved"
	DropInFailed        DropInOutcomeKind = "failed"
	DropInCancelled     DropInOutcomeKind = "cancelled"
	DropInPendingAction DropInOutcomeKind = "pendingAction"
)

// DropInOutcome is what the presented drop-in reports back.
//
// PendingAction is not terminal: it asks the bridge to continue the 3-D Secure
// challenge inside the drop-in, and the request stays pending.
type DropInOutcome struct {
	Kind           DropInOutcomeKind
	Session        *PaymentSession
	ErrorMessage   string
	RequiredAction *RequiredAction
}

func (o DropInOutcome) Terminal() bool {
	return o.Kind != DropInPendingAction
}
