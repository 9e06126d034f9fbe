package entities

// PaymentMethodKind tags the PaymentMethod variant.
type PaymentMethodKind string

const (
	PaymentMethodCard      PaymentMethodKind = "card"
	PaymentMethodSaved     PaymentMethodKind = "saved"
	PaymentMethodGooglePay PaymentMethodKind = "googlePay"
	PaymentMethodApplePay  PaymentMethodKind = "applePay"
)

type CardDetails struct {
	Number      string
	ExpiryMonth string
	ExpiryYear  string
	CVC         string
	NameOnCard  string
}

// PaymentMethod is built per request from the argument bag and never persisted.
//
// Exactly one of Card, SavedID or WalletToken is meaningful, selected by Kind.
type PaymentMethod struct {
	Kind        PaymentMethodKind
	Card        *CardDetails
	StoreCard   bool
	SavedID     string
	WalletToken string
}

func CardPaymentMethod(card CardDetails, storeCard bool) PaymentMethod {
	return PaymentMethod{Kind: PaymentMethodCard, Card: &card, StoreCard: storeCard}
}

func SavedPaymentMethod(id string) PaymentMethod {
	return PaymentMethod{Kind: PaymentMethodSaved, SavedID: id}
}

func WalletPaymentMethod(wallet WalletType, token string) PaymentMethod {
	kind := PaymentMethodGooglePay
	if wallet == WalletApplePay {
		kind = PaymentMethodApplePay
	}
	return PaymentMethod{Kind: kind, WalletToken: token}
}

func (m PaymentMethod) IsWallet() bool {
	return m.Kind == PaymentMethodGooglePay || m.Kind == PaymentMethodApplePay
}
