package entities

type AccountType string

const (
	AccountStandard   AccountType = "standard"
	AccountSubAccount AccountType = "subAccount"
)

type FieldCollection struct {
	NameOnCard bool `json:"nameOnCard"`
}

// WalletConfiguration configures the wallet button shown inside the drop-in.
// MerchantIdentifier is only used by Apple Pay.
type WalletConfiguration struct {
	Wallet              WalletType `json:"wallet"`
	MerchantName        string     `json:"merchantName"`
	MerchantCountryCode string     `json:"merchantCountryCode"`
	MerchantIdentifier  string     `json:"merchantIdentifier,omitempty"`
}

// DropInConfiguration is handed to the UI host when presenting the drop-in.
type DropInConfiguration struct {
	AccountType     AccountType
	ClientSecret    string
	SubAccountID    string
	PublicAPIKey    string
	FieldCollection FieldCollection
	Wallet          *WalletConfiguration
}

func StandardAccountPayment(clientSecret, publicAPIKey string, fields FieldCollection, wallet *WalletConfiguration) DropInConfiguration {
	return DropInConfiguration{
		AccountType:     AccountStandard,
		ClientSecret:    clientSecret,
		PublicAPIKey:    publicAPIKey,
		FieldCollection: fields,
		Wallet:          wallet,
	}
}

func SubAccountPayment(clientSecret, subAccountID, publicAPIKey string, fields FieldCollection, wallet *WalletConfiguration) DropInConfiguration {
	return DropInConfiguration{
		AccountType:     AccountSubAccount,
		ClientSecret:    clientSecret,
		SubAccountID:    subAccountID,
		PublicAPIKey:    publicAPIKey,
		FieldCollection: fields,
		Wallet:          wallet,
	}
}
