package response

import (
	"time"

	"ryft_bridge/internal/adapter/uihost"
	"ryft_bridge/internal/domain/entities"
)

type WalletConfigResponse struct {
	Wallet              string `json:"wallet"`
	MerchantName        string `json:"merchantName"`
	MerchantCountryCode string `json:"merchantCountryCode"`
	MerchantIdentifier  string `json:"merchantIdentifier,omitempty"`
}

// PresentationResponse tells the attached shell what drop-in to show.
type PresentationResponse struct {
	ID           string    `json:"id"`
	HostName     string    `json:"hostName,omitempty"`
	PresentedAt  time.Time `json:"presentedAt"`
	AccountType  string    `json:"accountType"`
	ClientSecret string    `json:"clientSecret"`
	SubAccountID string    `json:"subAccountId,omitempty"`
	PublicAPIKey string    `json:"publicApiKey"`

	CollectCardholderName bool                  `json:"collectCardholderName"`
	Wallet                *WalletConfigResponse `json:"walletConfig,omitempty"`

	ReturnURL      string                   `json:"returnUrl,omitempty"`
	RequiredAction *entities.RequiredAction `json:"requiredAction,omitempty"`
}

func FromPresentation(p uihost.Presentation) PresentationResponse {
	out := PresentationResponse{
		ID:                    p.ID,
		HostName:              p.HostName,
		PresentedAt:           p.PresentedAt,
		AccountType:           string(p.Config.AccountType),
		ClientSecret:          p.Config.ClientSecret,
		SubAccountID:          p.Config.SubAccountID,
		PublicAPIKey:          p.Config.PublicAPIKey,
		CollectCardholderName: p.Config.FieldCollection.NameOnCard,
		ReturnURL:             p.ReturnURL,
		RequiredAction:        p.RequiredAction,
	}
	if w := p.Config.Wallet; w != nil {
		out.Wallet = &WalletConfigResponse{
			Wallet:              string(w.Wallet),
			MerchantName:        w.MerchantName,
			MerchantCountryCode: w.MerchantCountryCode,
			MerchantIdentifier:  w.MerchantIdentifier,
		}
	}
	return out
}

type HostStatusResponse struct {
	Attached bool `json:"attached"`
}
