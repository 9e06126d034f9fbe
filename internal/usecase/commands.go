package usecase

import (
	"ryft_bridge/internal/domain/entities"
)

// Commands carry already validated arguments into the bridge.

type DropInCommand struct {
	ClientSecret          string
	SubAccountID          string
	CollectCardholderName bool
	Wallet                *entities.WalletConfiguration
}

type CardPaymentCommand struct {
	ClientSecret string
	Card         entities.CardDetails
	StoreCard    bool
	SubAccountID string
}

type SavedPaymentCommand struct {
	ClientSecret    string
	PaymentMethodID string
	SubAccountID    string
}

type WalletPaymentCommand struct {
	Wallet       entities.WalletType
	ClientSecret string
	Token        string
	SubAccountID string
}

type StatusCommand struct {
	PaymentSessionID string
	ClientSecret     string
	SubAccountID     string
}
