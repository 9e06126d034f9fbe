package entities

import (
	"fmt"
	"strings"
)

// Platform is the native target the bridge is serving.
//
// Both targets share the same channel contract and Result Envelope; they only
// differ in error codes and in which wallets can be paid through the direct API.
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
)

func ParsePlatform(raw string) (Platform, error) {
	switch Platform(strings.ToLower(strings.TrimSpace(raw))) {
	case PlatformAndroid:
		return PlatformAndroid, nil
	case PlatformIOS:
		return PlatformIOS, nil
	}
	return "", fmt.Errorf("unknown platform %q", raw)
}

type WalletType string

const (
	WalletGooglePay WalletType = "googlePay"
	WalletApplePay  WalletType = "applePay"
)

func (w WalletType) DisplayName() string {
	switch w {
	case WalletGooglePay:
		return "Google Pay"
	case WalletApplePay:
		return "Apple Pay"
	}
	return string(w)
}

// PlatformProfile holds the capability flags and error codes of one target.
type PlatformProfile struct {
	Platform Platform

	MissingArgCode    string
	// MissingArgMessage replaces the per-field message when set.
	MissingArgMessage string
	NoHostCode        string
	NoHostMessage     string

	// DirectWallets lists the wallets whose token can be sent straight to the
	// payment-attempt API. Any other wallet needs the interactive drop-in.
	DirectWallets []WalletType

	DropInWallet               WalletType
	WalletConfigKey            string
	RequiresMerchantIdentifier bool
	// DropInRequiresPublicKey rejects showDropIn before initialize. When unset
	// the drop-in is presented with an empty key.
	DropInRequiresPublicKey    bool
	// InitializeMessage is the missing-argument message for initialize.
	InitializeMessage          string
}

const (
	CodeMissingArg       = "MISSING_ARG"
	CodeInvalidArguments = "INVALID_ARGUMENTS"
	CodeNoActivity       = "NO_ACTIVITY"
	CodeNoViewController = "NO_VIEW_CONTROLLER"
)

func ProfileFor(p Platform) PlatformProfile {
	if p == PlatformIOS {
		return PlatformProfile{
			Platform:                   PlatformIOS,
			MissingArgCode:             CodeInvalidArguments,
			MissingArgMessage:          "Missing required arguments",
			NoHostCode:                 CodeNoViewController,
			NoHostMessage:              "No view controller available",
			DropInWallet:               WalletApplePay,
			WalletConfigKey:            "applePayConfig",
			RequiresMerchantIdentifier: true,
			DropInRequiresPublicKey:    true,
			InitializeMessage:          "Invalid arguments",
		}
	}
	return PlatformProfile{
		Platform:        PlatformAndroid,
		MissingArgCode:  CodeMissingArg,
		NoHostCode:      CodeNoActivity,
		NoHostMessage:   "Activity is not available",
		DirectWallets:   []WalletType{WalletGooglePay},
		DropInWallet:    WalletGooglePay,
		WalletConfigKey: "googlePayConfig",
	}
}

func (p PlatformProfile) SupportsDirectWallet(w WalletType) bool {
	for _, direct := range p.DirectWallets {
		if direct == w {
			return true
		}
	}
	return false
}

// WalletAdvisory is the message returned when a wallet cannot be paid directly.
func WalletAdvisory(w WalletType) string {
	return fmt.Sprintf("%s requires user interaction. Please use showDropIn instead.", w.DisplayName())
}
