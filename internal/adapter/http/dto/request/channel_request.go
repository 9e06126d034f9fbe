package request

import (
	"fmt"
	"strings"

	"ryft_bridge/internal/domain/entities"
	"ryft_bridge/internal/usecase"
)

// ArgumentError is an immediate call failure caused by the argument bag.
type ArgumentError struct {
	Code    string
	Message string
	Field   string
}

func (e *ArgumentError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
}

// Arguments is the flat key/value bag delivered on the method channel.
type Arguments map[string]any

// InvalidArguments is returned when the bag itself is not a key/value object.
func InvalidArguments() *ArgumentError {
	return &ArgumentError{Code: entities.CodeInvalidArguments, Message: "Invalid arguments"}
}

type argReader struct {
	profile entities.PlatformProfile
	args    map[string]any
	prefix  string
	// message is the missing-argument text for top-level fields.
	message string
}

func newReader(profile entities.PlatformProfile, args Arguments, message string) argReader {
	return argReader{profile: profile, args: args, message: message}
}

func (r argReader) path(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + "." + key
}

func (r argReader) missing(key string) *ArgumentError {
	field := r.path(key)
	msg := r.message
	if r.prefix != "" || msg == "" {
		msg = field + " is required"
	}
	if r.profile.MissingArgMessage != "" {
		msg = r.profile.MissingArgMessage
	}
	return &ArgumentError{Code: r.profile.MissingArgCode, Message: msg, Field: field}
}

func (r argReader) invalid(key, want string) *ArgumentError {
	field := r.path(key)
	return &ArgumentError{
		Code:    entities.CodeInvalidArguments,
		Message: fmt.Sprintf("%s must be %s", field, want),
		Field:   field,
	}
}

// lookup treats nil values as absent.
func (r argReader) lookup(key string) (any, bool) {
	v, ok := r.args[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (r argReader) requireString(key string) (string, error) {
	v, ok := r.lookup(key)
	if !ok {
		return "", r.missing(key)
	}
	s, ok := v.(string)
	if !ok {
		return "", r.invalid(key, "a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", r.missing(key)
	}
	return s, nil
}

// optionalString returns "" for absent or empty values.
func (r argReader) optionalString(key string) (string, error) {
	v, ok := r.lookup(key)
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", r.invalid(key, "a string")
	}
	return strings.TrimSpace(s), nil
}

func (r argReader) optionalBool(key string) (bool, error) {
	v, ok := r.lookup(key)
	if !ok {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, r.invalid(key, "a boolean")
	}
	return b, nil
}

func (r argReader) child(key string, m map[string]any) argReader {
	return argReader{profile: r.profile, args: m, prefix: r.path(key)}
}

func (r argReader) requireMap(key string) (argReader, error) {
	v, ok := r.lookup(key)
	if !ok {
		return argReader{}, r.missing(key)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return argReader{}, r.invalid(key, "an object")
	}
	return r.child(key, m), nil
}

func (r argReader) optionalMap(key string) (argReader, bool, error) {
	v, ok := r.lookup(key)
	if !ok {
		return argReader{}, false, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return argReader{}, false, r.invalid(key, "an object")
	}
	return r.child(key, m), true, nil
}

func DecodeInitialize(profile entities.PlatformProfile, args Arguments) (string, error) {
	if profile.InitializeMessage != "" {
		profile.MissingArgMessage = profile.InitializeMessage
	}
	r := newReader(profile, args, "Public API key is required")
	return r.requireString("publicApiKey")
}

func DecodeShowDropIn(profile entities.PlatformProfile, args Arguments) (usecase.DropInCommand, error) {
	r := newReader(profile, args, "Client secret is required")
	var cmd usecase.DropInCommand
	var err error

	if cmd.ClientSecret, err = r.requireString("clientSecret"); err != nil {
		return usecase.DropInCommand{}, err
	}
	if cmd.SubAccountID, err = r.optionalString("subAccountId"); err != nil {
		return usecase.DropInCommand{}, err
	}
	if cmd.CollectCardholderName, err = r.optionalBool("collectCardholderName"); err != nil {
		return usecase.DropInCommand{}, err
	}
	if cmd.Wallet, err = decodeWalletConfig(r); err != nil {
		return usecase.DropInCommand{}, err
	}
	return cmd, nil
}

// decodeWalletConfig reads walletConfig, or the platform-specific key
// (googlePayConfig / applePayConfig) when walletConfig is absent.
func decodeWalletConfig(r argReader) (*entities.WalletConfiguration, error) {
	w, ok, err := r.optionalMap("walletConfig")
	if err != nil {
		return nil, err
	}
	if !ok && r.profile.WalletConfigKey != "" {
		if w, ok, err = r.optionalMap(r.profile.WalletConfigKey); err != nil {
			return nil, err
		}
	}
	if !ok {
		return nil, nil
	}

	cfg := &entities.WalletConfiguration{Wallet: r.profile.DropInWallet}
	if cfg.MerchantName, err = w.requireString("merchantName"); err != nil {
		return nil, err
	}
	if cfg.MerchantCountryCode, err = w.requireString("merchantCountryCode"); err != nil {
		return nil, err
	}
	if r.profile.RequiresMerchantIdentifier {
		if cfg.MerchantIdentifier, err = w.requireString("merchantIdentifier"); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

const paymentArgsMessage = "Client secret and payment method are required"

func DecodeCardPayment(profile entities.PlatformProfile, args Arguments) (usecase.CardPaymentCommand, error) {
	r := newReader(profile, args, paymentArgsMessage)
	var cmd usecase.CardPaymentCommand
	var err error

	if cmd.ClientSecret, err = r.requireString("clientSecret"); err != nil {
		return usecase.CardPaymentCommand{}, err
	}
	pm, err := r.requireMap("paymentMethod")
	if err != nil {
		return usecase.CardPaymentCommand{}, err
	}
	if cmd.Card.Number, err = pm.requireString("cardNumber"); err != nil {
		return usecase.CardPaymentCommand{}, err
	}
	if cmd.Card.ExpiryMonth, err = pm.requireString("expiryMonth"); err != nil {
		return usecase.CardPaymentCommand{}, err
	}
	if cmd.Card.ExpiryYear, err = pm.requireString("expiryYear"); err != nil {
		return usecase.CardPaymentCommand{}, err
	}
	if cmd.Card.CVC, err = pm.requireString("cvc"); err != nil {
		return usecase.CardPaymentCommand{}, err
	}
	if cmd.Card.NameOnCard, err = pm.optionalString("cardholderName"); err != nil {
		return usecase.CardPaymentCommand{}, err
	}
	if cmd.StoreCard, err = pm.optionalBool("storeCard"); err != nil {
		return usecase.CardPaymentCommand{}, err
	}
	if cmd.SubAccountID, err = r.optionalString("subAccountId"); err != nil {
		return usecase.CardPaymentCommand{}, err
	}
	return cmd, nil
}

func DecodeSavedPayment(profile entities.PlatformProfile, args Arguments) (usecase.SavedPaymentCommand, error) {
	r := newReader(profile, args, paymentArgsMessage)
	var cmd usecase.SavedPaymentCommand
	var err error

	if cmd.ClientSecret, err = r.requireString("clientSecret"); err != nil {
		return usecase.SavedPaymentCommand{}, err
	}
	pm, err := r.requireMap("paymentMethod")
	if err != nil {
		return usecase.SavedPaymentCommand{}, err
	}
	if cmd.PaymentMethodID, err = pm.requireString("id"); err != nil {
		return usecase.SavedPaymentCommand{}, err
	}
	if cmd.SubAccountID, err = r.optionalString("subAccountId"); err != nil {
		return usecase.SavedPaymentCommand{}, err
	}
	return cmd, nil
}

func DecodeWalletPayment(profile entities.PlatformProfile, wallet entities.WalletType, args Arguments) (usecase.WalletPaymentCommand, error) {
	r := newReader(profile, args, paymentArgsMessage)
	cmd := usecase.WalletPaymentCommand{Wallet: wallet}
	var err error

	if cmd.ClientSecret, err = r.requireString("clientSecret"); err != nil {
		return usecase.WalletPaymentCommand{}, err
	}
	pm, err := r.requireMap("paymentMethod")
	if err != nil {
		return usecase.WalletPaymentCommand{}, err
	}
	if cmd.Token, err = pm.requireString("token"); err != nil {
		return usecase.WalletPaymentCommand{}, err
	}
	if cmd.SubAccountID, err = r.optionalString("subAccountId"); err != nil {
		return usecase.WalletPaymentCommand{}, err
	}
	return cmd, nil
}

func DecodeCheckPaymentStatus(profile entities.PlatformProfile, args Arguments) (usecase.StatusCommand, error) {
	r := newReader(profile, args, "Payment session ID and client secret are required")
	var cmd usecase.StatusCommand
	var err error

	if cmd.PaymentSessionID, err = r.requireString("paymentSessionId"); err != nil {
		return usecase.StatusCommand{}, err
	}
	if cmd.ClientSecret, err = r.requireString("clientSecret"); err != nil {
		return usecase.StatusCommand{}, err
	}
	if cmd.SubAccountID, err = r.optionalString("subAccountId"); err != nil {
		return usecase.StatusCommand{}, err
	}
	return cmd, nil
}
