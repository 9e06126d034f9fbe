package entities

// Operation is a method name accepted on the channel.
type Operation string

const (
	OperationInitialize                Operation = "initialize"
	OperationShowDropIn                Operation = "showDropIn"
	OperationProcessCardPayment        Operation = "processCardPayment"
	OperationProcessSavedPaymentMethod Operation = "processSavedPaymentMethod"
	OperationProcessGooglePayPayment   Operation = "processGooglePayPayment"
	OperationProcessApplePayPayment    Operation = "processApplePayPayment"
	OperationCheckPaymentStatus        Operation = "checkPaymentStatus"
)

func WalletOperation(w WalletType) Operation {
	if w == WalletApplePay {
		return OperationProcessApplePayPayment
	}
	return OperationProcessGooglePayPayment
}
