package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ryft_bridge/internal/adapter/http/handlers/mocks"
	"ryft_bridge/internal/domain/entities"
	"ryft_bridge/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newChannelRouter(t *testing.T, platform entities.Platform) (*gin.Engine, *mocks.MockIPaymentBridgeUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentBridgeUseCase(ctrl)
	uc.EXPECT().Platform().Return(entities.ProfileFor(platform)).AnyTimes()

	r := gin.New()
	r.POST("/v1/channel/:method", NewChannelHandler(uc, nil).Invoke)
	return r, uc
}

func call(r *gin.Engine, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/channel/"+method, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return out
}

func TestChannelHandler_Initialize(t *testing.T) {
	t.Run("success replies null", func(t *testing.T) {
		r, uc := newChannelRouter(t, entities.PlatformAndroid)
		uc.EXPECT().Initialize(gomock.Any(), "pk_sandbox_1").Return(nil)

		w := call(r, "initialize", `{"publicApiKey":"pk_sandbox_1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "null" {
			t.Fatalf("expected null body, got %q", w.Body.String())
		}
	})

	t.Run("missing key", func(t *testing.T) {
		r, _ := newChannelRouter(t, entities.PlatformAndroid)

		w := call(r, "initialize", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["code"] != "MISSING_ARG" || body["message"] != "Public API key is required" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("argument bag not an object", func(t *testing.T) {
		r, _ := newChannelRouter(t, entities.PlatformIOS)

		w := call(r, "initialize", `["pk"]`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INVALID_ARGUMENTS" || body["message"] != "Invalid arguments" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestChannelHandler_ProcessCardPayment(t *testing.T) {
	t.Run("replies with the envelope", func(t *testing.T) {
		r, uc := newChannelRouter(t, entities.PlatformAndroid)
		session := entities.PaymentSession{ID: "ps_1", Amount: 1000, Currency: "GBP", Status: "Approved"}
		uc.EXPECT().ProcessCardPayment(gomock.Any(), usecase.CardPaymentCommand{
			ClientSecret: "cs",
			Card:         entities.CardDetails{Number: "4242424242424242", ExpiryMonth: "12", ExpiryYear: "2025", CVC: "123"},
			StoreCard:    true,
		}).Return(usecase.ResolvedCompletion(entities.OperationProcessCardPayment, entities.ApprovedEnvelope(session)), nil)

		w := call(r, "processCardPayment", `{"clientSecret":"cs","paymentMethod":{"cardNumber":"4242424242424242","expiryMonth":"12","expiryYear":"2025","cvc":"123","storeCard":true}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		ps, ok := body["paymentSession"].(map[string]any)
		if body["status"] != "approved" || !ok {
			t.Fatalf("unexpected body: %v", body)
		}
		if ps["id"] != "ps_1" || ps["amount"] != float64(1000) || ps["currency"] != "GBP" || ps["status"] != "Approved" {
			t.Fatalf("unexpected session: %v", ps)
		}
		if w.Header().Get("X-Request-Token") == "" {
			t.Fatalf("expected request token header")
		}
	})

	t.Run("nested field missing is a validation error", func(t *testing.T) {
		r, _ := newChannelRouter(t, entities.PlatformAndroid)

		w := call(r, "processCardPayment", `{"clientSecret":"cs","paymentMethod":{"cardNumber":"4242424242424242"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeBody(t, w)
		details, _ := body["details"].(map[string]any)
		if body["code"] != "MISSING_ARG" || details["field"] != "paymentMethod.expiryMonth" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("slot busy", func(t *testing.T) {
		r, uc := newChannelRouter(t, entities.PlatformAndroid)
		uc.EXPECT().ProcessSavedPaymentMethod(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrOperationInProgress)

		w := call(r, "processSavedPaymentMethod", `{"clientSecret":"cs","paymentMethod":{"id":"pmt_1"}}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "OPERATION_IN_PROGRESS" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("not initialized", func(t *testing.T) {
		r, uc := newChannelRouter(t, entities.PlatformAndroid)
		uc.EXPECT().CheckPaymentStatus(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrNotInitialized)

		w := call(r, "checkPaymentStatus", `{"paymentSessionId":"ps_1","clientSecret":"cs"}`)
		if w.Code != http.StatusPreconditionFailed {
			t.Fatalf("expected 412, got %d", w.Code)
		}
	})
}

func TestChannelHandler_ShowDropIn(t *testing.T) {
	t.Run("missing client secret never reaches usecase", func(t *testing.T) {
		r, _ := newChannelRouter(t, entities.PlatformIOS)

		w := call(r, "showDropIn", `{"collectCardholderName":true}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INVALID_ARGUMENTS" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("no host maps to platform code", func(t *testing.T) {
		r, uc := newChannelRouter(t, entities.PlatformAndroid)
		uc.EXPECT().ShowDropIn(gomock.Any(), usecase.DropInCommand{ClientSecret: "cs"}).Return(nil, usecase.ErrNoUIHost)

		w := call(r, "showDropIn", `{"clientSecret":"cs"}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "NO_ACTIVITY" || body["message"] != "Activity is not available" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		r, uc := newChannelRouter(t, entities.PlatformAndroid)
		uc.EXPECT().ShowDropIn(gomock.Any(), gomock.Any()).Return(usecase.ResolvedCompletion(entities.OperationShowDropIn, entities.CancelledEnvelope()), nil)

		w := call(r, "showDropIn", `{"clientSecret":"cs"}`)
		body := decodeBody(t, w)
		if w.Code != http.StatusOK || body["status"] != "cancelled" || len(body) != 1 {
			t.Fatalf("unexpected reply %d %v", w.Code, body)
		}
	})
}

func TestChannelHandler_WalletPayments(t *testing.T) {
	t.Run("apple pay on ios skips argument validation", func(t *testing.T) {
		r, uc := newChannelRouter(t, entities.PlatformIOS)
		uc.EXPECT().ProcessWalletPayment(gomock.Any(), usecase.WalletPaymentCommand{Wallet: entities.WalletApplePay}).Return(
			usecase.ResolvedCompletion(entities.OperationProcessApplePayPayment,
				entities.UnsupportedEnvelope(entities.WalletAdvisory(entities.WalletApplePay))), nil)

		w := call(r, "processApplePayPayment", ``)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["status"] != "failed" || body["errorMessage"] != "Apple Pay requires user interaction. Please use showDropIn instead." {
			t.Fatalf("unexpected body: %v", body)
		}
		if body["errorCode"] != "UNSUPPORTED_ON_PLATFORM" {
			t.Fatalf("expected errorCode, got %v", body)
		}
	})

	t.Run("apple pay on ios resolves even when the body is not an object", func(t *testing.T) {
		r, uc := newChannelRouter(t, entities.PlatformIOS)
		uc.EXPECT().ProcessWalletPayment(gomock.Any(), usecase.WalletPaymentCommand{Wallet: entities.WalletApplePay}).Return(
			usecase.ResolvedCompletion(entities.OperationProcessApplePayPayment,
				entities.UnsupportedEnvelope(entities.WalletAdvisory(entities.WalletApplePay))), nil)

		w := call(r, "processApplePayPayment", `[1,2]`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["errorCode"] != "UNSUPPORTED_ON_PLATFORM" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("google pay on android validates token", func(t *testing.T) {
		r, _ := newChannelRouter(t, entities.PlatformAndroid)

		w := call(r, "processGooglePayPayment", `{"clientSecret":"cs","paymentMethod":{}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("google pay on android forwards token", func(t *testing.T) {
		r, uc := newChannelRouter(t, entities.PlatformAndroid)
		uc.EXPECT().ProcessWalletPayment(gomock.Any(), usecase.WalletPaymentCommand{
			Wallet:       entities.WalletGooglePay,
			ClientSecret: "cs",
			Token:        "tok",
		}).Return(usecase.ResolvedCompletion(entities.OperationProcessGooglePayPayment,
			entities.RedirectEnvelope("https://shop/return", "https://acs")), nil)

		w := call(r, "processGooglePayPayment", `{"clientSecret":"cs","paymentMethod":{"token":"tok"}}`)
		body := decodeBody(t, w)
		if body["actionType"] != "redirect" || body["redirectUrl"] != "https://acs" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestChannelHandler_UnknownMethod(t *testing.T) {
	r, _ := newChannelRouter(t, entities.PlatformAndroid)

	w := call(r, "refundPayment", `{}`)
	if w.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["notImplemented"] != true {
		t.Fatalf("unexpected body: %v", body)
	}
	if _, ok := body["status"]; ok {
		t.Fatalf("not implemented must not carry an envelope status: %v", body)
	}
}

func TestChannelHandler_UnknownMethodIgnoresBody(t *testing.T) {
	r, _ := newChannelRouter(t, entities.PlatformIOS)

	w := call(r, "refundPayment", `[1,2]`)
	if w.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["notImplemented"] != true {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestChannelHandler_ShowDropInBeforeInitialize(t *testing.T) {
	r, uc := newChannelRouter(t, entities.PlatformIOS)
	uc.EXPECT().ShowDropIn(gomock.Any(), usecase.DropInCommand{ClientSecret: "cs"}).Return(nil, usecase.ErrDropInKeyMissing)

	w := call(r, "showDropIn", `{"clientSecret":"cs"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["code"] != "INVALID_ARGUMENTS" || body["message"] != "Missing required arguments" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestMapBridgeErrorMessages(t *testing.T) {
	ios := entities.ProfileFor(entities.PlatformIOS)

	if got := mapBridgeError(ios, entities.ErrMissingPublicAPIKey); got.Message != "Invalid arguments" {
		t.Fatalf("unexpected initialize message %q", got.Message)
	}
	if got := mapBridgeError(ios, usecase.ErrDropInKeyMissing); got.Message != "Missing required arguments" {
		t.Fatalf("unexpected drop-in message %q", got.Message)
	}
}

func TestMapBridgeError(t *testing.T) {
	android := entities.ProfileFor(entities.PlatformAndroid)
	ios := entities.ProfileFor(entities.PlatformIOS)

	tests := []struct {
		name    string
		profile entities.PlatformProfile
		err     error
		status  int
		code    string
	}{
		{"missing client secret android", android, usecase.ErrInvalidClientSecret, http.StatusBadRequest, "MISSING_ARG"},
		{"missing client secret ios", ios, usecase.ErrInvalidClientSecret, http.StatusBadRequest, "INVALID_ARGUMENTS"},
		{"no host ios", ios, usecase.ErrNoUIHost, http.StatusServiceUnavailable, "NO_VIEW_CONTROLLER"},
		{"vendor client", android, usecase.ErrVendorClient, http.StatusBadGateway, "VENDOR_CLIENT_ERROR"},
		{"drop-in", android, usecase.ErrDropInPresentation, http.StatusConflict, "DROP_IN_ERROR"},
		{"unknown", android, errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapBridgeError(tt.profile, tt.err)
			if got.HTTPStatus != tt.status || got.Code != tt.code {
				t.Fatalf("expected %d/%s, got %d/%s", tt.status, tt.code, got.HTTPStatus, got.Code)
			}
		})
	}
}
