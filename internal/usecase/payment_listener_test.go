package usecase

import (
	"errors"
	"net/url"
	"testing"

	"ryft_bridge/internal/domain/entities"
)

func TestEnvelopeForOutcome(t *testing.T) {
	session := entities.PaymentSession{ID: "ps_1", Amount: 1000, Currency: "GBP", Status: "Approved"}

	tests := []struct {
		name     string
		outcome  entities.PaymentOutcome
		terminal bool
		want     map[string]any
	}{
		{name: "attempting", outcome: entities.AttemptingOutcome()},
		{name: "loading", outcome: entities.LoadingOutcome()},
		{
			name:     "approved",
			outcome:  entities.ApprovedOutcome(session),
			terminal: true,
			want: map[string]any{
				"status":         "approved",
				"paymentSession": map[string]any{"id": "ps_1", "amount": int64(1000), "currency": "GBP", "status": "Approved"},
			},
		},
		{
			name:     "redirect",
			outcome:  entities.RedirectOutcome("https://shop/return", "https://acs/challenge"),
			terminal: true,
			want:     map[string]any{"status": "requiresAction", "actionType": "redirect", "returnUrl": "https://shop/return", "redirectUrl": "https://acs/challenge"},
		},
		{
			name: "identify drops action payload",
			outcome: entities.IdentifyOutcome("https://shop/return", entities.RequiredAction{
				Type:     entities.RequiredActionIdentify,
				Identify: &entities.IdentifyAction{SessionID: "s", SessionSecret: "x"},
			}),
			terminal: true,
			want:     map[string]any{"status": "requiresAction", "actionType": "identify", "returnUrl": "https://shop/return"},
		},
		{
			name:     "payment error",
			outcome:  entities.PaymentErrorOutcome(entities.PaymentSessionError{Code: "insufficient_funds", DisplayText: "Insufficient funds"}),
			terminal: true,
			want:     map[string]any{"status": "failed", "errorMessage": "Insufficient funds"},
		},
		{
			name:     "transport error prefers vendor text",
			outcome:  entities.TransportErrorOutcome(&entities.VendorError{DisplayText: "Invalid client secret"}, errors.New("400")),
			terminal: true,
			want:     map[string]any{"status": "failed", "errorMessage": "Invalid client secret"},
		},
		{
			name:     "transport error falls back to cause",
			outcome:  entities.TransportErrorOutcome(nil, errors.New("dial tcp: timeout")),
			terminal: true,
			want:     map[string]any{"status": "failed", "errorMessage": "dial tcp: timeout"},
		},
		{
			name: "transport error strips request url",
			outcome: entities.TransportErrorOutcome(nil, &url.Error{
				Op:  "Get",
				URL: "https://api.ryftpay.com/v1/payment-sessions/ps_1?clientSecret=ps_1_secret_abc",
				Err: errors.New("connection refused"),
			}),
			terminal: true,
			want:     map[string]any{"status": "failed", "errorMessage": "connection refused"},
		},
		{
			name:     "transport error without detail",
			outcome:  entities.TransportErrorOutcome(nil, nil),
			terminal: true,
			want:     map[string]any{"status": "failed", "errorMessage": entities.UnknownErrorMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, terminal := EnvelopeForOutcome(tt.outcome)
			if terminal != tt.terminal {
				t.Fatalf("expected terminal=%v, got %v", tt.terminal, terminal)
			}
			if !terminal {
				return
			}
			got := env.ToMap()
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for k, v := range tt.want {
				if nested, ok := v.(map[string]any); ok {
					gotNested, ok := got[k].(map[string]any)
					if !ok {
						t.Fatalf("expected nested map at %s, got %T", k, got[k])
					}
					for nk, nv := range nested {
						if gotNested[nk] != nv {
							t.Fatalf("%s.%s: expected %v, got %v", k, nk, nv, gotNested[nk])
						}
					}
					continue
				}
				if got[k] != v {
					t.Fatalf("%s: expected %v, got %v", k, v, got[k])
				}
			}
		})
	}
}

func TestEnvelopeForDropIn(t *testing.T) {
	session := entities.PaymentSession{ID: "ps_2", Amount: 250, Currency: "EUR", Status: "Captured"}

	env, ok := EnvelopeForDropIn(entities.DropInOutcome{Kind: entities.DropInApproved, Session: &session})
	if !ok || env.Status != entities.ResultApproved || env.SessionID() != "ps_2" {
		t.Fatalf("unexpected approved mapping: %+v ok=%v", env, ok)
	}

	env, ok = EnvelopeForDropIn(entities.DropInOutcome{Kind: entities.DropInFailed})
	if !ok || env.Status != entities.ResultFailed || env.ErrorMessage != entities.UnknownErrorMessage {
		t.Fatalf("unexpected failed mapping: %+v", env)
	}

	env, ok = EnvelopeForDropIn(entities.DropInOutcome{Kind: entities.DropInCancelled})
	if !ok || env.Status != entities.ResultCancelled {
		t.Fatalf("unexpected cancelled mapping: %+v", env)
	}

	if _, ok := EnvelopeForDropIn(entities.DropInOutcome{Kind: entities.DropInPendingAction}); ok {
		t.Fatalf("pending action must not produce an envelope")
	}
}

func TestIdentifyFieldsMaskSessionSecret(t *testing.T) {
	fields := identifyFields("tok-1", entities.RequiredAction{
		Type:     entities.RequiredActionIdentify,
		Identify: &entities.IdentifyAction{SessionID: "s1", SessionSecret: "three_ds_secret_9876", Scheme: "visa", PaymentMethodID: "pmt_1"},
	})
	for _, f := range fields {
		if f.Key == "session_secret" {
			if f.String != "****9876" {
				t.Fatalf("expected masked secret, got %q", f.String)
			}
			return
		}
	}
	t.Fatal("session_secret field missing")
}
