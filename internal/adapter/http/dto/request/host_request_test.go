package request

import (
	"errors"
	"testing"

	"ryft_bridge/internal/domain/entities"
)

func TestDropInResultRequest_ToOutcome(t *testing.T) {
	t.Run("approved requires session", func(t *testing.T) {
		_, err := DropInResultRequest{Outcome: "approved"}.ToOutcome()
		if !errors.Is(err, ErrMissingPaymentSession) {
			t.Fatalf("expected ErrMissingPaymentSession, got %v", err)
		}

		out, err := DropInResultRequest{
			Outcome:        "approved",
			PaymentSession: &PaymentSessionPayload{ID: "ps_1", Amount: 500, Currency: "GBP", Status: "Approved"},
		}.ToOutcome()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Kind != entities.DropInApproved || out.Session.ID != "ps_1" || out.Session.Amount != 500 {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})

	t.Run("failed and cancelled", func(t *testing.T) {
		out, err := DropInResultRequest{Outcome: "failed", ErrorMessage: "Declined"}.ToOutcome()
		if err != nil || out.ErrorMessage != "Declined" {
			t.Fatalf("unexpected failed outcome: %+v err=%v", out, err)
		}
		out, err = DropInResultRequest{Outcome: " cancelled "}.ToOutcome()
		if err != nil || out.Kind != entities.DropInCancelled {
			t.Fatalf("unexpected cancelled outcome: %+v err=%v", out, err)
		}
	})

	t.Run("pending action", func(t *testing.T) {
		_, err := DropInResultRequest{Outcome: "pendingAction"}.ToOutcome()
		if !errors.Is(err, ErrMissingRequiredAction) {
			t.Fatalf("expected ErrMissingRequiredAction, got %v", err)
		}

		_, err = DropInResultRequest{Outcome: "pendingAction", RequiredAction: &RequiredActionPayload{Type: "Unknown"}}.ToOutcome()
		if !errors.Is(err, ErrInvalidDropInOutcome) {
			t.Fatalf("expected ErrInvalidDropInOutcome, got %v", err)
		}

		out, err := DropInResultRequest{
			Outcome:        "pendingAction",
			PaymentSession: &PaymentSessionPayload{ID: "ps_1", ReturnURL: "https://shop/return"},
			RequiredAction: &RequiredActionPayload{Type: "Redirect", URL: "https://acs"},
		}.ToOutcome()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.RequiredAction.Type != entities.RequiredActionRedirect || out.Session.ReturnURL != "https://shop/return" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})

	t.Run("unknown outcome", func(t *testing.T) {
		if _, err := (DropInResultRequest{Outcome: "done"}).ToOutcome(); !errors.Is(err, ErrInvalidDropInOutcome) {
			t.Fatalf("expected ErrInvalidDropInOutcome, got %v", err)
		}
	})
}
