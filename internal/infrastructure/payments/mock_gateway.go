package payments

import (
	"context"
	"strings"

	"ryft_bridge/internal/domain/entities"
	"ryft_bridge/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	mockAmount   = 1000
	mockCurrency = "GBP"

	mockDeclineSuffix  = "0002"
	mockIdentifySuffix = "3220"
	mockRedirectSuffix = "3063"

	mockReturnURL = "https://example.com/ryft/return"
)

// MockGatewayFactory hands out in-process payment services that never leave the host.
type MockGatewayFactory struct {
	Logger *zap.Logger
}

var _ interfaces.IPaymentServiceFactory = (*MockGatewayFactory)(nil)

func (f *MockGatewayFactory) NewPaymentService(key entities.SessionKeyContext) (interfaces.IPaymentService, error) {
	if key.PublicAPIKey == "" {
		return nil, entities.ErrMissingPublicAPIKey
	}
	log := f.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("mock payment gateway enabled", zap.String("environment", string(key.Environment)))
	return &MockGateway{log: log.Named("mock_gateway")}, nil
}

// MockGateway decides outcomes from the card number suffix:
//   - 0002 declines
//   - 3220 requires identification
//   - 3063 requires a redirect
//
// Everything else, saved methods and wallet tokens included, approves.
type MockGateway struct {
	log *zap.Logger
}

var _ interfaces.IPaymentService = (*MockGateway)(nil)

func (g *MockGateway) AttemptPayment(_ context.Context, req interfaces.AttemptPaymentRequest, listener interfaces.OutcomeListener) {
	listener(entities.AttemptingOutcome())
	sessionID := "ps_mock_" + uuid.NewString()

	if card := req.PaymentMethod.Card; card != nil {
		switch {
		case strings.HasSuffix(card.Number, mockDeclineSuffix):
			g.log.Info("mock attempt declined", zap.String("session_id", sessionID))
			listener(entities.PaymentErrorOutcome(entities.PaymentSessionError{Code: "card_declined", DisplayText: "Your card was declined"}))
			return
		case strings.HasSuffix(card.Number, mockIdentifySuffix):
			g.log.Info("mock attempt requires identification", zap.String("session_id", sessionID))
			listener(entities.IdentifyOutcome(mockReturnURL, entities.RequiredAction{
				Type: entities.RequiredActionIdentify,
				Identify: &entities.IdentifyAction{
					SessionID:       sessionID,
					SessionSecret:   "mock_secret",
					Scheme:          "visa",
					PaymentMethodID: "pmt_mock",
				},
			}))
			return
		case strings.HasSuffix(card.Number, mockRedirectSuffix):
			g.log.Info("mock attempt requires redirect", zap.String("session_id", sessionID))
			listener(entities.RedirectOutcome(mockReturnURL, "https://example.com/ryft/3ds/"+sessionID))
			return
		}
	}

	g.log.Info("mock attempt approved", zap.String("session_id", sessionID), zap.String("method", string(req.PaymentMethod.Kind)))
	listener(entities.ApprovedOutcome(approvedSession(sessionID)))
}

func (g *MockGateway) GetLatestPaymentResult(_ context.Context, req interfaces.LatestResultRequest, listener interfaces.OutcomeListener) {
	listener(entities.LoadingOutcome())
	g.log.Info("mock lookup approved", zap.String("session_id", req.PaymentSessionID))
	listener(entities.ApprovedOutcome(approvedSession(req.PaymentSessionID)))
}

func approvedSession(id string) entities.PaymentSession {
	return entities.PaymentSession{
		ID:        id,
		Amount:    mockAmount,
		Currency:  mockCurrency,
		Status:    "Approved",
		ReturnURL: mockReturnURL,
	}
}
