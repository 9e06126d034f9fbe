package ryft

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ryft_bridge/internal/domain/entities"
	"ryft_bridge/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	attemptPaymentPath = "/payment-sessions/attempt-payment"
	paymentSessionPath = "/payment-sessions/{id}"

	statusApproved = "Approved"
	statusCaptured = "Captured"
)

// Factory builds a Client per session key context.
type Factory struct {
	BaseURL   string
	Timeout   time.Duration
	Transport http.RoundTripper
	Logger    *zap.Logger
}

var _ interfaces.IPaymentServiceFactory = (*Factory)(nil)

func (f *Factory) NewPaymentService(key entities.SessionKeyContext) (interfaces.IPaymentService, error) {
	if key.PublicAPIKey == "" {
		return nil, entities.ErrMissingPublicAPIKey
	}
	base := BaseURLFor(key.Environment, f.BaseURL)
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("invalid ryft base url: %w", err)
	}
	return NewClient(base, key.PublicAPIKey, f.Timeout, f.Transport, f.Logger), nil
}

// Client talks to the Ryft payment-session API with a public key.
type Client struct {
	baseURL   string
	publicKey string
	rest      *resty.Client
	log       *zap.Logger
	tracer    trace.Tracer
}

var _ interfaces.IPaymentService = (*Client)(nil)

func NewClient(baseURL, publicKey string, timeout time.Duration, transport http.RoundTripper, log *zap.Logger) *Client {
	if transport == nil {
		transport = http.DefaultTransport
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("ryft")
	baseURL = strings.TrimRight(baseURL, "/")
	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetTransport(otelhttp.NewTransport(transport)).
		SetHeader("Authorization", publicKey).
		SetLogger(log.Sugar())
	return &Client{
		baseURL:   baseURL,
		publicKey: publicKey,
		rest:      rest,
		log:       log,
		tracer:    otel.Tracer("ryft_bridge/ryft"),
	}
}

func (c *Client) request(ctx context.Context, subAccountID string) *resty.Request {
	r := c.rest.R().SetContext(ctx)
	if subAccountID != "" {
		r.SetHeader("Account", subAccountID)
	}
	return r
}

// AttemptPayment reports attempting, then runs the call in the background.
func (c *Client) AttemptPayment(ctx context.Context, req interfaces.AttemptPaymentRequest, listener interfaces.OutcomeListener) {
	listener(entities.AttemptingOutcome())
	body, err := buildAttemptRequest(req)
	if err != nil {
		listener(entities.TransportErrorOutcome(nil, err))
		return
	}
	go func() {
		ctx, span := c.tracer.Start(ctx, "ryft.attempt_payment",
			trace.WithAttributes(attribute.String("ryft.payment_method", string(req.PaymentMethod.Kind))))
		defer span.End()

		var session paymentSession
		r := c.request(ctx, req.SubAccountID).SetBody(body).SetResult(&session)
		err := c.do(r, http.MethodPost, attemptPaymentPath)
		listener(c.finish(span, session, err))
	}()
}

// GetLatestPaymentResult reports loading, then looks the session up in the background.
func (c *Client) GetLatestPaymentResult(ctx context.Context, req interfaces.LatestResultRequest, listener interfaces.OutcomeListener) {
	listener(entities.LoadingOutcome())
	go func() {
		ctx, span := c.tracer.Start(ctx, "ryft.get_payment_session",
			trace.WithAttributes(attribute.String("ryft.payment_session_id", req.PaymentSessionID)))
		defer span.End()

		var session paymentSession
		r := c.request(ctx, req.SubAccountID).
			SetPathParam("id", req.PaymentSessionID).
			SetQueryParam("clientSecret", req.ClientSecret).
			SetResult(&session)
		err := c.do(r, http.MethodGet, paymentSessionPath)
		listener(c.finish(span, session, err))
	}()
}

func (c *Client) finish(span trace.Span, session paymentSession, err error) entities.PaymentOutcome {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.log.Warn("ryft call failed", zap.Error(err))
	} else {
		span.SetAttributes(attribute.String("ryft.session_status", session.Status))
		c.log.Info("ryft call done", zap.String("session_id", session.ID), zap.String("status", session.Status))
	}
	return outcomeFor(session, err)
}

func buildAttemptRequest(req interfaces.AttemptPaymentRequest) (attemptPaymentRequest, error) {
	out := attemptPaymentRequest{ClientSecret: req.ClientSecret}
	if req.CustomerDetails != nil {
		out.CustomerDetails = &customerDetails{ID: req.CustomerDetails.ID, Email: req.CustomerDetails.Email}
	}

	pm := req.PaymentMethod
	switch pm.Kind {
	case entities.PaymentMethodCard:
		if pm.Card == nil {
			return attemptPaymentRequest{}, errors.New("card payment without card details")
		}
		out.CardDetails = &cardDetails{
			Number:      pm.Card.Number,
			ExpiryMonth: pm.Card.ExpiryMonth,
			ExpiryYear:  pm.Card.ExpiryYear,
			CVC:         pm.Card.CVC,
			Name:        pm.Card.NameOnCard,
		}
		out.PaymentMethodOptions = &paymentMethodOptions{Store: pm.StoreCard}
	case entities.PaymentMethodSaved:
		out.PaymentMethod = &paymentMethodRef{ID: pm.SavedID}
	case entities.PaymentMethodGooglePay:
		out.WalletDetails = &walletDetails{Type: "GooglePay", GooglePayToken: pm.WalletToken}
	case entities.PaymentMethodApplePay:
		out.WalletDetails = &walletDetails{Type: "ApplePay", ApplePayToken: pm.WalletToken}
	default:
		return attemptPaymentRequest{}, fmt.Errorf("unsupported payment method %q", pm.Kind)
	}
	return out, nil
}

func (c *Client) do(req *resty.Request, method, path string) error {
	var apiErr apiErrorResponse
	resp, err := req.
		SetHeader("Accept", "application/json").
		ForceContentType("application/json").
		SetError(&apiErr).
		Execute(method, path)
	if err != nil {
		if resp != nil && resp.StatusCode() >= http.StatusBadRequest {
			return newAPIError(resp.StatusCode(), apiErr)
		}
		return sanitizeTransportError(method, path, err)
	}
	if !resp.IsSuccess() {
		return newAPIError(resp.StatusCode(), apiErr)
	}
	return nil
}

// sanitizeTransportError drops the request URL from net/http errors. The URL
// carries the client secret as a query parameter.
func sanitizeTransportError(method, path string, err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("ryft %s %s: %w", method, path, urlErr.Err)
	}
	return fmt.Errorf("ryft %s %s: %w", method, path, err)
}

func newAPIError(status int, parsed apiErrorResponse) *APIError {
	apiErr := &APIError{StatusCode: status, RequestID: parsed.RequestID, Code: parsed.Code}
	if len(parsed.Errors) > 0 {
		apiErr.Code = parsed.Errors[0].Code
		apiErr.Message = parsed.Errors[0].Message
	}
	return apiErr
}

// outcomeFor maps a session (or the error that replaced it) to a terminal outcome.
func outcomeFor(session paymentSession, err error) entities.PaymentOutcome {
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return entities.TransportErrorOutcome(&entities.VendorError{Code: apiErr.Code, DisplayText: apiErr.Message}, err)
		}
		return entities.TransportErrorOutcome(nil, err)
	}

	if a := session.RequiredAction; a != nil {
		switch entities.RequiredActionType(a.Type) {
		case entities.RequiredActionRedirect:
			return entities.RedirectOutcome(session.ReturnURL, a.URL)
		case entities.RequiredActionIdentify:
			return entities.IdentifyOutcome(session.ReturnURL, a.toEntity())
		}
	}
	switch session.Status {
	case statusApproved, statusCaptured:
		return entities.ApprovedOutcome(session.toEntity())
	}
	if session.LastError != "" {
		return entities.PaymentErrorOutcome(entities.PaymentSessionError{
			Code:        session.LastError,
			DisplayText: DisplayText(session.LastError),
		})
	}
	return entities.TransportErrorOutcome(nil, fmt.Errorf("unexpected payment session status %q", session.Status))
}
