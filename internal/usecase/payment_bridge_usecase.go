package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"ryft_bridge/internal/domain/entities"
	"ryft_bridge/internal/observability/logger"
	"ryft_bridge/internal/usecase/interfaces"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var (
	ErrNotInitialized        = errors.New("payment bridge not initialized")
	ErrNoUIHost              = errors.New("no ui host available")
	ErrVendorClient          = errors.New("vendor client could not be created")
	ErrDropInPresentation    = errors.New("drop-in could not be presented")
	ErrInvalidClientSecret   = errors.New("clientSecret is required")
	ErrInvalidPaymentSession = errors.New("paymentSessionId is required")
	ErrDropInKeyMissing      = errors.New("publicApiKey and clientSecret are required")
)

const (
	StatusRejected = "rejected"

	journalTimeout = 5 * time.Second
)

// IPaymentBridgeUseCase is the set of operations exposed on the method channel.
//
// Asynchronous operations return a Completion that resolves exactly once with a
// Result Envelope. Returned errors are immediate call failures; payment failures
// are reported through the envelope instead.
type IPaymentBridgeUseCase interface {
	Platform() entities.PlatformProfile
	Initialize(ctx context.Context, publicAPIKey string) error
	ShowDropIn(ctx context.Context, cmd DropInCommand) (*Completion, error)
	ProcessCardPayment(ctx context.Context, cmd CardPaymentCommand) (*Completion, error)
	ProcessSavedPaymentMethod(ctx context.Context, cmd SavedPaymentCommand) (*Completion, error)
	ProcessWalletPayment(ctx context.Context, cmd WalletPaymentCommand) (*Completion, error)
	CheckPaymentStatus(ctx context.Context, cmd StatusCommand) (*Completion, error)
}

type PaymentBridgeDeps struct {
	Profile   entities.PlatformProfile
	Factory   interfaces.IPaymentServiceFactory
	Host      interfaces.IUIHost
	Journal   interfaces.IPaymentResultRepository
	Publisher interfaces.IResultPublisher
	Metrics   interfaces.IBridgeMetrics
	Logger    *zap.Logger
}

type PaymentBridgeUseCase struct {
	profile   entities.PlatformProfile
	factory   interfaces.IPaymentServiceFactory
	host      interfaces.IUIHost
	journal   interfaces.IPaymentResultRepository
	publisher interfaces.IResultPublisher
	metrics   interfaces.IBridgeMetrics
	log       *zap.Logger
	tracer    trace.Tracer

	slot PendingSlot

	mu      sync.RWMutex
	key     *entities.SessionKeyContext
	service interfaces.IPaymentService
}

var _ IPaymentBridgeUseCase = (*PaymentBridgeUseCase)(nil)

func NewPaymentBridgeUseCase(deps PaymentBridgeDeps) *PaymentBridgeUseCase {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentBridgeUseCase{
		profile:   deps.Profile,
		factory:   deps.Factory,
		host:      deps.Host,
		journal:   deps.Journal,
		publisher: deps.Publisher,
		metrics:   deps.Metrics,
		log:       log.Named("bridge"),
		tracer:    otel.Tracer("ryft_bridge/usecase"),
	}
}

func (u *PaymentBridgeUseCase) Platform() entities.PlatformProfile {
	return u.profile
}

// Initialize derives a vendor client from the key and replaces any previous one.
func (u *PaymentBridgeUseCase) Initialize(ctx context.Context, publicAPIKey string) error {
	_, span := u.tracer.Start(ctx, "bridge.initialize")
	defer span.End()

	key, err := entities.NewSessionKeyContext(publicAPIKey)
	if err != nil {
		u.reject(ctx, entities.OperationInitialize, err)
		return err
	}
	if u.factory == nil {
		u.reject(ctx, entities.OperationInitialize, ErrVendorClient)
		return ErrVendorClient
	}
	svc, err := u.factory.NewPaymentService(key)
	if err != nil {
		u.log.Error("vendor client creation failed", zap.Error(err))
		u.reject(ctx, entities.OperationInitialize, err)
		return fmt.Errorf("%w: %v", ErrVendorClient, err)
	}

	u.mu.Lock()
	u.key = &key
	u.service = svc
	u.mu.Unlock()

	span.SetAttributes(attribute.String("ryft.environment", string(key.Environment)))
	u.log.Info("initialized", zap.String("environment", string(key.Environment)), logger.Secret("public_key", key.PublicAPIKey))
	return nil
}

func (u *PaymentBridgeUseCase) session() (entities.SessionKeyContext, interfaces.IPaymentService, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if u.key == nil || u.service == nil {
		return entities.SessionKeyContext{}, nil, ErrNotInitialized
	}
	return *u.key, u.service, nil
}

func (u *PaymentBridgeUseCase) ShowDropIn(ctx context.Context, cmd DropInCommand) (*Completion, error) {
	op := entities.OperationShowDropIn
	if cmd.ClientSecret == "" {
		u.reject(ctx, op, ErrInvalidClientSecret)
		return nil, ErrInvalidClientSecret
	}
	key, _, err := u.session()
	if err != nil && u.profile.DropInRequiresPublicKey {
		u.reject(ctx, op, ErrDropInKeyMissing)
		return nil, ErrDropInKeyMissing
	}
	if u.host == nil || !u.host.Available() {
		u.reject(ctx, op, ErrNoUIHost)
		return nil, ErrNoUIHost
	}
	if err != nil {
		u.log.Warn("drop-in presented before initialize", zap.String("platform", string(u.profile.Platform)))
	}

	fields := entities.FieldCollection{NameOnCard: cmd.CollectCardholderName}
	var cfg entities.DropInConfiguration
	if cmd.SubAccountID != "" {
		cfg = entities.SubAccountPayment(cmd.ClientSecret, cmd.SubAccountID, key.PublicAPIKey, fields, cmd.Wallet)
	} else {
		cfg = entities.StandardAccountPayment(cmd.ClientSecret, key.PublicAPIKey, fields, cmd.Wallet)
	}

	c, err := u.begin(ctx, op, "", cmd.SubAccountID)
	if err != nil {
		return nil, err
	}
	d := &dropInSession{uc: u, c: c}
	ctrl, err := u.host.PresentDropIn(context.WithoutCancel(ctx), cfg, d.handle)
	if err != nil {
		u.abandon(ctx, c, err)
		if errors.Is(err, interfaces.ErrUIHostDetached) {
			return nil, ErrNoUIHost
		}
		return nil, fmt.Errorf("%w: %v", ErrDropInPresentation, err)
	}
	d.setController(ctrl)

	u.log.Info("drop-in presented",
		zap.String("token", c.Token),
		zap.String("account_type", string(cfg.AccountType)),
		zap.Bool("wallet", cfg.Wallet != nil),
	)
	return c, nil
}

func (u *PaymentBridgeUseCase) ProcessCardPayment(ctx context.Context, cmd CardPaymentCommand) (*Completion, error) {
	method := entities.CardPaymentMethod(cmd.Card, cmd.StoreCard)
	return u.attempt(ctx, entities.OperationProcessCardPayment, cmd.ClientSecret, cmd.SubAccountID, method)
}

func (u *PaymentBridgeUseCase) ProcessSavedPaymentMethod(ctx context.Context, cmd SavedPaymentCommand) (*Completion, error) {
	method := entities.SavedPaymentMethod(cmd.PaymentMethodID)
	return u.attempt(ctx, entities.OperationProcessSavedPaymentMethod, cmd.ClientSecret, cmd.SubAccountID, method)
}

// ProcessWalletPayment forwards a wallet token when the platform supports it.
// Otherwise it resolves immediately with UNSUPPORTED_ON_PLATFORM, whatever the
// arguments, without touching the pending slot.
func (u *PaymentBridgeUseCase) ProcessWalletPayment(ctx context.Context, cmd WalletPaymentCommand) (*Completion, error) {
	op := entities.WalletOperation(cmd.Wallet)
	if !u.profile.SupportsDirectWallet(cmd.Wallet) {
		c := newCompletion(op)
		_, c.span = u.tracer.Start(ctx, "bridge."+string(op), trace.WithAttributes(attribute.String("bridge.token", c.Token)))
		u.log.Info("wallet not supported on platform",
			zap.String("wallet", string(cmd.Wallet)),
			zap.String("platform", string(u.profile.Platform)),
		)
		u.record(c, entities.UnsupportedEnvelope(entities.WalletAdvisory(cmd.Wallet)))
		return c, nil
	}
	method := entities.WalletPaymentMethod(cmd.Wallet, cmd.Token)
	return u.attempt(ctx, op, cmd.ClientSecret, cmd.SubAccountID, method)
}

func (u *PaymentBridgeUseCase) CheckPaymentStatus(ctx context.Context, cmd StatusCommand) (*Completion, error) {
	op := entities.OperationCheckPaymentStatus
	if cmd.PaymentSessionID == "" {
		u.reject(ctx, op, ErrInvalidPaymentSession)
		return nil, ErrInvalidPaymentSession
	}
	if cmd.ClientSecret == "" {
		u.reject(ctx, op, ErrInvalidClientSecret)
		return nil, ErrInvalidClientSecret
	}
	_, svc, err := u.session()
	if err != nil {
		u.reject(ctx, op, err)
		return nil, err
	}
	c, err := u.begin(ctx, op, cmd.PaymentSessionID, cmd.SubAccountID)
	if err != nil {
		return nil, err
	}
	u.log.Info("status lookup start", zap.String("token", c.Token), zap.String("session_id", cmd.PaymentSessionID))
	svc.GetLatestPaymentResult(context.WithoutCancel(ctx), interfaces.LatestResultRequest{
		PaymentSessionID: cmd.PaymentSessionID,
		ClientSecret:     cmd.ClientSecret,
		SubAccountID:     cmd.SubAccountID,
	}, u.outcomeListener(c))
	return c, nil
}

func (u *PaymentBridgeUseCase) attempt(ctx context.Context, op entities.Operation, clientSecret, subAccountID string, method entities.PaymentMethod) (*Completion, error) {
	if clientSecret == "" {
		u.reject(ctx, op, ErrInvalidClientSecret)
		return nil, ErrInvalidClientSecret
	}
	_, svc, err := u.session()
	if err != nil {
		u.reject(ctx, op, err)
		return nil, err
	}
	c, err := u.begin(ctx, op, "", subAccountID)
	if err != nil {
		return nil, err
	}
	u.log.Info("payment attempt start",
		zap.String("token", c.Token),
		zap.String("method", string(method.Kind)),
		zap.Bool("sub_account", subAccountID != ""),
	)
	svc.AttemptPayment(context.WithoutCancel(ctx), interfaces.AttemptPaymentRequest{
		ClientSecret:  clientSecret,
		PaymentMethod: method,
		SubAccountID:  subAccountID,
	}, u.outcomeListener(c))
	return c, nil
}

// begin occupies the pending slot and opens the operation span.
func (u *PaymentBridgeUseCase) begin(ctx context.Context, op entities.Operation, sessionID, subAccountID string) (*Completion, error) {
	c, err := u.slot.Acquire(op)
	if err != nil {
		u.log.Warn("operation rejected, slot busy", zap.String("operation", string(op)))
		u.reject(ctx, op, err)
		return nil, err
	}
	c.sessionID = sessionID
	c.subAccountID = subAccountID
	_, c.span = u.tracer.Start(ctx, "bridge."+string(op), trace.WithAttributes(attribute.String("bridge.token", c.Token)))
	return c, nil
}

func (u *PaymentBridgeUseCase) abandon(ctx context.Context, c *Completion, err error) {
	u.slot.Abandon(c)
	c.span.RecordError(err)
	c.span.SetStatus(codes.Error, err.Error())
	c.span.End()
	u.log.Warn("operation abandoned", zap.String("token", c.Token), zap.Error(err))
	u.reject(ctx, c.Operation, err)
}

// settle resolves the pending completion once. A terminal notification for a
// completion that no longer owns the slot is ignored.
func (u *PaymentBridgeUseCase) settle(c *Completion, env entities.ResultEnvelope) {
	if !u.slot.Take(c) {
		u.log.Warn("terminal notification without pending request ignored",
			zap.String("token", c.Token),
			zap.String("status", string(env.Status)),
		)
		return
	}
	u.record(c, env)
}

// record journals, publishes and measures env, then delivers it. Journal and
// publisher failures are logged and never change the reply.
func (u *PaymentBridgeUseCase) record(c *Completion, env entities.ResultEnvelope) {
	now := time.Now().UTC()
	ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
	defer cancel()
	if c.span != nil {
		ctx = trace.ContextWithSpan(ctx, c.span)
	}

	sessionID := env.SessionID()
	if sessionID == "" {
		sessionID = c.sessionID
	}
	rec := entities.PaymentResultRecord{
		ID:           c.Token,
		Operation:    c.Operation,
		Status:       env.Status,
		SessionID:    sessionID,
		SubAccountID: c.subAccountID,
		Envelope:     env.ToMap(),
		StartedAt:    c.StartedAt,
		ResolvedAt:   now,
	}
	if u.journal != nil {
		if _, err := u.journal.Create(ctx, rec); err != nil {
			u.log.Warn("journal write failed", zap.String("token", c.Token), zap.Error(err))
		}
	}
	if u.publisher != nil {
		if err := u.publisher.Publish(ctx, rec); err != nil {
			u.log.Warn("result publish failed", zap.String("token", c.Token), zap.Error(err))
		}
	}
	if u.metrics != nil {
		u.metrics.RecordOperation(ctx, c.Operation, string(env.Status), now.Sub(c.StartedAt))
	}

	if c.span != nil {
		c.span.SetAttributes(attribute.String("bridge.status", string(env.Status)))
		c.span.End()
	}
	c.deliver(env)
	u.log.Info("operation resolved",
		zap.String("token", c.Token),
		zap.String("operation", string(c.Operation)),
		zap.String("status", string(env.Status)),
	)
}

func (u *PaymentBridgeUseCase) reject(ctx context.Context, op entities.Operation, err error) {
	if u.metrics != nil {
		u.metrics.RecordOperation(ctx, op, StatusRejected, 0)
	}
	u.log.Debug("operation rejected", zap.String("operation", string(op)), zap.Error(err))
}
