package usecase

import (
	"context"
	"errors"
	"net/url"
	"sync"

	"ryft_bridge/internal/domain/entities"
	"ryft_bridge/internal/observability/logger"
	"ryft_bridge/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// EnvelopeForOutcome maps a terminal vendor outcome to the Result Envelope.
// Progress outcomes have no envelope and report false.
func EnvelopeForOutcome(o entities.PaymentOutcome) (entities.ResultEnvelope, bool) {
	if !o.Terminal() {
		return entities.ResultEnvelope{}, false
	}
	switch o.Kind {
	case entities.OutcomeApproved:
		session := entities.PaymentSession{}
		if o.Session != nil {
			session = *o.Session
		}
		return entities.ApprovedEnvelope(session), true
	case entities.OutcomeRequiresRedirect:
		return entities.RedirectEnvelope(o.ReturnURL, o.RedirectURL), true
	case entities.OutcomeRequiresIdentification:
		return entities.IdentifyEnvelope(o.ReturnURL), true
	case entities.OutcomePaymentError:
		if o.LastError != nil {
			return entities.FailedEnvelope(o.LastError.DisplayText), true
		}
		return entities.FailedEnvelope(""), true
	}
	return entities.FailedEnvelope(transportErrorMessage(o)), true
}

func transportErrorMessage(o entities.PaymentOutcome) string {
	if o.VendorError != nil && o.VendorError.DisplayText != "" {
		return o.VendorError.DisplayText
	}
	if o.Cause != nil {
		// url.Error text embeds the request URL and its query string.
		var urlErr *url.Error
		if errors.As(o.Cause, &urlErr) && urlErr.Err != nil {
			return urlErr.Err.Error()
		}
		return o.Cause.Error()
	}
	return entities.UnknownErrorMessage
}

// EnvelopeForDropIn maps a terminal drop-in outcome to the Result Envelope.
func EnvelopeForDropIn(o entities.DropInOutcome) (entities.ResultEnvelope, bool) {
	switch o.Kind {
	case entities.DropInApproved:
		session := entities.PaymentSession{}
		if o.Session != nil {
			session = *o.Session
		}
		return entities.ApprovedEnvelope(session), true
	case entities.DropInFailed:
		return entities.FailedEnvelope(o.ErrorMessage), true
	case entities.DropInCancelled:
		return entities.CancelledEnvelope(), true
	}
	return entities.ResultEnvelope{}, false
}

func identifyFields(token string, a entities.RequiredAction) []zap.Field {
	fields := []zap.Field{zap.String("token", token), zap.String("action_type", string(a.Type))}
	if id := a.Identify; id != nil {
		fields = append(fields,
			zap.String("session_id", id.SessionID),
			logger.Secret("session_secret", id.SessionSecret),
			zap.String("scheme", id.Scheme),
			zap.String("payment_method_id", id.PaymentMethodID),
		)
	}
	return fields
}

func (u *PaymentBridgeUseCase) outcomeListener(c *Completion) interfaces.OutcomeListener {
	return func(o entities.PaymentOutcome) {
		env, terminal := EnvelopeForOutcome(o)
		if !terminal {
			u.log.Debug("vendor progress", zap.String("token", c.Token), zap.String("kind", string(o.Kind)))
			return
		}
		if o.Kind == entities.OutcomeRequiresIdentification && o.IdentifyAction != nil {
			u.log.Debug("identify action not surfaced", identifyFields(c.Token, *o.IdentifyAction)...)
		}
		u.settle(c, env)
	}
}

// dropInSession routes drop-in results for one presentation.
type dropInSession struct {
	uc *PaymentBridgeUseCase
	c  *Completion

	mu         sync.Mutex
	controller interfaces.IDropInController
	queued     *entities.DropInOutcome
}

func (d *dropInSession) handle(o entities.DropInOutcome) {
	if o.Kind != entities.DropInPendingAction {
		env, ok := EnvelopeForDropIn(o)
		if !ok {
			d.uc.log.Warn("unknown drop-in outcome", zap.String("token", d.c.Token), zap.String("kind", string(o.Kind)))
			return
		}
		d.uc.settle(d.c, env)
		return
	}

	d.mu.Lock()
	ctrl := d.controller
	if ctrl == nil {
		d.queued = &o
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()
	d.continueAction(ctrl, o)
}

func (d *dropInSession) setController(ctrl interfaces.IDropInController) {
	d.mu.Lock()
	d.controller = ctrl
	queued := d.queued
	d.queued = nil
	d.mu.Unlock()
	if queued != nil {
		d.continueAction(ctrl, *queued)
	}
}

// continueAction hands a required action back to the drop-in; the slot stays pending.
func (d *dropInSession) continueAction(ctrl interfaces.IDropInController, o entities.DropInOutcome) {
	if o.RequiredAction == nil {
		d.uc.log.Warn("pending action without required action", zap.String("token", d.c.Token))
		return
	}
	returnURL := ""
	if o.Session != nil {
		returnURL = o.Session.ReturnURL
	}
	if err := ctrl.HandleRequiredAction(context.Background(), returnURL, *o.RequiredAction); err != nil {
		d.uc.log.Warn("handle required action failed", zap.String("token", d.c.Token), zap.Error(err))
		d.uc.settle(d.c, entities.FailedEnvelope(err.Error()))
		return
	}
	d.uc.log.Info("drop-in continuing required action",
		zap.String("token", d.c.Token),
		zap.String("type", string(o.RequiredAction.Type)),
	)
}
