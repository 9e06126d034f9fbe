// Package uihost lets the native shell attach itself as the screen that
// presents the vendor drop-in. The shell polls the active presentation and
// reports the drop-in result back.
package uihost

import (
	"context"
	"errors"
	"sync"
	"time"

	"ryft_bridge/internal/domain/entities"
	"ryft_bridge/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNoPresentation     = errors.New("no drop-in presentation is active")
	ErrPresentationActive = errors.New("a drop-in presentation is already active")
)

// Presentation is the drop-in the attached shell is expected to show.
type Presentation struct {
	ID          string
	HostName    string
	Config      entities.DropInConfiguration
	PresentedAt time.Time

	// Set when the drop-in must continue a 3-D Secure challenge.
	ReturnURL      string
	RequiredAction *entities.RequiredAction
}

type activePresentation struct {
	Presentation
	delegate interfaces.DropInDelegate
}

type Host struct {
	log *zap.Logger

	mu       sync.Mutex
	attached bool
	name     string
	active   *activePresentation
}

var _ interfaces.IUIHost = (*Host)(nil)

func New(log *zap.Logger) *Host {
	if log == nil {
		log = zap.NewNop()
	}
	return &Host{log: log.Named("uihost")}
}

func (h *Host) Attach(name string) {
	h.mu.Lock()
	h.attached = true
	h.name = name
	h.mu.Unlock()
	h.log.Info("host attached", zap.String("name", name))
}

// Detach drops the screen. An active presentation is reported as cancelled.
func (h *Host) Detach() {
	h.mu.Lock()
	active := h.active
	h.attached = false
	h.name = ""
	h.active = nil
	h.mu.Unlock()

	h.log.Info("host detached", zap.Bool("had_presentation", active != nil))
	if active != nil {
		active.delegate(entities.DropInOutcome{Kind: entities.DropInCancelled})
	}
}

func (h *Host) Available() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.attached
}

func (h *Host) PresentDropIn(_ context.Context, cfg entities.DropInConfiguration, delegate interfaces.DropInDelegate) (interfaces.IDropInController, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.attached {
		return nil, interfaces.ErrUIHostDetached
	}
	if h.active != nil {
		return nil, ErrPresentationActive
	}
	h.active = &activePresentation{
		Presentation: Presentation{
			ID:          uuid.NewString(),
			HostName:    h.name,
			Config:      cfg,
			PresentedAt: time.Now().UTC(),
		},
		delegate: delegate,
	}
	h.log.Info("drop-in requested", zap.String("presentation_id", h.active.ID))
	return &controller{host: h, id: h.active.ID}, nil
}

// Current returns a copy of the active presentation.
func (h *Host) Current() (Presentation, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.active == nil {
		return Presentation{}, false
	}
	return h.active.Presentation, true
}

// Deliver forwards a drop-in result to the delegate. Terminal results close the
// presentation.
func (h *Host) Deliver(o entities.DropInOutcome) error {
	h.mu.Lock()
	active := h.active
	if active == nil {
		h.mu.Unlock()
		return ErrNoPresentation
	}
	if o.Terminal() {
		h.active = nil
	}
	h.mu.Unlock()

	h.log.Info("drop-in result", zap.String("presentation_id", active.ID), zap.String("outcome", string(o.Kind)))
	active.delegate(o)
	return nil
}

type controller struct {
	host *Host
	id   string
}

func (c *controller) HandleRequiredAction(_ context.Context, returnURL string, action entities.RequiredAction) error {
	c.host.mu.Lock()
	defer c.host.mu.Unlock()
	if c.host.active == nil || c.host.active.ID != c.id {
		return ErrNoPresentation
	}
	c.host.active.ReturnURL = returnURL
	c.host.active.RequiredAction = &action
	return nil
}
