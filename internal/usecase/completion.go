package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"ryft_bridge/internal/domain/entities"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

var ErrOperationInProgress = errors.New("another payment operation is still pending")

// Completion is the one-shot handle of a single bridge operation.
//
// It is resolved at most once; later deliveries are dropped.
type Completion struct {
	Token     string
	Operation entities.Operation
	StartedAt time.Time

	sessionID    string
	subAccountID string
	span         trace.Span

	once sync.Once
	done chan struct{}
	env  entities.ResultEnvelope
}

func newCompletion(op entities.Operation) *Completion {
	return &Completion{
		Token:     uuid.NewString(),
		Operation: op,
		StartedAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}
}

// Done is closed once the envelope is available.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Envelope returns the resolved envelope and whether the completion resolved.
func (c *Completion) Envelope() (entities.ResultEnvelope, bool) {
	select {
	case <-c.done:
		return c.env, true
	default:
		return entities.ResultEnvelope{}, false
	}
}

// Wait blocks until the completion resolves or ctx ends. Giving up on the wait
// does not release the pending slot.
func (c *Completion) Wait(ctx context.Context) (entities.ResultEnvelope, error) {
	select {
	case <-c.done:
		return c.env, nil
	case <-ctx.Done():
		return entities.ResultEnvelope{}, ctx.Err()
	}
}

func (c *Completion) deliver(env entities.ResultEnvelope) bool {
	delivered := false
	c.once.Do(func() {
		c.env = env
		close(c.done)
		delivered = true
	})
	return delivered
}

// PendingSlot holds the single in-flight asynchronous operation.
type PendingSlot struct {
	mu      sync.Mutex
	current *Completion
}

// Acquire occupies the slot with a fresh completion, or fails with
// ErrOperationInProgress while another one is unresolved.
func (s *PendingSlot) Acquire(op entities.Operation) (*Completion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		return nil, ErrOperationInProgress
	}
	c := newCompletion(op)
	s.current = c
	return c, nil
}

// Take claims c for resolution. It returns false when c no longer owns the slot,
// which is the case for a repeated terminal notification.
func (s *PendingSlot) Take(c *Completion) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c == nil || s.current != c {
		return false
	}
	s.current = nil
	return true
}

// Abandon releases the slot without resolving c, used when dispatch failed.
func (s *PendingSlot) Abandon(c *Completion) {
	s.mu.Lock()
	if s.current == c {
		s.current = nil
	}
	s.mu.Unlock()
}

// Pending returns the in-flight completion, if any.
func (s *PendingSlot) Pending() *Completion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// ResolvedCompletion returns a completion already resolved with env.
func ResolvedCompletion(op entities.Operation, env entities.ResultEnvelope) *Completion {
	c := newCompletion(op)
	c.deliver(env)
	return c
}
