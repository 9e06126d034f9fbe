package usecase

import (
	"context"
	"errors"
	"strings"

	"ryft_bridge/internal/domain/entities"
	"ryft_bridge/internal/usecase/interfaces"
)

var (
	ErrPaymentResultNotFound = errors.New("payment result not found")
	ErrInvalidResultID       = errors.New("invalid result id")
	ErrInvalidResultSession  = errors.New("invalid session_id")
	ErrJournalDisabled       = errors.New("result journal disabled")
)

// IPaymentResultUseCase reads resolved envelopes back from the journal.
type IPaymentResultUseCase interface {
	GetByID(ctx context.Context, id string) (entities.PaymentResultRecord, error)
	ListBySessionID(ctx context.Context, sessionID string) ([]entities.PaymentResultRecord, error)
}

type PaymentResultUseCase struct {
	repo interfaces.IPaymentResultRepository
}

var _ IPaymentResultUseCase = (*PaymentResultUseCase)(nil)

func NewPaymentResultUseCase(repo interfaces.IPaymentResultRepository) *PaymentResultUseCase {
	return &PaymentResultUseCase{repo: repo}
}

func (u *PaymentResultUseCase) GetByID(ctx context.Context, id string) (entities.PaymentResultRecord, error) {
	if u.repo == nil {
		return entities.PaymentResultRecord{}, ErrJournalDisabled
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentResultRecord{}, ErrInvalidResultID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentResultRecord{}, err
	}
	if r.ID == "" {
		return entities.PaymentResultRecord{}, ErrPaymentResultNotFound
	}
	return r, nil
}

func (u *PaymentResultUseCase) ListBySessionID(ctx context.Context, sessionID string) ([]entities.PaymentResultRecord, error) {
	if u.repo == nil {
		return nil, ErrJournalDisabled
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidResultSession
	}
	return u.repo.ListBySessionID(ctx, sessionID)
}
