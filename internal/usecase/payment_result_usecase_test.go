package usecase

import (
	"context"
	"errors"
	"testing"

	"ryft_bridge/internal/domain/entities"
	mock_interfaces "ryft_bridge/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentResultUseCase_GetByID(t *testing.T) {
	t.Run("journal disabled", func(t *testing.T) {
		uc := NewPaymentResultUseCase(nil)
		if _, err := uc.GetByID(context.Background(), "r-1"); !errors.Is(err, ErrJournalDisabled) {
			t.Fatalf("expected ErrJournalDisabled, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewPaymentResultUseCase(mock_interfaces.NewMockIPaymentResultRepository(ctrl))
		if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidResultID) {
			t.Fatalf("expected ErrInvalidResultID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentResultRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.PaymentResultRecord{}, errors.New("db"))
		uc := NewPaymentResultUseCase(repo)
		if _, err := uc.GetByID(context.Background(), "r-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentResultRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.PaymentResultRecord{}, nil)
		uc := NewPaymentResultUseCase(repo)
		if _, err := uc.GetByID(context.Background(), " r-1 "); !errors.Is(err, ErrPaymentResultNotFound) {
			t.Fatalf("expected ErrPaymentResultNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentResultRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.PaymentResultRecord{ID: "r-1", Status: entities.ResultApproved}, nil)
		uc := NewPaymentResultUseCase(repo)
		got, err := uc.GetByID(context.Background(), "r-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ResultApproved {
			t.Fatalf("expected approved, got %s", got.Status)
		}
	})
}

func TestPaymentResultUseCase_ListBySessionID(t *testing.T) {
	t.Run("journal disabled", func(t *testing.T) {
		uc := NewPaymentResultUseCase(nil)
		if _, err := uc.ListBySessionID(context.Background(), "ps_1"); !errors.Is(err, ErrJournalDisabled) {
			t.Fatalf("expected ErrJournalDisabled, got %v", err)
		}
	})

	t.Run("blank session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewPaymentResultUseCase(mock_interfaces.NewMockIPaymentResultRepository(ctrl))
		if _, err := uc.ListBySessionID(context.Background(), ""); !errors.Is(err, ErrInvalidResultSession) {
			t.Fatalf("expected ErrInvalidResultSession, got %v", err)
		}
	})

	t.Run("delegates to repo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentResultRepository(ctrl)
		repo.EXPECT().ListBySessionID(gomock.Any(), "ps_1").Return([]entities.PaymentResultRecord{{ID: "a"}, {ID: "b"}}, nil)
		uc := NewPaymentResultUseCase(repo)
		got, err := uc.ListBySessionID(context.Background(), "ps_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 results, got %d", len(got))
		}
	})
}
