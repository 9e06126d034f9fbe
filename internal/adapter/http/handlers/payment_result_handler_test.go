package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ryft_bridge/internal/adapter/http/handlers/mocks"
	"ryft_bridge/internal/domain/entities"
	"ryft_bridge/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentResultHandler_GetResultByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"found", nil, http.StatusOK},
		{"not found", usecase.ErrPaymentResultNotFound, http.StatusNotFound},
		{"journal disabled", usecase.ErrJournalDisabled, http.StatusServiceUnavailable},
		{"repo error", errors.New("db"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIPaymentResultUseCase(ctrl)
			h := NewPaymentResultHandler(uc, nil)

			r := gin.New()
			r.GET("/v1/results/:id", h.GetResultByID)

			uc.EXPECT().GetByID(gomock.Any(), "tok-1").Return(entities.PaymentResultRecord{ID: "tok-1", Status: entities.ResultApproved}, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/v1/results/tok-1", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
		})
	}
}

func TestPaymentResultHandler_ListResults(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentResultUseCase(ctrl)
		h := NewPaymentResultHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/results", h.ListResults)

		uc.EXPECT().ListBySessionID(gomock.Any(), "").Return(nil, usecase.ErrInvalidResultSession)

		req := httptest.NewRequest(http.MethodGet, "/v1/results", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentResultUseCase(ctrl)
		h := NewPaymentResultHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/results", h.ListResults)

		uc.EXPECT().ListBySessionID(gomock.Any(), "ps_1").Return([]entities.PaymentResultRecord{{ID: "a"}, {ID: "b"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/results?session_id=ps_1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.Len() == 0 || w.Body.Bytes()[0] != '[' {
			t.Fatalf("expected json array, got %s", w.Body.String())
		}
	})
}
