package handlers

import (
	"errors"
	"net/http"

	"ryft_bridge/internal/adapter/http/dto/response"
	"ryft_bridge/internal/usecase"
	"ryft_bridge/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentResultHandler exposes the result journal.
type PaymentResultHandler struct {
	usecase usecase.IPaymentResultUseCase
	log     *zap.Logger
}

func NewPaymentResultHandler(uc usecase.IPaymentResultUseCase, log *zap.Logger) *PaymentResultHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentResultHandler{usecase: uc, log: log.Named("results")}
}

// GetResultByID godoc
//
//	@Summary	Get a resolved envelope by request token
//	@Tags		results
//	@Produce	json
//	@Param		id	path		string	true	"request token"
//	@Success	200	{object}	response.PaymentResultResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Failure	503	{object}	pkg.HTTPError
//	@Router		/results/{id} [get]
func (h *PaymentResultHandler) GetResultByID(c *gin.Context) {
	id := c.Param("id")
	r, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Info("get result failed", zap.String("id", id), zap.Error(err))
		appErr := mapPaymentResultError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentResult(r))
}

// ListResults godoc
//
//	@Summary	List resolved envelopes of a payment session
//	@Tags		results
//	@Produce	json
//	@Param		session_id	query		string	true	"payment session id"
//	@Success	200			{array}		response.PaymentResultResponse
//	@Failure	400			{object}	pkg.HTTPError
//	@Failure	503			{object}	pkg.HTTPError
//	@Router		/results [get]
func (h *PaymentResultHandler) ListResults(c *gin.Context) {
	sessionID := c.Query("session_id")
	rs, err := h.usecase.ListBySessionID(c.Request.Context(), sessionID)
	if err != nil {
		h.log.Info("list results failed", zap.String("session_id", sessionID), zap.Error(err))
		appErr := mapPaymentResultError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentResults(rs))
}

func mapPaymentResultError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidResultID), errors.Is(err, usecase.ErrInvalidResultSession):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentResultNotFound):
		return pkg.NewDomainErrorSimple("RESULT_NOT_FOUND", "Payment result not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJournalDisabled):
		return pkg.NewDomainErrorSimple("JOURNAL_DISABLED", "Result journal is disabled", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
