package handlers

import (
	"errors"
	"net/http"

	"ryft_bridge/internal/adapter/http/dto/request"
	"ryft_bridge/internal/adapter/http/dto/response"
	"ryft_bridge/internal/adapter/uihost"
	"ryft_bridge/internal/domain/entities"
	"ryft_bridge/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type uiHost interface {
	Attach(name string)
	Detach()
	Available() bool
	Current() (uihost.Presentation, bool)
	Deliver(o entities.DropInOutcome) error
}

// HostHandler is used by the native shell that owns the screen.
type HostHandler struct {
	host uiHost
	log  *zap.Logger
}

func NewHostHandler(host uiHost, log *zap.Logger) *HostHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &HostHandler{host: host, log: log.Named("host")}
}

func (h *HostHandler) Attach(c *gin.Context) {
	var req request.HostAttachRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}
	h.host.Attach(req.Name)
	c.JSON(http.StatusOK, response.HostStatusResponse{Attached: true})
}

func (h *HostHandler) Detach(c *gin.Context) {
	h.host.Detach()
	c.JSON(http.StatusOK, response.HostStatusResponse{Attached: false})
}

func (h *HostHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, response.HostStatusResponse{Attached: h.host.Available()})
}

func (h *HostHandler) GetPresentation(c *gin.Context) {
	p, ok := h.host.Current()
	if !ok {
		appErr := pkg.NewDomainErrorSimple("PRESENTATION_NOT_FOUND", "No drop-in presentation is active", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPresentation(p))
}

// DeliverResult forwards the drop-in result to the pending showDropIn call.
func (h *HostHandler) DeliverResult(c *gin.Context) {
	var req request.DropInResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	outcome, err := req.ToOutcome()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err := h.host.Deliver(outcome); err != nil {
		if errors.Is(err, uihost.ErrNoPresentation) {
			appErr := pkg.NewDomainErrorSimple("NO_PRESENTATION", "No drop-in presentation is active", http.StatusConflict)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		h.log.Error("deliver drop-in result failed", zap.Error(err))
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
