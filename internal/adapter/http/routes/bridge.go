package routes

import (
	"ryft_bridge/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathChannel = "/channel"
	PathHost    = "/host"
	PathResults = "/results"
)

func addChannelRoutes(rg *gin.RouterGroup, h *handlers.ChannelHandler) {
	rg.POST(PathChannel+"/:method", h.Invoke)
}

// addHostRoutes is called by the native shell, never by the Dart side.
func addHostRoutes(rg *gin.RouterGroup, h *handlers.HostHandler) {
	host := rg.Group(PathHost)
	{
		host.PUT("", h.Attach)
		host.DELETE("", h.Detach)
		host.GET("", h.Status)
		host.GET("/presentation", h.GetPresentation)
		host.POST("/presentation/result", h.DeliverResult)
	}
}

func addResultRoutes(rg *gin.RouterGroup, h *handlers.PaymentResultHandler) {
	results := rg.Group(PathResults)
	{
		results.GET("", h.ListResults)
		results.GET("/:id", h.GetResultByID)
	}
}
