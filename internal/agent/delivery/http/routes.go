package http

import (
	"github.com/gin-gonic/gin"

	"hotel-assistant/internal/middleware"
)

// RegisterRoutes maps /chat under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("", mw.RateLimit(), h.Chat)
		chat.POST("/sessions", h.StartSession)
		chat.DELETE("/sessions/:id", h.EndSession)
	}
}
