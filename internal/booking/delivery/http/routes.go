package http

import (
	"github.com/gin-gonic/gin"

	"hotel-assistant/internal/middleware"
)

// RegisterRoutes maps /rooms and /bookings under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/rooms", h.ListRooms)

	bookings := rg.Group("/bookings")
	{
		bookings.POST("", mw.RateLimit(), h.Create)
		bookings.GET("/:number", h.Detail)
	}
}
