package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "hotel-assistant/internal/agent/delivery/http"
	bookingHTTP "hotel-assistant/internal/booking/delivery/http"
	"hotel-assistant/internal/middleware"
)

// setupChatDomain registers /api/v1/chat.
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := chatHTTP.New(srv.l, srv.assistant)
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}

// setupBookingDomain registers /api/v1/rooms and /api/v1/bookings.
func (srv *HTTPServer) setupBookingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := bookingHTTP.New(srv.l, srv.bookingUC, srv.linker)
	bookingHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Booking domain registered")
	return nil
}
