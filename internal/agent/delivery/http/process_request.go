package http

import (
	"github.com/gin-gonic/gin"

	"hotel-assistant/internal/middleware"
)

// processChatReq binds the chat body. The session header is used when the
// body carries no session id.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	if req.SessionID == "" {
		req.SessionID = c.GetHeader(middleware.HeaderSessionID)
	}
	return req, req.validate()
}
