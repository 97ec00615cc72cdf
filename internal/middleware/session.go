package middleware

import (
	"github.com/gin-gonic/gin"

	"hotel-assistant/pkg/log"
)

// HeaderSessionID lets clients pin a request to a conversation.
const HeaderSessionID = "X-Session-ID"

// SessionContext copies the session header into the request context for logging.
func (m Middleware) SessionContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.GetHeader(HeaderSessionID); id != "" {
			c.Request = c.Request.WithContext(log.WithSessionID(c.Request.Context(), id))
		}
		c.Next()
	}
}
