package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateReq binds and validates the booking form.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, req.validate()
}
