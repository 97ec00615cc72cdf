package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hotel-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Routes the message to a query, knowledge lookup, booking or chat executor and returns the reply.
// @Description Omit session_id to start a new conversation; the generated id is returned.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	reply := h.assistant.Handle(c.Request.Context(), req.SessionID, req.Message)
	response.OK(c, h.newChatResp(reply))
}

// StartSession godoc
// @Summary     Start a chat session
// @Description Returns a new session id and the assistant's greeting.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} sessionResp
// @Router      /api/v1/chat/sessions [POST]
func (h *handler) StartSession(c *gin.Context) {
	response.OK(c, sessionResp{
		SessionID: uuid.NewString(),
		Greeting:  h.assistant.Greeting(),
	})
}

// EndSession godoc
// @Summary     End a chat session
// @Description Forgets the conversation history, draft and mode of a session.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session id"
// @Success     200 {object} response.Resp
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) EndSession(c *gin.Context) {
	h.assistant.Reset(c.Request.Context(), c.Param("id"))
	response.OK(c, nil)
}
