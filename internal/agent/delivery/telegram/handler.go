package telegram

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgLog "hotel-assistant/pkg/log"
	pkgResponse "hotel-assistant/pkg/response"
	pkgTelegram "hotel-assistant/pkg/telegram"
)

var errInvalidUpdate = pkgResponse.NewHTTPError(http.StatusBadRequest, 42000, "invalid update")

// HandleWebhook acknowledges the update at once and answers in the
// background, since a turn can take longer than Telegram waits.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cfg.SecretToken != "" {
		got := c.GetHeader(pkgTelegram.HeaderSecretToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.cfg.SecretToken)) != 1 {
			pkgResponse.Unauthorized(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Warnf(ctx, "telegram.HandleWebhook: failed to parse update: %v", err)
		pkgResponse.Error(c, errInvalidUpdate, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil || strings.TrimSpace(update.Message.Text) == "" {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.cfg.Timeout)
		defer cancel()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram.processMessage: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, msgFailure)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage answers one message. Each chat is one conversation.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	sessionID := fmt.Sprintf("%s%d", sessionPrefix, msg.Chat.ID)
	ctx = pkgLog.WithSessionID(ctx, sessionID)
	text := strings.TrimSpace(msg.Text)

	switch strings.ToLower(strings.Fields(text)[0]) {
	case commandStart, commandReset:
		h.assistant.Reset(ctx, sessionID)
		return h.bot.SendMessage(ctx, msg.Chat.ID, h.assistant.Greeting())
	case commandHelp:
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgHelp)
	}

	if err := h.bot.SendChatAction(ctx, msg.Chat.ID, pkgTelegram.ActionTyping); err != nil {
		h.l.Warnf(ctx, "telegram.processMessage: chat action: %v", err)
	}

	reply := h.assistant.Handle(ctx, sessionID, text)
	return h.bot.SendMessage(ctx, msg.Chat.ID, reply.Text)
}
