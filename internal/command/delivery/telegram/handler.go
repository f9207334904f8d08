package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"smart-routine/internal/command"
	"smart-routine/internal/model"
	pkgLog "smart-routine/pkg/log"
	pkgResponse "smart-routine/pkg/response"
	pkgTelegram "smart-routine/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and processes the message in the background,
// since a calendar or LLM call can outlast Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot before the goroutine; the gin context is recycled after the response.
	msg := update.Message
	bgCtx := pkgLog.WithRequestID(context.Background(), pkgLog.RequestIDFrom(ctx))

	go func() {
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, errorReply)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch text {
	case "/start":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, startMessage, "Markdown")
	case "/help":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, helpMessage, "Markdown")
	}

	output, err := h.uc.Process(ctx, scopeOf(msg), command.ProcessInput{Text: text})
	if err != nil {
		return err
	}
	return h.bot.SendMessage(ctx, msg.Chat.ID, output.Reply)
}

func scopeOf(msg *pkgTelegram.Message) model.Scope {
	id := msg.Chat.ID
	if msg.From != nil {
		id = msg.From.ID
	}
	return model.Scope{
		UserID: fmt.Sprintf("telegram_%d", id),
		Source: model.SourceTelegram,
	}
}
