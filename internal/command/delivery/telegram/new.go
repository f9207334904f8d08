package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"smart-routine/internal/command"
	pkgLog "smart-routine/pkg/log"
	pkgTelegram "smart-routine/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender is the part of the Telegram bot used to reply.
// *pkgTelegram.Bot satisfies it.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error
}

var _ Sender = (*pkgTelegram.Bot)(nil)

type handler struct {
	l   pkgLog.Logger
	uc  command.UseCase
	bot Sender
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc command.UseCase, bot Sender) Handler {
	return &handler{l: l, uc: uc, bot: bot}
}
