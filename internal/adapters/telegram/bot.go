package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/SamanGhn/Cloudflare-Dashboard/internal/application"
)

// Handler is the piece of the conversation service the transport needs.
type Handler interface {
	Handle(ctx context.Context, in application.Incoming) application.Reply
}

// Bot runs the Telegram long-polling loop and translates between Telegram
// updates and the transport-agnostic conversation types.
type Bot struct {
	api    *tgbotapi.BotAPI
	conv   Handler
	logger *zap.Logger
}

func New(token string, conv Handler, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	return &Bot{api: api, conv: conv, logger: logger}, nil
}

// Run polls for updates until ctx is cancelled. Each inbound message is
// handled on its own goroutine; per-user ordering is enforced by the
// conversation service, not the transport.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	b.logger.Info("telegram polling started", zap.String("bot", b.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("telegram polling stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			message := update.Message
			if message == nil || message.From == nil || message.Text == "" {
				continue
			}
			go b.handle(ctx, message)
		}
	}
}

func (b *Bot) handle(ctx context.Context, message *tgbotapi.Message) {
	in := application.Incoming{
		UserID:   message.From.ID,
		Username: message.From.UserName,
		Text:     message.Text,
	}
	b.logger.Debug("inbound message", zap.Int64("user_id", in.UserID))

	reply := b.conv.Handle(ctx, in)
	if reply.Text == "" {
		return
	}

	out := tgbotapi.NewMessage(message.Chat.ID, reply.Text)
	if reply.Markdown {
		out.ParseMode = tgbotapi.ModeMarkdown
	}
	if len(reply.Keyboard) > 0 {
		out.ReplyMarkup = replyKeyboard(reply.Keyboard, reply.OneTime)
	}

	if _, err := b.api.Send(out); err != nil {
		b.logger.Error("send message", zap.Error(err), zap.Int64("chat_id", message.Chat.ID))
	}
}

func replyKeyboard(rows [][]string, oneTime bool) tgbotapi.ReplyKeyboardMarkup {
	buttonRows := make([][]tgbotapi.KeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, label := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
		}
		buttonRows = append(buttonRows, buttons)
	}

	markup := tgbotapi.NewReplyKeyboard(buttonRows...)
	markup.OneTimeKeyboard = oneTime
	return markup
}
