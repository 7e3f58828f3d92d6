package notify

import (
	"context"
	"fmt"
	"time"

	"waterdelivery/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// telegramSender is the part of *tgbotapi.BotAPI the sink needs.
type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramSink posts notifications to the operators' chat, at most about one message
// per second.
type TelegramSink struct {
	bot     telegramSender
	chatID  int64
	limiter *rate.Limiter
}

func NewTelegramSink(bot telegramSender, chatID int64) *TelegramSink {
	return &TelegramSink{
		bot:     bot,
		chatID:  chatID,
		limiter: rate.NewLimiter(rate.Every(time.Second), 3),
	}
}

func (s *TelegramSink) Name() string {
	return "telegram"
}

func (s *TelegramSink) Send(ctx context.Context, notification ports.Notification) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("telegram: %w", err)
	}

	msg := tgbotapi.NewMessage(s.chatID, telegramText(notification))
	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram: send message: %w", err)
	}
	return nil
}

func telegramText(notification ports.Notification) string {
	if notification.Title == "" {
		return notification.Message
	}
	return notification.Title + "\n\n" + notification.Message
}
