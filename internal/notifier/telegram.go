package notifier

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/streak-guardian/internal/models"
	"go.uber.org/zap"
)

// DeliveryError reports an unreachable notifier or a rejected payload.
type DeliveryError struct {
	ChatID int64
	Err    error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver notification (chat_id: %d): %v", e.ChatID, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Telegram sends composed notifications to a single chat.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot API: %w", err)
	}

	return &Telegram{api: api, chatID: chatID}, nil
}

func (t *Telegram) Send(_ context.Context, notification *models.Notification) error {
	msg := BuildMessage(t.chatID, notification)

	if _, err := t.api.Send(msg); err != nil {
		return &DeliveryError{ChatID: t.chatID, Err: err}
	}

	zap.S().Info("message sent to Telegram", zap.Int64("chat_id", t.chatID))
	return nil
}

// BuildMessage renders a notification into the outgoing Telegram message:
// leading emoji, HTML body and an optional single-row inline URL keyboard.
func BuildMessage(chatID int64, notification *models.Notification) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, notification.Emoji+" "+notification.Text)
	msg.ParseMode = tgbotapi.ModeHTML

	if len(notification.Buttons) > 0 {
		row := make([]tgbotapi.InlineKeyboardButton, 0, len(notification.Buttons))
		for _, button := range notification.Buttons {
			row = append(row, tgbotapi.NewInlineKeyboardButtonURL(button.Label, button.URL))
		}
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(row)
	}

	return msg
}
