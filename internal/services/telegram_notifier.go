package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"nsuemschool/internal/models"
)

// LeadNotifier — уведомление о новой заявке во внешний канал.
type LeadNotifier interface {
	NotifyNewLead(req *models.ConsultationRequest) error
}

// TelegramNotifier шлёт уведомления о заявках в рабочий чат.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier возвращает nil, если интеграция не сконфигурирована —
// вызывающий код обязан переживать nil-нотификатор.
func NewTelegramNotifier(botToken string, chatID int64) (*TelegramNotifier, error) {
	if botToken == "" || chatID == 0 {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	log.Printf("[tg] бот авторизован: @%s", bot.Self.UserName)
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (t *TelegramNotifier) NotifyNewLead(req *models.ConsultationRequest) error {
	if t == nil || t.bot == nil {
		return nil
	}
	text := fmt.Sprintf(
		"Новая заявка на консультацию\n\nИмя: %s\nEmail: %s\nТелефон: %s\nДата: %s",
		req.FullName, req.Email, req.Phone, req.Date.Format("02.01.2006 15:04"),
	)
	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}
