package services

import (
	"fmt"
	"html"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/isaqueks/tasks/internal/models"
)

// TelegramService pushes new-task notifications to users who linked a chat.
// A nil *TelegramService is valid and means notifications are disabled.
type TelegramService struct {
	bot *tgbotapi.BotAPI
}

func NewTelegramService(botToken string) (*TelegramService, error) {
	if botToken == "" {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &TelegramService{bot: bot}, nil
}

func (s *TelegramService) SendMessage(chatID int64, text string) error {
	if s == nil || chatID == 0 {
		return nil
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := s.bot.Send(msg); err != nil {
		log.Printf("[tg][send][err] chatID=%d: %v", chatID, err)
		return err
	}
	return nil
}

// NotifyTaskCreated formats and sends the new-task message. Best effort:
// errors are logged by SendMessage and never fail the request.
func (s *TelegramService) NotifyTaskCreated(chatID int64, t *models.Task) {
	if s == nil || t == nil {
		return
	}
	date := "backlog"
	if t.Date != nil {
		date = t.Date.String()
	}
	company := ""
	if t.Company != nil {
		company = t.Company.Name
	}
	text := "\U0001F4CC New task\n" +
		"• <b>" + html.EscapeString(t.Name) + "</b>\n" +
		"• Client: <code>" + html.EscapeString(company) + "</code>\n" +
		"• Priority: <code>" + string(t.Priority) + "</code>\n" +
		"• Date: <code>" + date + "</code>"
	_ = s.SendMessage(chatID, text)
}
