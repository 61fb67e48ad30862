package services

import (
	"html"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"taskboard/internal/models"
)

type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramService posts task changes into one team chat.
type TelegramService struct {
	bot    telegramSender
	chatID int64
}

// NewTelegramService returns nil (notifications off) when no token is configured.
func NewTelegramService(botToken string, chatID int64) (*TelegramService, error) {
	if botToken == "" {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	log.Printf("[tg] authorized as @%s chatID=%d", bot.Self.UserName, chatID)
	return &TelegramService{bot: bot, chatID: chatID}, nil
}

func (t *TelegramService) SendMessage(text string) error {
	if t == nil || t.bot == nil || t.chatID == 0 {
		log.Printf("[tg][skip] bot or chatID empty")
		return nil
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := t.bot.Send(msg); err != nil {
		log.Printf("[tg][send][err] chatID=%d: %v", t.chatID, err)
		return err
	}
	return nil
}

// FormatTask renders the chat message for a task event (parse_mode=HTML).
func FormatTask(prefix string, t *models.Task, loc *time.Location) string {
	due := "—"
	if d, ok := t.Due(); ok {
		due = d.In(loc).Format("2006-01-02 15:04")
	}
	assignee := "—"
	if t.AssignedToUsername != "" {
		assignee = html.EscapeString(t.AssignedToUsername)
	}
	return prefix + "\n" +
		"• <b>" + html.EscapeString(t.Title) + "</b>\n" +
		"• Status: <code>" + string(t.Status) + "</code>\n" +
		"• Priority: <code>" + string(t.Priority) + "</code>\n" +
		"• Due: <code>" + due + "</code>\n" +
		"• Assignee: " + assignee
}
