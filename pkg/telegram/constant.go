package telegram

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Parse modes understood by sendMessage.
const (
	ModeMarkdown   = tgbotapi.ModeMarkdown
	ModeMarkdownV2 = tgbotapi.ModeMarkdownV2
	ModeHTML       = tgbotapi.ModeHTML
)

const (
	DefaultTimeout  = 10 * time.Second
	DefaultEndpoint = tgbotapi.APIEndpoint
	DefaultPingText = "Bot connection verified"

	methodSendMessage = "sendMessage"
)
