package notification

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"google.golang.org/api/sheets/v4"

	"notification-hub/pkg/channel"
	"notification-hub/pkg/mail"
	"notification-hub/pkg/slack"
	"notification-hub/pkg/telegram"
)

// UseCase fans business events out to every configured channel.
type UseCase interface {
	// ProcessInquiry records and announces an inquiry. Steps run in order
	// (sheet, mail, chat, bot) and stop at the first failure, after which a
	// single compensating bot message is attempted. The returned error is the
	// failing step's error, unchanged.
	ProcessInquiry(ctx context.Context, input InquiryInput) error

	// HealthCheck probes every channel concurrently. It never fails.
	HealthCheck(ctx context.Context) HealthReport

	// DailyReport posts stats to chat, then to the bot. Errors are returned
	// as-is with no compensation.
	DailyReport(ctx context.Context, stats DailyStats) error
}

// The hub depends only on the operations it uses.

type MailSender interface {
	channel.Adapter
	Send(ctx context.Context, msg mail.Message) (*mail.Receipt, error)
}

type SheetAppender interface {
	channel.Adapter
	AddRow(ctx context.Context, cells []any, sheetName string) (*sheets.AppendValuesResponse, error)
}

type ChatPoster interface {
	channel.Adapter
	Send(ctx context.Context, p slack.Payload) (string, error)
}

type BotMessenger interface {
	channel.Adapter
	Send(ctx context.Context, p telegram.Payload) (*tgbotapi.APIResponse, error)
}
