package usecase

import (
	"context"
	"fmt"
	"time"

	"notification-hub/internal/notification"
	"notification-hub/pkg/channel"
	"notification-hub/pkg/log"
	"notification-hub/pkg/mail"
	"notification-hub/pkg/sheet"
	"notification-hub/pkg/slack"
	"notification-hub/pkg/telegram"
)

// Config holds one configuration per channel.
type Config struct {
	Mail  mail.Config
	Sheet sheet.Config
	Chat  slack.Config
	Bot   telegram.Config
}

type implUseCase struct {
	l     log.Logger
	mail  notification.MailSender
	sheet notification.SheetAppender
	chat  notification.ChatPoster
	bot   notification.BotMessenger
	now   func() time.Time
}

// New returns a hub over already constructed channels.
func New(l log.Logger, ch notification.Channels) (notification.UseCase, error) {
	uc, err := newUseCase(l, ch)
	if err != nil {
		return nil, err
	}
	return uc, nil
}

func newUseCase(l log.Logger, ch notification.Channels) (*implUseCase, error) {
	var missing channel.Name
	switch {
	case ch.Mail == nil:
		missing = channel.Mail
	case ch.Sheet == nil:
		missing = channel.Sheet
	case ch.Chat == nil:
		missing = channel.Chat
	case ch.Bot == nil:
		missing = channel.Bot
	}
	if missing != "" {
		return nil, fmt.Errorf("%w: %s", notification.ErrMissingChannel, missing)
	}

	return &implUseCase{
		l:     l,
		mail:  ch.Mail,
		sheet: ch.Sheet,
		chat:  ch.Chat,
		bot:   ch.Bot,
		now:   time.Now,
	}, nil
}

// NewFromConfig constructs every channel from cfg. The first channel that
// fails to construct fails the hub, typically with a *channel.ConfigError.
func NewFromConfig(ctx context.Context, l log.Logger, cfg Config) (notification.UseCase, error) {
	m, err := mail.New(l, cfg.Mail)
	if err != nil {
		return nil, err
	}
	sh, err := sheet.New(ctx, l, cfg.Sheet)
	if err != nil {
		return nil, err
	}
	chat, err := slack.New(l, cfg.Chat)
	if err != nil {
		return nil, err
	}
	bot, err := telegram.New(l, cfg.Bot)
	if err != nil {
		return nil, err
	}

	return New(l, notification.Channels{
		Mail:  m,
		Sheet: sh,
		Chat:  chat,
		Bot:   bot,
	})
}
