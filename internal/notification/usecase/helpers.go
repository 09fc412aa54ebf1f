package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"notification-hub/pkg/channel"
)

const dateLayout = "2006-01-02"

// step is one channel send of a compound operation.
type step struct {
	channel channel.Name
	run     func(ctx context.Context) error
}

// runStep executes s and records its outcome.
func (uc *implUseCase) runStep(ctx context.Context, s step) error {
	start := time.Now()
	err := s.run(ctx)
	observeDelivery(s.channel, time.Since(start), err)
	if err != nil {
		uc.l.Errorf(ctx, "notification.usecase: step=%s: %v", s.channel, err)
		return err
	}
	uc.l.Debugf(ctx, "notification.usecase: step=%s: delivered", s.channel)
	return nil
}

// md escapes user supplied text for the bot's legacy Markdown mode.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format(dateLayout)
}

func mailto(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
