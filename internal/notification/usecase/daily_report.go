package usecase

import (
	"context"
	"fmt"
	"strings"

	goslack "github.com/slack-go/slack"

	"notification-hub/internal/notification"
	"notification-hub/pkg/channel"
	"notification-hub/pkg/slack"
	"notification-hub/pkg/telegram"
)

const dailyReportTitle = "Daily report"

// DailyReport posts stats to chat, then bot. There is no compensation: the
// first error is returned as-is and the bot is skipped if chat failed.
func (uc *implUseCase) DailyReport(ctx context.Context, stats notification.DailyStats) error {
	steps := []step{
		{channel.Chat, func(ctx context.Context) error {
			_, err := uc.chat.Send(ctx, dailyChat(stats))
			return err
		}},
		{channel.Bot, func(ctx context.Context) error {
			_, err := uc.bot.Send(ctx, dailyAlert(stats))
			return err
		}},
	}
	for _, s := range steps {
		if err := uc.runStep(ctx, s); err != nil {
			return err
		}
	}

	uc.l.Infof(ctx, "notification.usecase.DailyReport: date=%s: posted", formatDate(stats.Date))
	return nil
}

func dailyFields(stats notification.DailyStats) []slack.Field {
	return []slack.Field{
		{Label: "Inquiries", Value: itoa(stats.Inquiries)},
		{Label: "Emails sent", Value: itoa(stats.EmailsSent)},
		{Label: "Chat messages", Value: itoa(stats.ChatMessages)},
		{Label: "Bot messages", Value: itoa(stats.BotMessages)},
		{Label: "Failed steps", Value: itoa(stats.FailedSteps)},
		{Label: "Compensations", Value: itoa(stats.Compensations)},
	}
}

func dailyChat(stats notification.DailyStats) slack.Payload {
	title := fmt.Sprintf("%s %s", dailyReportTitle, formatDate(stats.Date))
	blocks := []goslack.Block{
		slack.Header(title),
		slack.Fields(dailyFields(stats)...),
	}
	if stats.Notes != "" {
		blocks = append(blocks, slack.Divider(), slack.Section(stats.Notes))
	}
	return slack.Payload{Text: title, Blocks: blocks}
}

func dailyAlert(stats notification.DailyStats) telegram.Payload {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s %s*\n", dailyReportTitle, md(formatDate(stats.Date)))
	for _, f := range dailyFields(stats) {
		fmt.Fprintf(&b, "%s: %s\n", f.Label, f.Value)
	}
	if stats.Notes != "" {
		fmt.Fprintf(&b, "\n%s", md(stats.Notes))
	}
	return telegram.Payload{
		Text:      strings.TrimRight(b.String(), "\n"),
		ParseMode: telegram.ModeMarkdown,
	}
}
