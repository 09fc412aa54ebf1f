package usecase

import (
	"context"
	"fmt"
	"time"

	goslack "github.com/slack-go/slack"

	"notification-hub/internal/notification"
	"notification-hub/pkg/channel"
	"notification-hub/pkg/mail"
	"notification-hub/pkg/slack"
	"notification-hub/pkg/telegram"
)

const (
	inquirySubject = "We received your inquiry"
	inquiryHeader  = "New inquiry"

	// compensationTimeout bounds the failure alert, which runs detached from
	// the caller's context.
	compensationTimeout = telegram.DefaultTimeout
)

// ProcessInquiry runs the inquiry steps in order. Completed steps are not
// undone when a later one fails.
func (uc *implUseCase) ProcessInquiry(ctx context.Context, input notification.InquiryInput) error {
	ctx = uc.l.With(ctx, "inquiry_email", input.Email)

	for _, s := range uc.inquirySteps(input) {
		if err := uc.runStep(ctx, s); err != nil {
			uc.compensate(ctx, input, s.channel, err)
			return err
		}
	}

	uc.l.Infof(ctx, "notification.usecase.ProcessInquiry: delivered to all channels")
	return nil
}

func (uc *implUseCase) inquirySteps(input notification.InquiryInput) []step {
	return []step{
		{channel.Sheet, func(ctx context.Context) error {
			_, err := uc.sheet.AddRow(ctx, inquiryRow(uc.now(), input), "")
			return err
		}},
		{channel.Mail, func(ctx context.Context) error {
			_, err := uc.mail.Send(ctx, confirmationMail(input))
			return err
		}},
		{channel.Chat, func(ctx context.Context) error {
			_, err := uc.chat.Send(ctx, inquiryChat(input))
			return err
		}},
		{channel.Bot, func(ctx context.Context) error {
			_, err := uc.bot.Send(ctx, inquiryAlert(input))
			return err
		}},
	}
}

// compensate sends one bot message describing the failure, even when ctx is
// already cancelled. Its own failure is logged and otherwise ignored.
func (uc *implUseCase) compensate(ctx context.Context, input notification.InquiryInput, failed channel.Name, cause error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	_, err := uc.bot.Send(ctx, failureAlert(input, failed, cause))
	observeCompensation(err)
	if err != nil {
		uc.l.Warnf(ctx, "notification.usecase.compensate: step=%s: compensation failed: %v", failed, err)
		return
	}
	uc.l.Infof(ctx, "notification.usecase.compensate: step=%s: failure reported", failed)
}

func inquiryRow(now time.Time, input notification.InquiryInput) []any {
	return []any{now.UTC().Format(time.RFC3339), input.Name, input.Email, input.Message}
}

func confirmationMail(input notification.InquiryInput) mail.Message {
	text := fmt.Sprintf(
		"Hi %s,\n\nThank you for reaching out. We received your message and will get back to you shortly.\n\nYour message:\n%s\n",
		orNA(input.Name), input.Message,
	)
	return mail.Message{
		To:      input.Email,
		Subject: inquirySubject,
		Text:    text,
	}
}

func inquiryChat(input notification.InquiryInput) slack.Payload {
	return slack.Payload{
		Text: fmt.Sprintf("%s from %s", inquiryHeader, mailto(input.Name, input.Email)),
		Blocks: []goslack.Block{
			slack.Header(inquiryHeader),
			slack.Fields(
				slack.Field{Label: "Name", Value: input.Name},
				slack.Field{Label: "Email", Value: input.Email},
			),
			slack.Section(orNA(input.Message)),
		},
	}
}

func inquiryAlert(input notification.InquiryInput) telegram.Payload {
	return telegram.Payload{
		Text: fmt.Sprintf("*%s*\nName: %s\nEmail: %s\n\n%s",
			inquiryHeader, md(orNA(input.Name)), md(orNA(input.Email)), md(orNA(input.Message))),
		ParseMode: telegram.ModeMarkdown,
	}
}

func failureAlert(input notification.InquiryInput, failed channel.Name, cause error) telegram.Payload {
	return telegram.Payload{
		Text: fmt.Sprintf("*Inquiry delivery failed*\nStep: %s\nName: %s\nEmail: %s\nError: %s",
			failed, md(orNA(input.Name)), md(orNA(input.Email)), md(cause.Error())),
		ParseMode: telegram.ModeMarkdown,
	}
}
