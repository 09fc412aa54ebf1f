package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"notification-hub/internal/notification"
	"notification-hub/pkg/channel"
	"notification-hub/pkg/telegram"
)

var testInquiry = notification.InquiryInput{
	Name:    "Ada Lovelace",
	Email:   "ada@example.com",
	Message: "Do you ship to London?",
}

func fixedNow() time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func TestProcessInquiry_AllChannels(t *testing.T) {
	f := newFakes()
	uc := f.useCase(t)
	uc.now = fixedNow

	if err := uc.ProcessInquiry(context.Background(), testInquiry); err != nil {
		t.Fatalf("ProcessInquiry() error = %v", err)
	}

	if len(f.sheet.rows) != 1 {
		t.Fatalf("sheet rows = %d, want 1", len(f.sheet.rows))
	}
	wantRow := []any{"2024-05-01T12:00:00Z", "Ada Lovelace", "ada@example.com", "Do you ship to London?"}
	for i, cell := range wantRow {
		if f.sheet.rows[0][i] != cell {
			t.Errorf("row[%d] = %v, want %v", i, f.sheet.rows[0][i], cell)
		}
	}

	if len(f.mail.sent) != 1 || f.mail.sent[0].To != testInquiry.Email {
		t.Errorf("mail = %+v", f.mail.sent)
	}
	if !strings.Contains(f.mail.sent[0].Text, testInquiry.Message) {
		t.Errorf("mail text missing message: %q", f.mail.sent[0].Text)
	}
	if len(f.chat.sent) != 1 || len(f.chat.sent[0].Blocks) != 3 {
		t.Errorf("chat = %+v", f.chat.sent)
	}
	if len(f.bot.sent) != 1 {
		t.Fatalf("bot sends = %d, want 1", len(f.bot.sent))
	}
	if f.bot.sent[0].ParseMode != telegram.ModeMarkdown {
		t.Errorf("parse mode = %q", f.bot.sent[0].ParseMode)
	}
}

func TestProcessInquiry_Failure(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(f *fakes, err error)
		failed       channel.Name
		wantRows     int
		wantMails    int
		wantChats    int
		wantBotSends int
	}{
		{
			name:         "sheet",
			setup:        func(f *fakes, err error) { f.sheet.err = err },
			failed:       channel.Sheet,
			wantRows:     1,
			wantBotSends: 1,
		},
		{
			name:         "mail",
			setup:        func(f *fakes, err error) { f.mail.err = err },
			failed:       channel.Mail,
			wantRows:     1,
			wantMails:    1,
			wantBotSends: 1,
		},
		{
			name:         "chat",
			setup:        func(f *fakes, err error) { f.chat.err = err },
			failed:       channel.Chat,
			wantRows:     1,
			wantMails:    1,
			wantChats:    1,
			wantBotSends: 1,
		},
		{
			name:         "bot",
			setup:        func(f *fakes, err error) { f.bot.errs = []error{err} },
			failed:       channel.Bot,
			wantRows:     1,
			wantMails:    1,
			wantChats:    1,
			wantBotSends: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakes()
			cause := &channel.TransportError{Channel: tt.failed, Message: "service unavailable"}
			tt.setup(f, cause)
			uc := f.useCase(t)

			err := uc.ProcessInquiry(context.Background(), testInquiry)
			if err != error(cause) {
				t.Fatalf("ProcessInquiry() error = %v, want the original error value", err)
			}

			if got := len(f.sheet.rows); got != tt.wantRows {
				t.Errorf("sheet rows = %d, want %d", got, tt.wantRows)
			}
			if got := len(f.mail.sent); got != tt.wantMails {
				t.Errorf("mails = %d, want %d", got, tt.wantMails)
			}
			if got := len(f.chat.sent); got != tt.wantChats {
				t.Errorf("chats = %d, want %d", got, tt.wantChats)
			}
			if got := len(f.bot.sent); got != tt.wantBotSends {
				t.Fatalf("bot sends = %d, want %d", got, tt.wantBotSends)
			}

			comp := f.bot.sent[len(f.bot.sent)-1].Text
			for _, want := range []string{"Step: " + string(tt.failed), "Ada Lovelace", "ada@example.com", "service unavailable"} {
				if !strings.Contains(comp, want) {
					t.Errorf("compensation %q missing %q", comp, want)
				}
			}
		})
	}
}

func TestProcessInquiry_CompensatesExactlyOnceOnThirdStep(t *testing.T) {
	f := newFakes()
	cause := errors.New("chat: channel_not_found")
	f.chat.err = cause
	uc := f.useCase(t)

	err := uc.ProcessInquiry(context.Background(), testInquiry)
	if err != cause {
		t.Fatalf("error = %v, want %v", err, cause)
	}
	if len(f.bot.sent) != 1 {
		t.Fatalf("compensations = %d, want exactly 1", len(f.bot.sent))
	}
	if !strings.Contains(f.bot.sent[0].Text, "Inquiry delivery failed") {
		t.Errorf("unexpected bot message %q", f.bot.sent[0].Text)
	}
}

func TestProcessInquiry_CompensationFailureKeepsOriginalError(t *testing.T) {
	f := newFakes()
	cause := errors.New("mail: 535 authentication failed")
	f.mail.err = cause
	f.bot.errs = []error{errors.New("bot: Unauthorized")}
	uc := f.useCase(t)

	err := uc.ProcessInquiry(context.Background(), testInquiry)
	if err != cause {
		t.Fatalf("error = %v, want %v", err, cause)
	}
	if len(f.bot.sent) != 1 {
		t.Errorf("bot sends = %d, want 1", len(f.bot.sent))
	}
	if len(f.chat.sent) != 0 {
		t.Errorf("chat should not run after mail failed")
	}
}

func TestProcessInquiry_CompensatesAfterCancellation(t *testing.T) {
	f := newFakes()
	f.mail.honorCtx = true
	f.bot.honorCtx = true
	uc := f.useCase(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := uc.ProcessInquiry(ctx, testInquiry)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if len(f.sheet.rows) != 1 {
		t.Errorf("sheet rows = %d, want 1", len(f.sheet.rows))
	}
	if f.bot.delivered != 1 {
		t.Fatalf("delivered bot messages = %d, want 1", f.bot.delivered)
	}
	if !strings.Contains(f.bot.sent[0].Text, "Step: mail") {
		t.Errorf("compensation text = %q", f.bot.sent[0].Text)
	}
}

func TestFailureAlert_EscapesMarkdown(t *testing.T) {
	p := failureAlert(notification.InquiryInput{Name: "snake_case", Email: "a*b@example.com"}, channel.Chat, errors.New("bad [request]"))
	for _, want := range []string{`snake\_case`, `a\*b@example.com`, `bad \[request]`} {
		if !strings.Contains(p.Text, want) {
			t.Errorf("text %q missing %q", p.Text, want)
		}
	}
}
