package usecase

import (
	"context"
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"google.golang.org/api/sheets/v4"

	"notification-hub/internal/notification"
	"notification-hub/pkg/channel"
	"notification-hub/pkg/log"
	"notification-hub/pkg/mail"
	"notification-hub/pkg/slack"
	"notification-hub/pkg/telegram"
)

// probeBehaviour controls a fake's Verify.
type probeBehaviour struct {
	healthy bool
	panics  bool
}

func (p probeBehaviour) verify() bool {
	if p.panics {
		panic("probe exploded")
	}
	return p.healthy
}

type fakeMail struct {
	probeBehaviour
	mu       sync.Mutex
	err      error
	honorCtx bool
	sent     []mail.Message
}

func (f *fakeMail) Name() channel.Name              { return channel.Mail }
func (f *fakeMail) Verify(ctx context.Context) bool { return f.verify() }
func (f *fakeMail) Send(ctx context.Context, msg mail.Message) (*mail.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	if f.honorCtx && ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return &mail.Receipt{To: msg.To}, nil
}

type fakeSheet struct {
	probeBehaviour
	mu   sync.Mutex
	err  error
	rows [][]any
}

func (f *fakeSheet) Name() channel.Name              { return channel.Sheet }
func (f *fakeSheet) Verify(ctx context.Context) bool { return f.verify() }
func (f *fakeSheet) AddRow(ctx context.Context, cells []any, sheetName string) (*sheets.AppendValuesResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, cells)
	if f.err != nil {
		return nil, f.err
	}
	return &sheets.AppendValuesResponse{}, nil
}

type fakeChat struct {
	probeBehaviour
	mu   sync.Mutex
	err  error
	sent []slack.Payload
}

func (f *fakeChat) Name() channel.Name              { return channel.Chat }
func (f *fakeChat) Verify(ctx context.Context) bool { return f.verify() }
func (f *fakeChat) Send(ctx context.Context, p slack.Payload) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, p)
	if f.err != nil {
		return "", f.err
	}
	return "ok", nil
}

// fakeBot returns errs[i] for the i-th send, and success once errs runs out.
// With honorCtx set, a done context fails the send first.
type fakeBot struct {
	probeBehaviour
	mu        sync.Mutex
	errs      []error
	honorCtx  bool
	sent      []telegram.Payload
	delivered int
}

func (f *fakeBot) Name() channel.Name              { return channel.Bot }
func (f *fakeBot) Verify(ctx context.Context) bool { return f.verify() }
func (f *fakeBot) Send(ctx context.Context, p telegram.Payload) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := len(f.sent)
	f.sent = append(f.sent, p)
	if f.honorCtx && ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	f.delivered++
	return &tgbotapi.APIResponse{Ok: true}, nil
}

type fakes struct {
	mail  *fakeMail
	sheet *fakeSheet
	chat  *fakeChat
	bot   *fakeBot
}

func newFakes() *fakes {
	healthy := probeBehaviour{healthy: true}
	return &fakes{
		mail:  &fakeMail{probeBehaviour: healthy},
		sheet: &fakeSheet{probeBehaviour: healthy},
		chat:  &fakeChat{probeBehaviour: healthy},
		bot:   &fakeBot{probeBehaviour: healthy},
	}
}

func (f *fakes) channels() notification.Channels {
	return notification.Channels{Mail: f.mail, Sheet: f.sheet, Chat: f.chat, Bot: f.bot}
}

func (f *fakes) useCase(t *testing.T) *implUseCase {
	t.Helper()
	uc, err := newUseCase(log.NewNop(), f.channels())
	if err != nil {
		t.Fatalf("newUseCase() error = %v", err)
	}
	return uc
}
