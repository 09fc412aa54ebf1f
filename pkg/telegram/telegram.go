package telegram

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"notification-hub/pkg/channel"
)

var tokenPattern = regexp.MustCompile(`^[0-9]+:[A-Za-z0-9_-]{20,}$`)

func (t *Telegram) Name() channel.Name {
	return channel.Bot
}

// Send resolves the chat id, layers p over the configured defaults and calls
// sendMessage. API rejections are returned as *channel.TransportError with
// the API's description.
func (t *Telegram) Send(ctx context.Context, p Payload) (*tgbotapi.APIResponse, error) {
	eff := p.Over(t.defaults)
	eff.ChatID = channel.Layer(p.ChatID, t.defaultChatID)

	resp, err := t.bot(ctx).MakeRequest(methodSendMessage, eff.params())
	if err != nil {
		if t.l != nil {
			t.l.Warnf(ctx, "pkg.telegram.Send: chat_id=%s: %v", eff.ChatID, err)
		}
		return nil, channel.NewTransportError(channel.Bot, err, apiDescription(err))
	}
	return resp, nil
}

// SendMessage sends text to the default chat.
func (t *Telegram) SendMessage(ctx context.Context, text string) (*tgbotapi.APIResponse, error) {
	return t.Send(ctx, Payload{Text: text})
}

// Ping sends text, or DefaultPingText when empty, to the default chat. This
// is a real message.
func (t *Telegram) Ping(ctx context.Context, text string) error {
	if text == "" {
		text = DefaultPingText
	}
	_, err := t.SendMessage(ctx, text)
	return err
}

// ValidateTokenFormat reports whether the token looks like
// <digits>:<20 or more of [A-Za-z0-9_-]>. It makes no request.
func (t *Telegram) ValidateTokenFormat() bool {
	return tokenPattern.MatchString(t.token)
}

// Verify checks the token shape, then pings.
func (t *Telegram) Verify(ctx context.Context) bool {
	return t.ValidateTokenFormat() && t.Ping(ctx, "") == nil
}

// bot returns a client bound to ctx. tgbotapi requests carry no context, so
// the context is attached by the HTTP client instead.
func (t *Telegram) bot(ctx context.Context) *tgbotapi.BotAPI {
	b := &tgbotapi.BotAPI{
		Token:  t.token,
		Client: contextClient{ctx: ctx, client: t.client},
	}
	b.SetAPIEndpoint(t.endpoint)
	return b
}

type contextClient struct {
	ctx    context.Context
	client *http.Client
}

func (c contextClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req.WithContext(c.ctx))
}

func apiDescription(err error) string {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// Over layers p on top of defaults.
func (p Payload) Over(defaults Payload) Payload {
	return Payload{
		ChatID:         channel.Layer(p.ChatID, defaults.ChatID),
		Text:           channel.Layer(p.Text, defaults.Text),
		ParseMode:      channel.Layer(p.ParseMode, defaults.ParseMode),
		DisablePreview: channel.Layer(p.DisablePreview, defaults.DisablePreview),
		Silent:         channel.Layer(p.Silent, defaults.Silent),
		ReplyToID:      channel.Layer(p.ReplyToID, defaults.ReplyToID),
		ThreadID:       channel.Layer(p.ThreadID, defaults.ThreadID),
	}
}

func (p Payload) params() tgbotapi.Params {
	params := tgbotapi.Params{}
	params.AddNonEmpty("chat_id", p.ChatID)
	params.AddNonEmpty("text", p.Text)
	params.AddNonEmpty("parse_mode", p.ParseMode)
	if p.DisablePreview != nil {
		params["disable_web_page_preview"] = strconv.FormatBool(*p.DisablePreview)
	}
	if p.Silent != nil {
		params["disable_notification"] = strconv.FormatBool(*p.Silent)
	}
	params.AddNonZero("reply_to_message_id", p.ReplyToID)
	params.AddNonZero("message_thread_id", p.ThreadID)
	return params
}
