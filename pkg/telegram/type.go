package telegram

import (
	"net/http"
	"time"

	"notification-hub/pkg/channel"
	"notification-hub/pkg/log"
)

// Config configures the bot channel.
type Config struct {
	Token         string
	DefaultChatID string

	// Endpoint is a format string taking the token and the method name,
	// like DefaultEndpoint.
	Endpoint   string
	Timeout    time.Duration
	HTTPClient *http.Client

	// Defaults is layered under every payload passed to Send. Its ChatID is
	// ignored in favour of DefaultChatID.
	Defaults Payload
}

// Payload is a sendMessage request. ChatID may be a numeric id or an
// @channelusername.
type Payload struct {
	ChatID         string
	Text           string
	ParseMode      string
	DisablePreview *bool
	Silent         *bool
	ReplyToID      int
	ThreadID       int
}

// Telegram sends messages through the Telegram Bot API.
type Telegram struct {
	l             log.Logger
	token         string
	defaultChatID string
	endpoint      string
	defaults      Payload
	client        *http.Client
}

var _ channel.Adapter = (*Telegram)(nil)
