package telegram

import (
	"net/http"

	"notification-hub/pkg/channel"
	"notification-hub/pkg/log"
)

// New validates cfg and returns a bot channel. Unlike tgbotapi.NewBotAPI it
// does not call getMe, so construction never touches the network.
func New(l log.Logger, cfg Config) (*Telegram, error) {
	if err := channel.Require(channel.Bot,
		channel.Field{Name: "token", Value: cfg.Token},
		channel.Field{Name: "default_chat_id", Value: cfg.DefaultChatID},
	); err != nil {
		return nil, err
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	defaults := cfg.Defaults
	defaults.ChatID = ""

	return &Telegram{
		l:             l,
		token:         cfg.Token,
		defaultChatID: cfg.DefaultChatID,
		endpoint:      cfg.Endpoint,
		defaults:      defaults,
		client:        client,
	}, nil
}

// Close releases idle connections.
func (t *Telegram) Close() error {
	t.client.CloseIdleConnections()
	return nil
}
