package slack

import (
	"net/http"
	"strings"
	"time"

	"notification-hub/pkg/channel"
	"notification-hub/pkg/log"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

// New validates cfg and returns a webhook channel. The URL shape is not
// checked here; see ValidateURLFormat.
func New(l log.Logger, cfg Config) (*Slack, error) {
	if err := channel.Require(channel.Chat,
		channel.Field{Name: "webhook_url", Value: cfg.WebhookURL},
	); err != nil {
		return nil, err
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	client := cfg.HTTPClient
	if client == nil {
		client = newHTTPClient(cfg.Timeout)
	}

	return &Slack{
		l:          l,
		webhookURL: strings.TrimSpace(cfg.WebhookURL),
		defaults:   cfg.Defaults,
		client:     client,
	}, nil
}

// Close releases idle connections.
func (s *Slack) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
