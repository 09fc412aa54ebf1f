package slack

import (
	"net/http"
	"time"

	goslack "github.com/slack-go/slack"

	"notification-hub/pkg/channel"
	"notification-hub/pkg/log"
)

// Config configures the chat webhook channel.
type Config struct {
	WebhookURL string
	Timeout    time.Duration
	HTTPClient *http.Client

	// Defaults is layered under every payload passed to Send; typically it
	// carries Username, IconEmoji and Channel.
	Defaults Payload
}

// Payload is an incoming-webhook message.
type Payload struct {
	Text        string               `json:"text,omitempty"`
	Blocks      []goslack.Block      `json:"blocks,omitempty"`
	Attachments []goslack.Attachment `json:"attachments,omitempty"`
	Username    string               `json:"username,omitempty"`
	IconEmoji   string               `json:"icon_emoji,omitempty"`
	IconURL     string               `json:"icon_url,omitempty"`
	Channel     string               `json:"channel,omitempty"`
	Mrkdwn      *bool                `json:"mrkdwn,omitempty"`
}

// Slack posts messages to a Slack-compatible incoming webhook.
type Slack struct {
	l          log.Logger
	webhookURL string
	defaults   Payload
	client     *http.Client
}

var _ channel.Adapter = (*Slack)(nil)
