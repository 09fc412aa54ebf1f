package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"notification-hub/pkg/channel"
)

var webhookURLPattern = regexp.MustCompile(`^https://hooks\.[a-z0-9-]+\.com/services/[^/\s]+/[^/\s]+/[^/\s]+$`)

func (s *Slack) Name() channel.Name {
	return channel.Chat
}

// Send layers p over the configured defaults and posts it. It returns the raw
// response body, which for Slack is "ok".
func (s *Slack) Send(ctx context.Context, p Payload) (string, error) {
	body, err := s.post(ctx, p.Over(s.defaults))
	if err != nil {
		if s.l != nil {
			s.l.Warnf(ctx, "pkg.slack.Send: %v", err)
		}
		return "", err
	}
	return body, nil
}

// SendNotification posts a plain text message.
func (s *Slack) SendNotification(ctx context.Context, text string) (string, error) {
	return s.Send(ctx, Payload{Text: text})
}

// Ping posts text, or DefaultPingText when empty. This is a real post.
func (s *Slack) Ping(ctx context.Context, text string) error {
	if text == "" {
		text = DefaultPingText
	}
	_, err := s.SendNotification(ctx, text)
	return err
}

// ValidateURLFormat reports whether the webhook URL has the
// https://hooks.<service>.com/services/<a>/<b>/<c> shape. It makes no request.
func (s *Slack) ValidateURLFormat() bool {
	return webhookURLPattern.MatchString(s.webhookURL)
}

// Verify checks the URL shape, then pings.
func (s *Slack) Verify(ctx context.Context) bool {
	return s.ValidateURLFormat() && s.Ping(ctx, "") == nil
}

func (s *Slack) post(ctx context.Context, p Payload) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", channel.NewTransportError(channel.Chat, fmt.Errorf("failed to marshal payload: %w", err), "")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(data))
	if err != nil {
		return "", channel.NewTransportError(channel.Chat, fmt.Errorf("failed to create request: %w", err), "")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", channel.NewTransportError(channel.Chat, err, "")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return "", channel.NewTransportError(channel.Chat, fmt.Errorf("failed to read response body: %w", err), "")
	}
	body := string(raw)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		cause := fmt.Errorf("webhook returned status %d", resp.StatusCode)
		return "", channel.NewTransportError(channel.Chat, cause, errorMessage(raw, resp.StatusCode))
	}
	return body, nil
}

// errorMessage prefers a JSON "error" field, then the plain body, then the
// status text.
func errorMessage(raw []byte, status int) string {
	var structured struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &structured) == nil && structured.Error != "" {
		return structured.Error
	}
	if body := strings.TrimSpace(string(raw)); body != "" {
		return body
	}
	return http.StatusText(status)
}

// Over layers p on top of defaults.
func (p Payload) Over(defaults Payload) Payload {
	return Payload{
		Text:        channel.Layer(p.Text, defaults.Text),
		Blocks:      channel.LayerSlice(p.Blocks, defaults.Blocks),
		Attachments: channel.LayerSlice(p.Attachments, defaults.Attachments),
		Username:    channel.Layer(p.Username, defaults.Username),
		IconEmoji:   channel.Layer(p.IconEmoji, defaults.IconEmoji),
		IconURL:     channel.Layer(p.IconURL, defaults.IconURL),
		Channel:     channel.Layer(p.Channel, defaults.Channel),
		Mrkdwn:      channel.Layer(p.Mrkdwn, defaults.Mrkdwn),
	}
}
