package mail

import (
	"context"
	"fmt"
	"strings"

	"notification-hub/pkg/channel"
)

func (m *Mail) Name() channel.Name {
	return channel.Mail
}

// Envelope resolves msg against the adapter defaults and sender identity.
// It performs no I/O.
func (m *Mail) Envelope(msg Message) Envelope {
	eff := msg.Over(m.defaults)
	return Envelope{
		From:    channel.Layer(eff.From, m.identity),
		To:      channel.Layer(eff.To, m.identity),
		Subject: channel.Layer(eff.Subject, DefaultSubject),
		Text:    eff.Text,
		HTML:    eff.HTML,
	}
}

// Send submits msg. Transport failures are returned as *channel.TransportError.
func (m *Mail) Send(ctx context.Context, msg Message) (*Receipt, error) {
	env := m.Envelope(msg)
	if env.Text == "" && env.HTML == "" {
		return nil, ErrEmptyBody
	}
	env.MessageID = fmt.Sprintf("%s@%s", m.newID(), domainOf(env.From))

	if err := m.transport.Send(ctx, env); err != nil {
		if m.l != nil {
			m.l.Warnf(ctx, "pkg.mail.Send: to=%s: %v", env.To, err)
		}
		return nil, channel.NewTransportError(channel.Mail, err, "")
	}

	return &Receipt{
		MessageID: env.MessageID,
		From:      env.From,
		To:        env.To,
		SentAt:    m.now(),
	}, nil
}

// Probe checks the server connection and credentials. Unlike Verify it
// surfaces the failure as a *channel.TransportError.
func (m *Mail) Probe(ctx context.Context) error {
	if err := m.transport.Probe(ctx); err != nil {
		return channel.NewTransportError(channel.Mail, err, "")
	}
	return nil
}

func (m *Mail) Verify(ctx context.Context) bool {
	return m.Probe(ctx) == nil
}

// Over layers msg on top of defaults.
func (msg Message) Over(defaults Message) Message {
	return Message{
		To:      channel.Layer(msg.To, defaults.To),
		From:    channel.Layer(msg.From, defaults.From),
		Subject: channel.Layer(msg.Subject, defaults.Subject),
		Text:    channel.Layer(msg.Text, defaults.Text),
		HTML:    channel.Layer(msg.HTML, defaults.HTML),
	}
}

func domainOf(addr string) string {
	if i := strings.LastIndex(addr, "@"); i >= 0 && i < len(addr)-1 {
		return strings.TrimSuffix(addr[i+1:], ">")
	}
	return "localhost"
}
