package mail

import (
	"context"
	"time"

	"notification-hub/pkg/channel"
	"notification-hub/pkg/log"
)

// Config configures the mail channel. Username is the sender identity and
// must be a mail address.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration

	// Defaults is layered under every message passed to Send.
	Defaults Message

	// Transport overrides the SMTP transport built from the fields above.
	Transport Transport
}

// Message is the caller-facing mail payload. Every field is optional but at
// least one of Text and HTML must be set after layering.
type Message struct {
	To      string
	From    string
	Subject string
	Text    string
	HTML    string
}

// Envelope is the fully resolved message handed to the transport.
type Envelope struct {
	MessageID string
	From      string
	To        string
	Subject   string
	Text      string
	HTML      string
}

// Receipt describes an accepted submission.
type Receipt struct {
	MessageID string
	From      string
	To        string
	SentAt    time.Time
}

// Transport submits envelopes to a mail server.
type Transport interface {
	Send(ctx context.Context, env Envelope) error
	// Probe connects and authenticates without sending anything.
	Probe(ctx context.Context) error
}

// Mail is the mail delivery channel.
type Mail struct {
	l         log.Logger
	identity  string
	defaults  Message
	transport Transport
	now       func() time.Time
	newID     func() string
}

var _ channel.Adapter = (*Mail)(nil)
