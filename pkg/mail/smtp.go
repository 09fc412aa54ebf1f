package mail

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// smtpClient is the part of *gomail.Client the transport uses.
type smtpClient interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
	DialWithContext(ctx context.Context) error
	Close() error
}

// SMTPTransport submits mail over SMTP with STARTTLS and PLAIN auth. A fresh
// client is built for every call so that concurrent sends share nothing.
type SMTPTransport struct {
	host     string
	port     int
	username string
	password string
	timeout  time.Duration

	newClient func() (smtpClient, error)
}

// NewSMTPTransport returns a transport for the server described by cfg.
func NewSMTPTransport(cfg Config) *SMTPTransport {
	t := &SMTPTransport{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		timeout:  cfg.Timeout,
	}
	t.newClient = func() (smtpClient, error) { return t.client() }
	return t
}

func (t *SMTPTransport) client() (*gomail.Client, error) {
	opts := []gomail.Option{
		gomail.WithPort(t.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(t.username),
		gomail.WithPassword(t.password),
		gomail.WithTimeout(t.timeout),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	}
	if t.port == 465 {
		opts = append(opts, gomail.WithSSL())
	}
	return gomail.NewClient(t.host, opts...)
}

func (t *SMTPTransport) Send(ctx context.Context, env Envelope) error {
	msg := gomail.NewMsg()
	if err := msg.From(env.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(env.To); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(env.Subject)
	if env.MessageID != "" {
		msg.SetMessageIDWithValue(env.MessageID)
	}
	switch {
	case env.Text != "" && env.HTML != "":
		msg.SetBodyString(gomail.TypeTextPlain, env.Text)
		msg.AddAlternativeString(gomail.TypeTextHTML, env.HTML)
	case env.HTML != "":
		msg.SetBodyString(gomail.TypeTextHTML, env.HTML)
	default:
		msg.SetBodyString(gomail.TypeTextPlain, env.Text)
	}

	c, err := t.newClient()
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}
	if err := c.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

// Probe dials and authenticates. Once that succeeds the server is healthy, so
// an error from the closing QUIT is ignored.
func (t *SMTPTransport) Probe(ctx context.Context) error {
	c, err := t.newClient()
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}
	if err := c.DialWithContext(ctx); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	_ = c.Close()
	return nil
}
