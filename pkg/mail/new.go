package mail

import (
	"time"

	"github.com/google/uuid"

	"notification-hub/pkg/channel"
	"notification-hub/pkg/log"
)

// New validates cfg and returns a mail channel. No connection is made until
// the first Send or Probe.
func New(l log.Logger, cfg Config) (*Mail, error) {
	if err := channel.Require(channel.Mail,
		channel.Field{Name: "username", Value: cfg.Username},
		channel.Field{Name: "password", Value: cfg.Password},
	); err != nil {
		return nil, err
	}
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	transport := cfg.Transport
	if transport == nil {
		transport = NewSMTPTransport(cfg)
	}

	return &Mail{
		l:         l,
		identity:  cfg.Username,
		defaults:  cfg.Defaults,
		transport: transport,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}, nil
}
