package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Environment Configuration
	Environment EnvironmentConfig

	// Authentication & Security Configuration
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig

	// Channel Configuration
	Mail  MailConfig
	Sheet SheetConfig
	Chat  ChatConfig
	Bot   BotConfig
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host            string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port            int           `env:"HTTP_PORT" envDefault:"8080"`
	Mode            string        `env:"HTTP_MODE" envDefault:"release"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"15s"`
	TrustedProxies  []string      `env:"HTTP_TRUSTED_PROXIES" envSeparator:","`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"true"`
}

// EnvironmentConfig is the configuration for environment-aware features
type EnvironmentConfig struct {
	Name string `env:"ENV" envDefault:"production"`
}

// JWTConfig is the configuration for the internal API bearer tokens
type JWTConfig struct {
	SecretKey string        `env:"JWT_SECRET_KEY"`
	Issuer    string        `env:"JWT_ISSUER" envDefault:"notification-hub"`
	TTL       time.Duration `env:"JWT_TTL" envDefault:"24h"`
}

// CORSConfig lists the origins allowed to call the public API
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// RateLimitConfig limits inquiries per client IP. A limit of 0 disables it.
type RateLimitConfig struct {
	Limit  int           `env:"RATE_LIMIT_INQUIRIES" envDefault:"10"`
	Window time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
}

// MailConfig is the configuration for SMTP submission
type MailConfig struct {
	Host     string        `env:"MAIL_HOST" envDefault:"smtp.gmail.com"`
	Port     int           `env:"MAIL_PORT" envDefault:"587"`
	Username string        `env:"MAIL_USERNAME"`
	Password string        `env:"MAIL_PASSWORD"`
	Subject  string        `env:"MAIL_DEFAULT_SUBJECT"`
	Timeout  time.Duration `env:"MAIL_TIMEOUT" envDefault:"10s"`
}

// SheetConfig is the configuration for the Google Sheets service account
type SheetConfig struct {
	ClientEmail      string        `env:"GOOGLE_CLIENT_EMAIL"`
	PrivateKey       string        `env:"GOOGLE_PRIVATE_KEY"`
	SpreadsheetID    string        `env:"GOOGLE_SPREADSHEET_ID"`
	SheetName        string        `env:"GOOGLE_SHEET_NAME" envDefault:"Sheet1"`
	ValueInputOption string        `env:"GOOGLE_VALUE_INPUT_OPTION" envDefault:"USER_ENTERED"`
	Timeout          time.Duration `env:"GOOGLE_TIMEOUT" envDefault:"10s"`
}

// ChatConfig is the configuration for the Slack incoming webhook
type ChatConfig struct {
	WebhookURL string        `env:"SLACK_WEBHOOK_URL"`
	Username   string        `env:"SLACK_USERNAME"`
	IconEmoji  string        `env:"SLACK_ICON_EMOJI"`
	Channel    string        `env:"SLACK_CHANNEL"`
	Timeout    time.Duration `env:"SLACK_TIMEOUT" envDefault:"10s"`
}

// BotConfig is the configuration for the Telegram bot
type BotConfig struct {
	Token          string        `env:"TELEGRAM_BOT_TOKEN"`
	ChatID         string        `env:"TELEGRAM_CHAT_ID"`
	ParseMode      string        `env:"TELEGRAM_PARSE_MODE"`
	DisablePreview bool          `env:"TELEGRAM_DISABLE_PREVIEW" envDefault:"false"`
	Timeout        time.Duration `env:"TELEGRAM_TIMEOUT" envDefault:"10s"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	return load(env.Options{})
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks server settings only. Channel credentials are checked by
// the channels themselves when the hub is built.
func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("config: HTTP_PORT out of range: %d", c.HTTPServer.Port)
	}
	if c.RateLimit.Limit < 0 {
		return fmt.Errorf("config: RATE_LIMIT_INQUIRIES must not be negative: %d", c.RateLimit.Limit)
	}
	switch c.HTTPServer.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: HTTP_MODE must be debug, release or test, got %q", c.HTTPServer.Mode)
	}
	return nil
}
