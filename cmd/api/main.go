package main

import (
	"context"
	"fmt"

	"notification-hub/config"
	"notification-hub/internal/httpserver"
	"notification-hub/internal/middleware"
	"notification-hub/internal/notification/usecase"
	"notification-hub/pkg/channel"
	"notification-hub/pkg/jwt"
	"notification-hub/pkg/log"
	"notification-hub/pkg/mail"
	"notification-hub/pkg/sheet"
	"notification-hub/pkg/slack"
	"notification-hub/pkg/telegram"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()
	logger.Infof(ctx, "Starting notification hub (env=%s)...", cfg.Environment.Name)

	// Channels and hub
	hubCfg := hubConfig(cfg)
	notificationUC, err := usecase.NewFromConfig(ctx, logger, hubCfg)
	if err != nil {
		msg := "Failed to initialize notification hub"
		if channel.IsConfigError(err) {
			msg = "Channel is not configured, check the environment"
		}
		logger.Errorf(ctx, "%s: %v", msg, err)
		return
	}
	usecase.MustRegisterMetrics()
	logger.Info(ctx, "Notification hub initialized")

	// Unexpected errors are reported to the chat webhook
	reporter, err := slack.New(logger, hubCfg.Chat)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize error reporter: %v", err)
		return
	}
	defer reporter.Close()

	// JWT Manager (internal API)
	jwtManager, err := jwt.New(jwt.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		TTL:       cfg.JWT.TTL,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize JWT manager: %v", err)
		return
	}

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:            cfg.HTTPServer.Host,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		CORSOrigins:     cfg.CORS.AllowedOrigins,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,

		NotificationUC: notificationUC,
		JWTManager:     jwtManager,
		RateLimit: middleware.RateLimitConfig{
			Limit:  cfg.RateLimit.Limit,
			Window: cfg.RateLimit.Window,
		},
		Reporter: reporter,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
	logger.Info(ctx, "Notification hub stopped")
}

// hubConfig maps environment configuration onto the channel configs.
func hubConfig(cfg *config.Config) usecase.Config {
	var disablePreview *bool
	if cfg.Bot.DisablePreview {
		disablePreview = channel.Bool(true)
	}

	return usecase.Config{
		Mail: mail.Config{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			Timeout:  cfg.Mail.Timeout,
			Defaults: mail.Message{Subject: cfg.Mail.Subject},
		},
		Sheet: sheet.Config{
			ClientEmail:      cfg.Sheet.ClientEmail,
			PrivateKey:       cfg.Sheet.PrivateKey,
			SpreadsheetID:    cfg.Sheet.SpreadsheetID,
			SheetName:        cfg.Sheet.SheetName,
			ValueInputOption: cfg.Sheet.ValueInputOption,
			Timeout:          cfg.Sheet.Timeout,
		},
		Chat: slack.Config{
			WebhookURL: cfg.Chat.WebhookURL,
			Timeout:    cfg.Chat.Timeout,
			Defaults: slack.Payload{
				Username:  cfg.Chat.Username,
				IconEmoji: cfg.Chat.IconEmoji,
				Channel:   cfg.Chat.Channel,
			},
		},
		Bot: telegram.Config{
			Token:         cfg.Bot.Token,
			DefaultChatID: cfg.Bot.ChatID,
			Timeout:       cfg.Bot.Timeout,
			Defaults: telegram.Payload{
				ParseMode:      cfg.Bot.ParseMode,
				DisablePreview: disablePreview,
			},
		},
	}
}
