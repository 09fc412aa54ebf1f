package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"notification-hub/internal/middleware"
	"notification-hub/internal/notification"
	"notification-hub/pkg/jwt"
	"notification-hub/pkg/log"
	"notification-hub/pkg/response"
)

const defaultShutdownTimeout = 15 * time.Second

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) is responsible for serving and shutdown.
type HTTPServer struct {
	// Server configuration
	gin             *gin.Engine
	l               log.Logger
	host            string
	port            int
	shutdownTimeout time.Duration
	corsOrigins     []string

	// Domain
	notificationUC notification.UseCase

	// Auth & security
	jwtManager *jwt.Manager
	rateLimit  middleware.RateLimitConfig

	// External services
	reporter response.Reporter
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host            string
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
	CORSOrigins     []string
	// TrustedProxies may set the client IP through X-Forwarded-For. Empty
	// trusts none, so the client IP is always the peer address.
	TrustedProxies []string

	// Domain
	NotificationUC notification.UseCase

	// Auth & security
	JWTManager *jwt.Manager
	// RateLimit applies per client IP to the public inquiry route.
	RateLimit middleware.RateLimitConfig

	// Reporter receives unexpected errors; usually the chat channel.
	Reporter response.Reporter
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start serving. Use (*HTTPServer).Run() for that.
func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	srv := &HTTPServer{
		gin:             engine,
		l:               l,
		host:            cfg.Host,
		port:            cfg.Port,
		shutdownTimeout: cfg.ShutdownTimeout,
		corsOrigins:     cfg.CORSOrigins,

		notificationUC: cfg.NotificationUC,
		jwtManager:     cfg.JWTManager,
		rateLimit:      cfg.RateLimit,
		reporter:       cfg.Reporter,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.notificationUC == nil {
		return errors.New("notification use case is required")
	}
	if srv.jwtManager == nil {
		return errors.New("JWT manager is required")
	}
	return nil
}
