package httpserver

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"notification-hub/internal/middleware"
	notificationHTTP "notification-hub/internal/notification/delivery/http"
)

const (
	Api         = "/api/v1"
	InternalApi = "/internal/api/v1"
)

func (srv *HTTPServer) mapHandlers() {
	srv.gin.Use(
		gin.Logger(),
		middleware.Recovery(srv.l, srv.reporter),
		middleware.CORS(middleware.DefaultCORSConfig(srv.corsOrigins)),
	)

	mw := middleware.New(srv.l, srv.jwtManager, middleware.NewRateLimiter(srv.l, srv.rateLimit))
	notificationH := notificationHTTP.New(srv.l, srv.notificationUC, srv.reporter)

	// Liveness and metrics (no auth required)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Channel probes post real chat and bot messages
	srv.gin.GET("/health", mw.Auth(), notificationH.HealthCheck)

	notificationH.RegisterRoutes(srv.gin.Group(Api), srv.gin.Group(InternalApi), mw)
}
