package http

import (
	"github.com/gin-gonic/gin"

	"notification-hub/internal/middleware"
)

// RegisterRoutes mounts the rate limited public inquiry route on api and the
// daily report on internal behind bearer auth.
func (h *Handler) RegisterRoutes(api, internal *gin.RouterGroup, mw middleware.Middleware) {
	api.POST("/inquiries", mw.RateLimit(), h.CreateInquiry)

	reports := internal.Group("/reports", mw.Auth())
	{
		reports.POST("/daily", h.SendDailyReport)
	}
}
