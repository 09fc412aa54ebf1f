package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"notification-hub/internal/middleware"
	"notification-hub/pkg/response"
)

// CreateInquiry records an inquiry and announces it on every channel. The
// steps run detached from the request so that a client disconnect cannot
// abort them halfway; each channel is still bounded by its own timeout.
func (h *Handler) CreateInquiry(c *gin.Context) {
	ctx := context.WithoutCancel(c.Request.Context())

	var req InquiryReq
	if err := h.bind(c, &req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.ProcessInquiry(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "notification.delivery.http.CreateInquiry: %v", err)
		response.Error(c, h.mapError(err), h.reporter)
		return
	}

	response.OK(c, DeliveryResp{Status: "delivered"})
}

// SendDailyReport posts the daily summary to chat and bot.
func (h *Handler) SendDailyReport(c *gin.Context) {
	ctx := c.Request.Context()

	if claims, ok := middleware.GetClaims(c); ok {
		ctx = h.l.With(ctx, "subject", claims.Subject)
	}

	var req DailyReportReq
	if err := h.bind(c, &req); err != nil {
		response.Error(c, err, nil)
		return
	}
	stats, err := req.toInput(h.now())
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.DailyReport(ctx, stats); err != nil {
		h.l.Errorf(ctx, "notification.delivery.http.SendDailyReport: %v", err)
		response.Error(c, h.mapError(err), h.reporter)
		return
	}

	response.OK(c, DeliveryResp{Status: "posted"})
}

// HealthCheck probes every channel. It answers 503 when any channel is down.
func (h *Handler) HealthCheck(c *gin.Context) {
	resp := newHealthResp(h.uc.HealthCheck(c.Request.Context()))
	if resp.Status != "healthy" {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "One or more channels are unavailable",
			Data:      resp,
		})
		return
	}
	response.OK(c, resp)
}
