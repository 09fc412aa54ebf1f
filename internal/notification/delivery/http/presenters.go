package http

import (
	"net/http"
	"time"

	"notification-hub/internal/notification"
	pkgErrors "notification-hub/pkg/errors"
)

const dateLayout = "2006-01-02"

// --- Request DTOs ---

type InquiryReq struct {
	Name    string `json:"name" binding:"required,max=200"`
	Email   string `json:"email" binding:"required,email,max=320"`
	Message string `json:"message" binding:"required,max=5000"`
}

func (r InquiryReq) toInput() notification.InquiryInput {
	return notification.InquiryInput{
		Name:    r.Name,
		Email:   r.Email,
		Message: r.Message,
	}
}

type DailyReportReq struct {
	Date          string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Inquiries     int    `json:"inquiries" binding:"min=0"`
	EmailsSent    int    `json:"emails_sent" binding:"min=0"`
	ChatMessages  int    `json:"chat_messages" binding:"min=0"`
	BotMessages   int    `json:"bot_messages" binding:"min=0"`
	FailedSteps   int    `json:"failed_steps" binding:"min=0"`
	Compensations int    `json:"compensations" binding:"min=0"`
	Notes         string `json:"notes" binding:"max=2000"`
}

// toInput maps the DTO to the use case input. An empty date means today.
func (r DailyReportReq) toInput(now time.Time) (notification.DailyStats, error) {
	date := now
	if r.Date != "" {
		d, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			return notification.DailyStats{}, pkgErrors.NewValidationError(http.StatusBadRequest, "date", "must be a date in "+dateLayout+" format")
		}
		date = d
	}
	return notification.DailyStats{
		Date:          date,
		Inquiries:     r.Inquiries,
		EmailsSent:    r.EmailsSent,
		ChatMessages:  r.ChatMessages,
		BotMessages:   r.BotMessages,
		FailedSteps:   r.FailedSteps,
		Compensations: r.Compensations,
		Notes:         r.Notes,
	}, nil
}

// --- Response DTOs ---

type DeliveryResp struct {
	Status string `json:"status"`
}

type HealthResp struct {
	Status   string          `json:"status"`
	Channels map[string]bool `json:"channels"`
}

func newHealthResp(report notification.HealthReport) HealthResp {
	status := "healthy"
	if !report.Healthy() {
		status = "unhealthy"
	}
	channels := make(map[string]bool, len(report))
	for name, ok := range report {
		channels[string(name)] = ok
	}
	return HealthResp{Status: status, Channels: channels}
}
