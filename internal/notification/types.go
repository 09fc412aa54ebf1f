package notification

import (
	"time"

	"notification-hub/pkg/channel"
)

// InquiryInput is a contact-form submission.
type InquiryInput struct {
	Name    string
	Email   string
	Message string
}

// DailyStats is the payload of the daily summary.
type DailyStats struct {
	Date          time.Time
	Inquiries     int
	EmailsSent    int
	ChatMessages  int
	BotMessages   int
	FailedSteps   int
	Compensations int
	Notes         string
}

// HealthReport maps every channel to the outcome of its probe.
type HealthReport map[channel.Name]bool

// Healthy reports whether every channel passed.
func (r HealthReport) Healthy() bool {
	for _, ok := range r {
		if !ok {
			return false
		}
	}
	return len(r) > 0
}

// Channels is the set of adapters the hub fans out to. Every field is
// required.
type Channels struct {
	Mail  MailSender
	Sheet SheetAppender
	Chat  ChatPoster
	Bot   BotMessenger
}
