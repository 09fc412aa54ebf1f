package slack

import "time"

const (
	DefaultTimeout  = 10 * time.Second
	DefaultPingText = "Chat webhook connection verified"
	UserAgent       = "Notification-Hub/1.0"

	// Block Kit limits.
	MaxSectionTextLen = 3000
	MaxFieldTextLen   = 2000
	MaxHeaderTextLen  = 150

	maxResponseBody = 1 << 20
)
