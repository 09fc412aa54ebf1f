package mail

import "time"

const (
	DefaultHost    = "smtp.gmail.com"
	DefaultPort    = 587
	DefaultTimeout = 10 * time.Second
	DefaultSubject = "Notification"
)
