package jwt

import "time"

const (
	MinSecretKeyLen = 32
	DefaultTTL      = 24 * time.Hour
	DefaultIssuer   = "notification-hub"
)
