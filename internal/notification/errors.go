package notification

import "errors"

var (
	ErrMissingChannel = errors.New("notification channel is not configured")
)
