package errors

const (
	MessageUnauthorized    = "Unauthorized"
	MessageBadGateway      = "Upstream channel failed"
	MessageTooManyRequests = "Too many requests"
)
