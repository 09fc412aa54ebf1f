package response

import "context"

type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Reporter receives reports of unexpected server errors.
type Reporter interface {
	ReportBug(ctx context.Context, message string) error
}
