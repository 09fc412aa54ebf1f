package channel

import (
	"errors"
	"fmt"
	"strings"
)

const unknownErrorMessage = "unknown error"

// ConfigError is returned by adapter constructors when a required field is
// missing. It is raised before any network activity and is never retried.
type ConfigError struct {
	Channel Name
	Field   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: missing required config field %q", e.Channel, e.Field)
}

// TransportError wraps a failed call to an external service.
type TransportError struct {
	Channel Name
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Channel, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError builds a TransportError carrying the best available
// message: the structured one from the response body, then err's own text,
// then a generic fallback.
func NewTransportError(ch Name, err error, structured string) *TransportError {
	return &TransportError{
		Channel: ch,
		Message: BestMessage(err, structured),
		Err:     err,
	}
}

// BestMessage picks the first non-empty of structured and err.Error().
func BestMessage(err error, structured string) string {
	if msg := strings.TrimSpace(structured); msg != "" {
		return msg
	}
	if err != nil {
		if msg := strings.TrimSpace(err.Error()); msg != "" {
			return msg
		}
	}
	return unknownErrorMessage
}

// IsConfigError reports whether err is, or wraps, a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsTransportError reports whether err is, or wraps, a TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
