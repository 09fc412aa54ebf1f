package http

import (
	"errors"
	"fmt"
	"net/http"

	"notification-hub/pkg/channel"
	pkgErrors "notification-hub/pkg/errors"
)

// mapError turns channel failures into 502 responses. Anything else is left
// for response.Error, which reports it as a 500.
func (h *Handler) mapError(err error) error {
	var te *channel.TransportError
	if errors.As(err, &te) {
		return pkgErrors.NewHTTPError(
			http.StatusBadGateway,
			fmt.Sprintf("%s: %s", pkgErrors.MessageBadGateway, te.Channel),
			http.StatusBadGateway,
		)
	}
	return err
}
