package http

import (
	"time"

	"notification-hub/internal/notification"
	"notification-hub/pkg/log"
	"notification-hub/pkg/response"
)

type Handler struct {
	l        log.Logger
	uc       notification.UseCase
	reporter response.Reporter
	now      func() time.Time
}

func New(l log.Logger, uc notification.UseCase, reporter response.Reporter) *Handler {
	return &Handler{
		l:        l,
		uc:       uc,
		reporter: reporter,
		now:      time.Now,
	}
}
