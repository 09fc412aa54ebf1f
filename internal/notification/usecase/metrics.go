package usecase

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"notification-hub/pkg/channel"
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

var (
	registerOnce sync.Once

	deliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_channel_deliveries_total",
			Help: "Channel sends by channel and result.",
		},
		[]string{"channel", "result"},
	)

	compensationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_compensations_total",
			Help: "Compensating bot messages by result.",
		},
		[]string{"result"},
	)

	stepDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notification_step_duration_seconds",
			Help:    "Latency of a single channel send.",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"channel"},
	)

	healthChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_health_checks_total",
			Help: "Channel probes by channel and result.",
		},
		[]string{"channel", "result"},
	)
)

// MustRegisterMetrics registers the hub collectors with the default registry
// (idempotent).
func MustRegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(deliveriesTotal, compensationsTotal, stepDuration, healthChecksTotal)
	})
}

func result(ok bool) string {
	if ok {
		return resultSuccess
	}
	return resultFailure
}

func observeDelivery(ch channel.Name, d time.Duration, err error) {
	deliveriesTotal.WithLabelValues(string(ch), result(err == nil)).Inc()
	stepDuration.WithLabelValues(string(ch)).Observe(d.Seconds())
}

func observeCompensation(err error) {
	compensationsTotal.WithLabelValues(result(err == nil)).Inc()
}

func observeProbe(ch channel.Name, ok bool) {
	healthChecksTotal.WithLabelValues(string(ch), result(ok)).Inc()
}
