package client

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "xuav_client",
			Name:      "requests_total",
			Help:      "HTTP requests sent to the X-UAV backend, by outcome.",
		},
		[]string{"operation", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "xuav_client",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests sent to the X-UAV backend.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// observeRequest records one HTTP attempt.
func observeRequest(op string, elapsed time.Duration, err error) {
	requestsTotal.WithLabelValues(op, outcomeOf(err)).Inc()
	requestDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

func outcomeOf(err error) string {
	var (
		nf *NotFoundError
		he *HTTPStatusError
		te *TransportError
		de *DecodeError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &nf):
		return "not_found"
	case errors.As(err, &he):
		return "http_error"
	case errors.As(err, &te):
		return "transport_error"
	case errors.As(err, &de):
		return "decode_error"
	}
	return "error"
}
