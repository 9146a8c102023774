package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Gateway call metrics
	gatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "Total number of payment gateway requests",
		},
		[]string{"operation", "outcome"},
	)

	gatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "Duration of payment gateway requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	gatewayRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gateway_requests_in_flight",
			Help: "Number of payment gateway requests currently being processed",
		},
	)
)

// TrackGatewayRequest marks a gateway call as in flight and returns a
// completion func that records its duration and outcome label.
func TrackGatewayRequest(operation string) func(outcome string) {
	start := time.Now()
	gatewayRequestsInFlight.Inc()

	return func(outcome string) {
		gatewayRequestsInFlight.Dec()
		gatewayRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
		gatewayRequestsTotal.WithLabelValues(operation, outcome).Inc()
	}
}
