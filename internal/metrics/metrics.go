package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"time"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lieferspatz_requests_total",
			Help: "Total number of requests to the web application",
		},
		[]string{"endpoint", "outcome"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lieferspatz_request_duration_seconds",
			Help:    "Duration of requests to the web application",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)

	StaleResponsesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lieferspatz_stale_responses_total",
			Help: "Order status responses dropped because a newer request was issued",
		},
	)

	SocketEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lieferspatz_socket_events_total",
			Help: "Total number of socket events by direction",
		},
		[]string{"event", "direction"},
	)

	SocketConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lieferspatz_socket_connected",
			Help: "1 if the notification socket is connected",
		},
	)
)

// ObserveRequest учитывает завершенный запрос к веб-приложению.
func ObserveRequest(endpoint string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}

	RequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
