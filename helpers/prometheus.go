package helpers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_requests_total",
		Help: "Tracks the number of requests sent to the backend.",
	}, []string{"resource"})

	requestFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_request_failures_total",
		Help: "Tracks the number of failed backend requests.",
	}, []string{"resource"})

	requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gateway_request_duration_seconds",
		Help:    "Tracks the latencies for backend requests.",
		Buckets: prometheus.DefBuckets,
	})
)

func GetRegistery() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		requestsTotal,
		requestFailures,
		requestDuration,
	)

	return registry
}

func IncrementRequests(resource string) {
	requestsTotal.WithLabelValues(resource).Inc()
}

func IncrementFailures(resource string) {
	requestFailures.WithLabelValues(resource).Inc()
}

func ObserveRequestDuration(time float64) {
	requestDuration.Observe(time)
}
