package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "architect_requests_total",
			Help: "Total number of architect requests by mode",
		},
		[]string{"mode"}, // mode: build, debug, doc
	)
	RequestErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "architect_request_errors_total",
			Help: "Total number of failed provider calls by mode",
		},
		[]string{"mode"},
	)
	CompletionLatencySeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "completion_latency_seconds",
			Help:    "Latency of chat completion calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"},
	)
	CompletionTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "completion_tokens_total",
			Help: "Total number of tokens sent/received from the provider",
		},
		[]string{"type"}, // type: prompt, completion, total
	)
	ExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "response_extractions_total",
			Help: "Responses split by extraction outcome",
		},
		[]string{"outcome"}, // outcome: code, prose_only
	)
)

func StartMetricsServer(addr string) {
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(addr, nil)
}
