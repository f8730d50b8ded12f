package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess      = "success"
	OutcomeError        = "error"
	OutcomeUnconfigured = "unconfigured"
)

var SummaryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "summary_requests_total",
	Help: "Summary generation requests by outcome.",
}, []string{"outcome"})

var EmailDispatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "email_dispatch_total",
	Help: "Summary email dispatches by outcome.",
}, []string{"outcome"})

var LLMRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "llm_request_duration_seconds",
	Help:    "Latency of upstream chat-completion calls.",
	Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
})

var HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "HTTP requests by route, method and status code.",
}, []string{"route", "method", "status"})
