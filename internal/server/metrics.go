package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricRequestServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "warhol_www",
		Subsystem: "server",
		Name:      "http_request_total",
		Help:      "Total number of HTTP requests served",
	}, []string{"handler", "code"})

	metricResponseBytes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "warhol_www",
		Subsystem: "server",
		Name:      "http_response_bytes_total",
		Help:      "Total number of HTTP response body bytes sent",
	}, []string{"handler"})

	metricRequestRateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "warhol_www",
		Subsystem: "server",
		Name:      "http_request_rate_limited_total",
		Help:      "Total number of HTTP requests rejected by the request rate limit",
	})
)
