package http

import (
	"hn-stat/internal/shared/metrics"
)

var (
	// metricHTTPRequestsTotal counts HTTP requests by route, status and query kind.
	metricHTTPRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_total",
		},
		[]string{"method", "path", "status", "query_kind", metrics.FieldErrorCode},
	)

	// metricHTTPRequestDuration includes the full scan of the source for query routes.
	metricHTTPRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_duration_seconds",
			Buckets:   metrics.ScanBuckets,
		},
		[]string{"method", "path", "status", "query_kind"},
	)
)
