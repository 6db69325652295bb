package queries

import (
	"hn-stat/internal/shared/metrics"
)

const (
	queryKindDistinct = "distinct"
	queryKindTop      = "top"
)

var (
	metricQueryTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQuery,
			Name:      "queries_total",
		},
		[]string{"kind", metrics.FieldErrorCode},
	)

	metricQueryDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQuery,
			Name:      "query_duration_seconds",
			Buckets:   metrics.ScanBuckets,
		},
		[]string{"kind"},
	)

	metricLinesReadTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQuery,
			Name:      "lines_read_total",
		},
		[]string{"kind"},
	)
)
