package ingestors

import (
	"hn-stat/internal/shared/metrics"
)

var (
	// metricMalformedLinesTotal counts log lines replaced by the malformed sentinel, by reason.
	metricMalformedLinesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "malformed_lines_total",
		},
		[]string{"reason"},
	)
)
