package aggregators

import (
	"hn-stat/internal/shared/metrics"
)

const (
	consumerDistinct = "distinct"
	consumerTop      = "top"
)

// metricRequestsConsumedTotal counts the requests that reached a terminal
// consumer after filtering, labelled by consumer ("distinct" or "top").
//
// Comparing it with hn_stat_ingestion_malformed_lines_total and the number of
// lines read tells how much of a log a query window actually covered.
var (
	metricRequestsConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "requests_consumed_total",
		},
		[]string{"consumer"},
	)
)
