package models

import "math"

// TimeRange is an inclusive timestamp window. A range whose From is greater
// than its To contains nothing.
type TimeRange struct {
	From uint64 `json:"from"`
	To   uint64 `json:"to"`
}

// FullTimeRange covers every representable timestamp.
func FullTimeRange() TimeRange {
	return TimeRange{From: 0, To: math.MaxUint64}
}

// IsEmpty reports whether no timestamp can fall within the range.
func (r TimeRange) IsEmpty() bool {
	return r.From > r.To
}

// RangeQuery selects the requests of one source that fall within a time range.
type RangeQuery struct {
	Source    string    `json:"source" validate:"required"`
	TimeRange TimeRange `json:"timeRange"`
}
