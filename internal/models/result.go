package models

// PipelineStats describes what a single pipeline traversal consumed.
//
// LinesRead counts every line pulled from the source, MalformedLines the
// subset that failed to parse, and Matched the requests that reached the
// terminal consumer after filtering.
type PipelineStats struct {
	LinesRead      uint64 `json:"linesRead"`
	MalformedLines uint64 `json:"malformedLines"`
	Matched        uint64 `json:"matched"`
}

// DistinctCount is the outcome of draining a request sequence into a set.
type DistinctCount struct {
	Distinct uint64
	Matched  uint64
}

// TopCount is the outcome of a top-N selection. Entries are sorted by count
// descending; equal counts are sorted by text descending.
type TopCount struct {
	Entries  []RequestCount
	Distinct uint64
	Matched  uint64
}

// DistinctResult answers a distinct-count query.
type DistinctResult struct {
	Query    RangeQuery    `json:"query"`
	Distinct uint64        `json:"distinct"`
	Stats    PipelineStats `json:"stats"`
}

// TopResult answers a top-N query.
type TopResult struct {
	Query RangeQuery     `json:"query"`
	TopN  uint64         `json:"topN"`
	Top   []RequestCount `json:"top"`
	Stats PipelineStats  `json:"stats"`
}
