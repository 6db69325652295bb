package pipelines

import (
	"hn-stat/internal/ingestors"
	"hn-stat/internal/models"
	"hn-stat/internal/sequences"
)

// Options tunes how a pipeline treats its input.
type Options struct {
	// SkipMalformed drops unparseable lines before the time filters. When it
	// is false, malformed lines flow on as sentinel requests with timestamp 0
	// and an empty text, and are counted by the consumers whenever the time
	// range includes 0.
	SkipMalformed bool
}

// Pipeline is a composed, lazily evaluated request sequence together with the
// counters its parse stage maintains while the sequence is drained.
type Pipeline struct {
	requests sequences.Sequence[models.Request]
	stats    *parseStats
}

type parseStats struct {
	linesRead      uint64
	malformedLines uint64
}

// Compose chains lines through parsing and the inclusive time-range filters:
//
//	lines -> parse -> [drop malformed] -> timestamp >= from -> timestamp <= to
//
// Nothing is read from lines beyond what the filters need to position
// themselves on their first match.
func Compose(lines sequences.Sequence[string], timeRange models.TimeRange, opts Options) *Pipeline {
	stats := &parseStats{}

	requests := sequences.Map(lines, func(line string) models.Request {
		stats.linesRead++
		request := ingestors.ToRequest(line)
		if request.Malformed {
			stats.malformedLines++
		}
		return request
	})

	if opts.SkipMalformed {
		requests = sequences.Filter(requests, func(request models.Request) bool {
			return !request.Malformed
		})
	}

	from, to := timeRange.From, timeRange.To
	requests = sequences.Filter(requests, func(request models.Request) bool {
		return request.Timestamp >= from
	})
	requests = sequences.Filter(requests, func(request models.Request) bool {
		return request.Timestamp <= to
	})

	return &Pipeline{requests: requests, stats: stats}
}

// Requests returns the outermost stage of the pipeline. Draining it drains
// the whole chain.
func (p *Pipeline) Requests() sequences.Sequence[models.Request] {
	return p.requests
}

// Stats reports the lines parsed so far. matched is supplied by the
// terminal consumer.
func (p *Pipeline) Stats(matched uint64) models.PipelineStats {
	return models.PipelineStats{
		LinesRead:      p.stats.linesRead,
		MalformedLines: p.stats.malformedLines,
		Matched:        matched,
	}
}
