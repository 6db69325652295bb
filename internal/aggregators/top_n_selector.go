package aggregators

import (
	"hn-stat/internal/models"
	"hn-stat/internal/sequences"
)

// TopNSelector finds the most frequent request texts of a sequence.
//
// Selection runs in three passes over data gathered in a single traversal:
//
//  1. Count: the whole sequence is drained into a frequency table, even when
//     topN is 0, so the source is always fully consumed.
//  2. Select: every distinct text is offered to a bounded candidate set of
//     size topN. Once the set is full a text is only admitted if it beats the
//     worst retained (count, text) pair, which then gets evicted. Ties on
//     count are resolved by text, the smallest text being evicted first, so
//     the outcome never depends on map iteration order.
//  3. Output: the set is emitted from best to worst, that is by count
//     descending and, for equal counts, by text descending.
//
// Work is O(d log topN) for d distinct texts instead of the O(d log d) of a
// full sort, and most candidates of a skewed distribution are rejected by a
// single comparison with the worst retained count.
//
//go:generate mockgen -source=top_n_selector.go -destination=./mocks/top_n_selector_mock.go -package=mocks
type TopNSelector interface {
	SelectTop(requests sequences.Sequence[models.Request], topN uint64) (*models.TopCount, error)
}

type topNSelector struct{}

func NewTopNSelector() TopNSelector {
	return &topNSelector{}
}

func (s *topNSelector) SelectTop(requests sequences.Sequence[models.Request], topN uint64) (*models.TopCount, error) {
	frequencies := make(map[string]uint64)
	var matched uint64

	err := sequences.ForEach(requests, func(request models.Request) {
		frequencies[request.Text]++
		matched++
	})
	metricRequestsConsumedTotal.WithLabelValues(consumerTop).Add(float64(matched))
	if err != nil {
		return nil, err
	}

	limit := len(frequencies)
	if topN < uint64(limit) {
		limit = int(topN)
	}

	candidates := newCandidateSet(limit)
	if limit > 0 {
		for text, count := range frequencies {
			if candidates.Len() == limit && count < candidates.WorstCount() {
				continue
			}
			candidates.Offer(models.RequestCount{Text: text, Count: count})
		}
	}

	return &models.TopCount{
		Entries:  candidates.Descending(),
		Distinct: uint64(len(frequencies)),
		Matched:  matched,
	}, nil
}
