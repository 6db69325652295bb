package aggregators

import (
	"hn-stat/internal/models"
	"hn-stat/internal/sequences"
)

//go:generate mockgen -source=distinct_counter.go -destination=./mocks/distinct_counter_mock.go -package=mocks
type DistinctCounter interface {
	// CountDistinct drains requests and counts the distinct request texts.
	CountDistinct(requests sequences.Sequence[models.Request]) (*models.DistinctCount, error)
}

type distinctCounter struct{}

func NewDistinctCounter() DistinctCounter {
	return &distinctCounter{}
}

func (c *distinctCounter) CountDistinct(requests sequences.Sequence[models.Request]) (*models.DistinctCount, error) {
	distinct := make(map[string]struct{})
	var matched uint64

	for request := range sequences.All(requests) {
		distinct[request.Text] = struct{}{}
		matched++
	}
	metricRequestsConsumedTotal.WithLabelValues(consumerDistinct).Add(float64(matched))
	if err := requests.Err(); err != nil {
		return nil, err
	}

	return &models.DistinctCount{
		Distinct: uint64(len(distinct)),
		Matched:  matched,
	}, nil
}
