package aggregators

import (
	"container/heap"

	"hn-stat/internal/models"
)

// candidateSet holds at most limit request counts. It is a min-heap ordered
// by (count, text), so the root is always the worst retained candidate.
type candidateSet struct {
	limit int
	items candidateHeap
}

func newCandidateSet(limit int) *candidateSet {
	return &candidateSet{limit: limit, items: make(candidateHeap, 0, limit)}
}

// Offer considers a candidate for the set and reports whether it was retained.
//
// While the set is not full every candidate is retained. Once full, a
// candidate must beat the worst retained entry; it then replaces it. A
// candidate whose count is below the worst retained count is rejected without
// touching the heap.
func (s *candidateSet) Offer(candidate models.RequestCount) bool {
	if s.limit <= 0 {
		return false
	}
	if len(s.items) < s.limit {
		heap.Push(&s.items, candidate)
		return true
	}
	if !s.items[0].Less(candidate) {
		return false
	}
	s.items[0] = candidate
	heap.Fix(&s.items, 0)
	return true
}

// WorstCount returns the smallest count in the set, or 0 if it is empty.
func (s *candidateSet) WorstCount() uint64 {
	if len(s.items) == 0 {
		return 0
	}
	return s.items[0].Count
}

func (s *candidateSet) Len() int {
	return len(s.items)
}

// Descending empties the set and returns its entries from best to worst.
func (s *candidateSet) Descending() []models.RequestCount {
	out := make([]models.RequestCount, len(s.items))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&s.items).(models.RequestCount)
	}
	return out
}

type candidateHeap []models.RequestCount

func (h candidateHeap) Len() int           { return len(h) }
func (h candidateHeap) Less(i, j int) bool { return h[i].Less(h[j]) }
func (h candidateHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x any) {
	*h = append(*h, x.(models.RequestCount))
}

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
