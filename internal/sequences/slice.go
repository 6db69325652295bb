package sequences

type sliceSequence[T any] struct {
	items []T
	pos   int
}

// FromSlice returns a sequence over items. The slice is not copied.
func FromSlice[T any](items []T) Sequence[T] {
	return &sliceSequence[T]{items: items}
}

func (s *sliceSequence[T]) HasCurrent() bool {
	return s.pos < len(s.items)
}

func (s *sliceSequence[T]) Current() T {
	if s.pos >= len(s.items) {
		panic(ErrNoCurrent)
	}
	return s.items[s.pos]
}

func (s *sliceSequence[T]) Advance() {
	if s.pos < len(s.items) {
		s.pos++
	}
}

func (s *sliceSequence[T]) Position() int64 {
	if s.pos >= len(s.items) {
		return -1
	}
	return int64(s.pos)
}

func (s *sliceSequence[T]) Err() error {
	return nil
}
