package sequences

// Predicate reports whether an element should be kept.
type Predicate[T any] func(T) bool

type filterStage[T any] struct {
	src  Sequence[T]
	keep Predicate[T]
}

// Filter returns a sequence over the elements of src that satisfy keep.
//
// Filter advances src past non-matching elements immediately, so the
// returned cursor is already on the first match (or exhausted) when Filter
// returns.
func Filter[T any](src Sequence[T], keep Predicate[T]) Sequence[T] {
	f := &filterStage[T]{src: src, keep: keep}
	f.skipRejected()
	return f
}

func (f *filterStage[T]) HasCurrent() bool {
	return f.src.HasCurrent()
}

func (f *filterStage[T]) Current() T {
	return f.src.Current()
}

func (f *filterStage[T]) Advance() {
	if !f.src.HasCurrent() {
		return
	}
	f.src.Advance()
	f.skipRejected()
}

func (f *filterStage[T]) Position() int64 {
	return f.src.Position()
}

func (f *filterStage[T]) Err() error {
	return f.src.Err()
}

func (f *filterStage[T]) skipRejected() {
	for f.src.HasCurrent() && !f.keep(f.src.Current()) {
		f.src.Advance()
	}
}
