package sequences

// MapFunc converts an element of an upstream sequence. It is called at most
// once per upstream element.
type MapFunc[S, T any] func(S) T

type transformStage[S, T any] struct {
	src    Sequence[S]
	fn     MapFunc[S, T]
	cur    T
	cached bool
}

// Map returns a sequence that applies fn to each element of src on demand.
//
// fn runs the first time Current is called for a position, and the result is
// reused until Advance. Positions the consumer skips without reading are
// never converted.
func Map[S, T any](src Sequence[S], fn MapFunc[S, T]) Sequence[T] {
	return &transformStage[S, T]{src: src, fn: fn}
}

func (t *transformStage[S, T]) HasCurrent() bool {
	return t.src.HasCurrent()
}

func (t *transformStage[S, T]) Current() T {
	if !t.cached {
		t.cur = t.fn(t.src.Current())
		t.cached = true
	}
	return t.cur
}

func (t *transformStage[S, T]) Advance() {
	var zero T
	t.cur = zero
	t.cached = false
	t.src.Advance()
}

func (t *transformStage[S, T]) Position() int64 {
	return t.src.Position()
}

func (t *transformStage[S, T]) Err() error {
	return t.src.Err()
}
