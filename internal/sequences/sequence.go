package sequences

import (
	"errors"
	"iter"
)

var (
	// ErrNoCurrent is the panic value of Current on an exhausted sequence.
	ErrNoCurrent = errors.New("sequence has no current element")

	// ErrSourceRead wraps every failure of an underlying source. A sequence
	// that ended because its source failed reports it through Err; a sequence
	// that simply ran out of elements reports a nil Err.
	ErrSourceRead = errors.New("source read failed")
)

// Sequence is a forward-only cursor over a stream of elements of type T.
type Sequence[T any] interface {
	// HasCurrent reports whether the cursor denotes an element.
	HasCurrent() bool

	// Current returns the element under the cursor. It panics with
	// ErrNoCurrent when HasCurrent is false.
	Current() T

	// Advance moves the cursor to the next element. Advancing an exhausted
	// sequence is a no-op.
	Advance()

	// Position returns the index of the current element in the underlying
	// source, or -1 once the sequence is exhausted. Two cursors over the same
	// source denote the same element iff their positions are equal.
	Position() int64

	// Err returns the error that ended the sequence, if any.
	Err() error
}

// SamePosition reports whether two cursors over the same source denote the
// same source element.
func SamePosition[A, B any](a Sequence[A], b Sequence[B]) bool {
	return a.Position() == b.Position()
}

// ForEach drains seq, calling fn for every element, and returns the error
// that ended the sequence.
func ForEach[T any](seq Sequence[T], fn func(T)) error {
	for ; seq.HasCurrent(); seq.Advance() {
		fn(seq.Current())
	}
	return seq.Err()
}

// All adapts seq to a range-over-func iterator. Breaking out of the loop
// leaves seq positioned on the last element yielded. Callers that need to
// tell exhaustion from failure must check seq.Err after the loop.
func All[T any](seq Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for ; seq.HasCurrent(); seq.Advance() {
			if !yield(seq.Current()) {
				return
			}
		}
	}
}
