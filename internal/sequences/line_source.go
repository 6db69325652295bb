package sequences

import (
	"bufio"
	"fmt"
	"io"
)

// DefaultMaxLineBytes bounds the size of a single line read by a LineSource.
const DefaultMaxLineBytes = 1024 * 1024

// LineSourceOption configures a LineSource.
type LineSourceOption func(*lineSourceOptions)

type lineSourceOptions struct {
	maxLineBytes int
}

// WithMaxLineBytes sets the longest line the source accepts. A longer line
// ends the sequence with an error.
func WithMaxLineBytes(n int) LineSourceOption {
	return func(o *lineSourceOptions) {
		if n > 0 {
			o.maxLineBytes = n
		}
	}
}

// LineSource is a Sequence over the lines of a reader. Line terminators
// (including a trailing carriage return) are not part of the elements.
//
// The first line is read when the source is created. The source never
// closes the reader; its owner does.
type LineSource struct {
	scanner *bufio.Scanner
	line    string
	pos     int64
	done    bool
	err     error
}

// NewLineSource creates a LineSource positioned on the first line of r.
func NewLineSource(r io.Reader, opts ...LineSourceOption) *LineSource {
	options := lineSourceOptions{maxLineBytes: DefaultMaxLineBytes}
	for _, opt := range opts {
		opt(&options)
	}

	scanner := bufio.NewScanner(r)
	initial := min(options.maxLineBytes, bufio.MaxScanTokenSize)
	scanner.Buffer(make([]byte, 0, initial), options.maxLineBytes)

	source := &LineSource{scanner: scanner, pos: -1}
	source.read()
	return source
}

func (s *LineSource) HasCurrent() bool {
	return !s.done
}

func (s *LineSource) Current() string {
	if s.done {
		panic(ErrNoCurrent)
	}
	return s.line
}

func (s *LineSource) Advance() {
	if s.done {
		return
	}
	s.read()
}

func (s *LineSource) Position() int64 {
	if s.done {
		return -1
	}
	return s.pos
}

func (s *LineSource) Err() error {
	return s.err
}

func (s *LineSource) read() {
	if s.scanner.Scan() {
		s.line = s.scanner.Text()
		s.pos++
		return
	}
	s.done = true
	s.line = ""
	if err := s.scanner.Err(); err != nil {
		s.err = fmt.Errorf("%w: line %d: %w", ErrSourceRead, s.pos+2, err)
	}
}
