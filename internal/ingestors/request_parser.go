package ingestors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"hn-stat/internal/models"
)

var (
	ErrMissingTimestamp = errors.New("missing timestamp")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrMissingText      = errors.New("missing request text")
)

// ParseRequest parses a line of the form "<timestamp> <request>".
//
// The timestamp is an unsigned 64-bit decimal integer and the request is the
// next whitespace-delimited token. Anything after the request token is
// ignored.
func ParseRequest(line string) (models.Request, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return models.Request{}, ErrMissingTimestamp
	}

	timestamp, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return models.Request{}, fmt.Errorf("%w %q: %w", ErrInvalidTimestamp, fields[0], err)
	}

	if len(fields) < 2 {
		return models.Request{}, ErrMissingText
	}

	return models.Request{Timestamp: timestamp, Text: fields[1]}, nil
}

// ToRequest parses line and substitutes models.MalformedRequest when it
// cannot be parsed. It never fails, so it can sit inside a lazy pipeline.
func ToRequest(line string) models.Request {
	request, err := ParseRequest(line)
	if err != nil {
		metricMalformedLinesTotal.WithLabelValues(malformedReason(err)).Inc()
		return models.MalformedRequest()
	}
	return request
}

func malformedReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingTimestamp):
		return "missing_timestamp"
	case errors.Is(err, ErrInvalidTimestamp):
		return "invalid_timestamp"
	case errors.Is(err, ErrMissingText):
		return "missing_text"
	default:
		return "unknown"
	}
}
