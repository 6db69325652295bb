package models

// Request is one parsed line of a request log.
//
// Malformed marks the sentinel produced for a line that could not be parsed.
// A sentinel always has a zero Timestamp and an empty Text, so every
// unparseable line maps to the same deterministic value.
type Request struct {
	Timestamp uint64
	Text      string
	Malformed bool
}

// MalformedRequest returns the sentinel record substituted for an unparseable line.
func MalformedRequest() Request {
	return Request{Malformed: true}
}

// RequestCount pairs a request text with its number of occurrences.
type RequestCount struct {
	Text  string `json:"text"`
	Count uint64 `json:"count"`
}

// Less orders request counts by count, then by text, both ascending.
func (c RequestCount) Less(other RequestCount) bool {
	if c.Count != other.Count {
		return c.Count < other.Count
	}
	return c.Text < other.Text
}
