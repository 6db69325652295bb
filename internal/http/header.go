package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

const (
	headerRequestID = "x-request-id"

	paramSource = "source"
	paramFrom   = "from"
	paramTo     = "to"
	paramTopN   = "n"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func source(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get(paramSource))
}

// uint64Param parses an optional unsigned query parameter, returning fallback
// when it is absent or blank.
func uint64Param(r *http.Request, name string, fallback uint64) (uint64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %q must be an unsigned integer, got %q", name, raw)
	}
	return value, nil
}
