package http

import (
	"net/http"

	"hn-stat/internal/models"
	"hn-stat/internal/shared/loggers"
	"hn-stat/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

const (
	queryKindDistinct = "distinct"
	queryKindTop      = "top"
)

// queryInfo describes the query a request ran. Handlers fill it in as they
// parse parameters; middlewares read it back for logs and metrics.
type queryInfo struct {
	kind      string
	source    string
	timeRange *models.TimeRange
	topN      *uint64
}

func (q *queryInfo) setRange(query models.RangeQuery) {
	q.source = query.Source
	q.timeRange = &query.TimeRange
}

func (q *queryInfo) setTopN(topN uint64) {
	q.topN = &topN
}

// addTo appends the known query fields to a log event.
func (q *queryInfo) addTo(event *loggers.Event) *loggers.Event {
	if q.kind == "" {
		return event
	}
	event = event.Str(loggers.FieldQueryKind, q.kind).Str(loggers.FieldSource, q.source)
	if q.timeRange != nil {
		event = event.Uint64(loggers.FieldFrom, q.timeRange.From).Uint64(loggers.FieldTo, q.timeRange.To)
	}
	if q.topN != nil {
		event = event.Uint64(loggers.FieldTopN, *q.topN)
	}
	return event
}

// appResponseWriter is a wrapper around the http.ResponseWriter that stores
// the service error and the query of a request for middleware access.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
	query    queryInfo
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

// QueryKind returns the kind of query served, or "" for non-query routes.
func (w *appResponseWriter) QueryKind() string {
	return w.query.kind
}

// startQuery records the kind of query a handler serves and returns the
// record to complete. Writers that are not appResponseWriter get a
// throwaway record.
func startQuery(w http.ResponseWriter, kind string) *queryInfo {
	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.query = queryInfo{kind: kind}
		return &appWriter.query
	}
	return &queryInfo{kind: kind}
}

// queryOf returns the query recorded on w, if any.
func queryOf(w http.ResponseWriter) *queryInfo {
	if appWriter, ok := w.(*appResponseWriter); ok {
		return &appWriter.query
	}
	return &queryInfo{}
}
