package http

import (
	"net/http"

	"hn-stat/internal/models"
	"hn-stat/internal/queries"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type distinctQueryHandler struct {
	queryService queries.QueryService
}

func NewDistinctQueryHandler(queryService queries.QueryService) AppHttpHandler {
	return &distinctQueryHandler{
		queryService: queryService,
	}
}

// Handle processes GET /queries/distinct requests.
func (h *distinctQueryHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	info := startQuery(w, queryKindDistinct)
	query, err := rangeQuery(r)
	if err != nil {
		return err
	}
	info.setRange(query)

	result, err := h.queryService.CountDistinct(r.Context(), query)
	if err != nil {
		return err
	}

	writeJSON(w, r, http.StatusOK, result)
	return nil
}

type topQueryHandler struct {
	queryService queries.QueryService
	defaultTopN  uint64
}

func NewTopQueryHandler(queryService queries.QueryService, defaultTopN uint64) AppHttpHandler {
	return &topQueryHandler{
		queryService: queryService,
		defaultTopN:  defaultTopN,
	}
}

// Handle processes GET /queries/top requests.
func (h *topQueryHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	info := startQuery(w, queryKindTop)
	query, err := rangeQuery(r)
	if err != nil {
		return err
	}
	info.setRange(query)
	topN, err := uint64Param(r, paramTopN, h.defaultTopN)
	if err != nil {
		return errInvalidParameter(err)
	}
	info.setTopN(topN)

	result, err := h.queryService.TopRequests(r.Context(), query, topN)
	if err != nil {
		return err
	}

	writeJSON(w, r, http.StatusOK, result)
	return nil
}

func rangeQuery(r *http.Request) (models.RangeQuery, error) {
	full := models.FullTimeRange()
	from, err := uint64Param(r, paramFrom, full.From)
	if err != nil {
		return models.RangeQuery{}, errInvalidParameter(err)
	}
	to, err := uint64Param(r, paramTo, full.To)
	if err != nil {
		return models.RangeQuery{}, errInvalidParameter(err)
	}
	return models.RangeQuery{
		Source:    source(r),
		TimeRange: models.TimeRange{From: from, To: to},
	}, nil
}
