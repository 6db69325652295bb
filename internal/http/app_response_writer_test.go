package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hn-stat/internal/models"
	"hn-stat/internal/shared/loggers"
	"hn-stat/internal/shared/svcerrors"
)

func TestAppResponseWriter_SetServiceError_And_ErrorCode(t *testing.T) {
	t.Parallel()

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	assert.Equal(t, "", appWriter.ErrorCode())

	appWriter.SetServiceError(svcerrors.NewNotFoundError("QRY_1002", "source not found", nil))
	assert.Equal(t, "QRY_1002", appWriter.ErrorCode())

	appWriter.SetServiceError(svcerrors.NewInternalError("QRY_9001", nil))
	assert.Equal(t, "QRY_9001", appWriter.ErrorCode())

	appWriter.SetServiceError(nil)
	assert.Equal(t, "", appWriter.ErrorCode())
}

func TestAppResponseWriter_WrapsResponseWriter(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	appWriter := newAppResponseWriter(rr, 1)

	appWriter.WriteHeader(http.StatusNotFound)
	_, err := appWriter.Write([]byte("not found"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, appWriter.Status())
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "not found", rr.Body.String())
	assert.Equal(t, http.StatusNotFound, responseStatus(appWriter))
	assert.Equal(t, http.StatusOK, responseStatus(newAppResponseWriter(httptest.NewRecorder(), 1)))
}

func TestStartQuery_RecordsOnAppWriter(t *testing.T) {
	t.Parallel()

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	assert.Equal(t, "", appWriter.QueryKind())

	info := startQuery(appWriter, queryKindTop)
	info.setRange(models.RangeQuery{Source: "hn.log", TimeRange: models.TimeRange{From: 10, To: 20}})
	info.setTopN(3)

	assert.Equal(t, queryKindTop, appWriter.QueryKind())
	assert.Same(t, info, queryOf(appWriter))
	assert.Equal(t, "hn.log", queryOf(appWriter).source)
}

func TestStartQuery_PlainWriter(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	info := startQuery(rr, queryKindDistinct)
	info.setTopN(1)

	assert.Equal(t, queryKindDistinct, info.kind)
	assert.Equal(t, "", queryOf(rr).kind)
}

func TestQueryInfo_AddTo(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger, err := loggers.New("info", &logs)
	require.NoError(t, err)

	info := &queryInfo{kind: queryKindDistinct}
	info.setRange(models.RangeQuery{Source: "hn.log", TimeRange: models.TimeRange{From: 1, To: 2}})
	info.addTo(logger.Info()).Msg("with query")
	(&queryInfo{}).addTo(logger.Info()).Msg("without query")

	lines := bytes.Split(bytes.TrimSpace(logs.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), `"query_kind":"distinct","source":"hn.log","from":1,"to":2`)
	assert.NotContains(t, string(lines[0]), `"top_n"`)
	assert.NotContains(t, string(lines[1]), `"source"`)
}
