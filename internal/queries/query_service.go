package queries

import (
	"context"
	"errors"
	"io"
	"time"

	"hn-stat/internal/aggregators"
	"hn-stat/internal/models"
	"hn-stat/internal/pipelines"
	"hn-stat/internal/sequences"
	"hn-stat/internal/shared/filestorages"
	"hn-stat/internal/shared/loggers"
	"hn-stat/internal/shared/metrics"
	"hn-stat/internal/shared/svcerrors"
	"hn-stat/internal/shared/validators"
)

// Options tunes how the query service reads its sources.
type Options struct {
	SkipMalformed bool
	MaxLineBytes  int
}

//go:generate mockgen -source=query_service.go -destination=./mocks/query_service_mock.go -package=mocks
type QueryService interface {
	// CountDistinct counts the distinct requests of a source within the query's time range.
	CountDistinct(ctx context.Context, query models.RangeQuery) (*models.DistinctResult, error)
	// TopRequests returns the topN most frequent requests of a source within the query's time range.
	TopRequests(ctx context.Context, query models.RangeQuery, topN uint64) (*models.TopResult, error)
}

type queryService struct {
	fileStorage     filestorages.FileStorage
	distinctCounter aggregators.DistinctCounter
	topNSelector    aggregators.TopNSelector
	validate        *validators.Validate
	options         Options
}

func NewQueryService(fileStorage filestorages.FileStorage, distinctCounter aggregators.DistinctCounter, topNSelector aggregators.TopNSelector, options Options) QueryService {
	return &queryService{
		fileStorage:     fileStorage,
		distinctCounter: distinctCounter,
		topNSelector:    topNSelector,
		validate:        validators.New(),
		options:         options,
	}
}

func (s *queryService) CountDistinct(ctx context.Context, query models.RangeQuery) (*models.DistinctResult, error) {
	start := time.Now()
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started distinct query on source: %s, from: %d, to: %d", query.Source, query.TimeRange.From, query.TimeRange.To)

	var result *models.DistinctResult
	err := s.run(ctx, query, func(pipeline *pipelines.Pipeline) error {
		count, err := s.distinctCounter.CountDistinct(pipeline.Requests())
		if err != nil {
			return err
		}
		result = &models.DistinctResult{
			Query:    query,
			Distinct: count.Distinct,
			Stats:    pipeline.Stats(count.Matched),
		}
		return nil
	})
	s.observe(queryKindDistinct, start, err)
	if err != nil {
		return nil, err
	}

	metricLinesReadTotal.WithLabelValues(queryKindDistinct).Add(float64(result.Stats.LinesRead))
	logger.Info().
		Uint64("distinct", result.Distinct).
		Uint64("lines_read", result.Stats.LinesRead).
		Uint64("malformed_lines", result.Stats.MalformedLines).
		Uint64("matched", result.Stats.Matched).
		Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
		Msg("distinct query completed")
	return result, nil
}

func (s *queryService) TopRequests(ctx context.Context, query models.RangeQuery, topN uint64) (*models.TopResult, error) {
	start := time.Now()
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started top query on source: %s, from: %d, to: %d, topN: %d", query.Source, query.TimeRange.From, query.TimeRange.To, topN)

	var result *models.TopResult
	err := s.run(ctx, query, func(pipeline *pipelines.Pipeline) error {
		top, err := s.topNSelector.SelectTop(pipeline.Requests(), topN)
		if err != nil {
			return err
		}
		result = &models.TopResult{
			Query: query,
			TopN:  topN,
			Top:   top.Entries,
			Stats: pipeline.Stats(top.Matched),
		}
		return nil
	})
	s.observe(queryKindTop, start, err)
	if err != nil {
		return nil, err
	}

	metricLinesReadTotal.WithLabelValues(queryKindTop).Add(float64(result.Stats.LinesRead))
	logger.Info().
		Int("returned", len(result.Top)).
		Uint64("lines_read", result.Stats.LinesRead).
		Uint64("malformed_lines", result.Stats.MalformedLines).
		Uint64("matched", result.Stats.Matched).
		Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
		Msg("top query completed")
	return result, nil
}

// run validates the query, opens its source and hands a freshly composed
// pipeline to consume. The pipeline is never built when the source cannot be
// opened, and the source is closed once consume returns.
func (s *queryService) run(ctx context.Context, query models.RangeQuery, consume func(*pipelines.Pipeline) error) error {
	if err := s.validate.Struct(&query); err != nil {
		return errValidationFailed(validators.Describe(err), err)
	}
	if query.TimeRange.IsEmpty() {
		loggers.Ctx(ctx).Warn().
			Uint64(loggers.FieldFrom, query.TimeRange.From).
			Uint64(loggers.FieldTo, query.TimeRange.To).
			Msg("time range is empty, no request can match")
	}

	source, err := s.open(ctx, query.Source)
	if err != nil {
		return err
	}
	defer source.Close()

	var opts []sequences.LineSourceOption
	if s.options.MaxLineBytes > 0 {
		opts = append(opts, sequences.WithMaxLineBytes(s.options.MaxLineBytes))
	}
	lines := sequences.NewLineSource(source, opts...)
	pipeline := pipelines.Compose(lines, query.TimeRange, pipelines.Options{SkipMalformed: s.options.SkipMalformed})

	if err := consume(pipeline); err != nil {
		return errInternalSourceReadFailed(err)
	}
	return nil
}

func (s *queryService) open(ctx context.Context, source string) (io.ReadCloser, error) {
	readCloser, err := s.fileStorage.Get(ctx, source)
	if err == nil {
		return readCloser, nil
	}
	switch {
	case errors.Is(err, filestorages.ErrInvalidKey), errors.Is(err, filestorages.ErrNotRegularFile):
		return nil, errInvalidSource(source, err)
	case errors.Is(err, filestorages.ErrFileNotFound):
		return nil, errSourceNotFound(source, err)
	default:
		return nil, errInternalSourceUnavailable(err)
	}
}

func (s *queryService) observe(kind string, start time.Time, err error) {
	metricQueryDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if err == nil {
		metricQueryTotal.WithLabelValues(kind, metrics.ValueNoError).Inc()
		return
	}
	code := ""
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		code = svcErr.Code
	}
	metricQueryTotal.WithLabelValues(kind, code).Inc()
}
