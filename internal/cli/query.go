package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hn-stat/internal/app"
	"hn-stat/internal/models"
	"hn-stat/internal/queries"
	"hn-stat/internal/shared/filestorages"
	"hn-stat/internal/shared/loggers"
	"hn-stat/internal/shared/ulid"
)

// rangeFlags holds the inclusive time window shared by the query commands.
type rangeFlags struct {
	from uint64
	to   uint64
}

func (f *rangeFlags) register(cmd *cobra.Command) {
	full := models.FullTimeRange()
	cmd.Flags().Uint64Var(&f.from, "from", full.From, "Smallest timestamp to include.")
	cmd.Flags().Uint64Var(&f.to, "to", full.To, "Largest timestamp to include.")
}

func (f *rangeFlags) timeRange() models.TimeRange {
	return models.TimeRange{From: f.from, To: f.to}
}

func newDistinctCmd(opts *rootOptions) *cobra.Command {
	var window rangeFlags

	cmd := &cobra.Command{
		Use:   "distinct [--from N] [--to N] <file>",
		Short: "Print the number of distinct requests within the time range.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, service, query, err := opts.prepareQuery(cmd.Context(), "distinct", args[0], window.timeRange())
			if err != nil {
				return err
			}

			result, err := service.CountDistinct(ctx, query)
			if err != nil {
				return err
			}
			return writeDistinct(cmd.OutOrStdout(), opts.output, result)
		},
	}
	window.register(cmd)
	return cmd
}

func newTopCmd(opts *rootOptions) *cobra.Command {
	var window rangeFlags

	cmd := &cobra.Command{
		Use:   "top <N> [--from N] [--to N] <file>",
		Short: "Print the N most frequent requests within the time range.",
		Long: `Print the N most frequent requests within the time range, one
"<request> <count>" line each, most frequent first. Requests with the same
count are ordered by text, descending.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			topN, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid N %q: must be an unsigned integer", args[0])
			}

			ctx, service, query, err := opts.prepareQuery(cmd.Context(), "top", args[1], window.timeRange())
			if err != nil {
				return err
			}

			result, err := service.TopRequests(ctx, query, topN)
			if err != nil {
				return err
			}
			return writeTop(cmd.OutOrStdout(), opts.output, result)
		},
	}
	window.register(cmd)
	return cmd
}

// prepareQuery roots a query service at the directory of path and attaches a
// query-scoped logger to ctx.
func (o *rootOptions) prepareQuery(ctx context.Context, kind, path string, timeRange models.TimeRange) (context.Context, queries.QueryService, models.RangeQuery, error) {
	fileStorage, key, err := filestorages.NewFileStorageForPath(path)
	if err != nil {
		return ctx, nil, models.RangeQuery{}, err
	}

	queryLogger := o.logger.With().
		Str(loggers.FieldQueryID, ulid.NewPrefixedID("qry")).
		Str(loggers.FieldQueryKind, kind).
		Str(loggers.FieldSource, path).
		Uint64(loggers.FieldFrom, timeRange.From).
		Uint64(loggers.FieldTo, timeRange.To).
		Logger()

	query := models.RangeQuery{Source: key, TimeRange: timeRange}
	return queryLogger.WithContext(ctx), app.NewQueryService(o.config, fileStorage), query, nil
}
