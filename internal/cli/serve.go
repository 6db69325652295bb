package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"hn-stat/internal/app"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the query API over HTTP.",
		Long: `Serve the query API over HTTP. Sources are resolved against
source.root_dir from the configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.New(opts.config, opts.logger)
			if err != nil {
				return err
			}

			serveErr := make(chan error, 1)
			go func() {
				serveErr <- application.Start()
			}()

			select {
			case err := <-serveErr:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-cmd.Context().Done():
			}

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return application.Shutdown(ctx)
		},
	}
}
