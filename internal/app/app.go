package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"hn-stat/internal/aggregators"
	internalhttp "hn-stat/internal/http"
	"hn-stat/internal/queries"
	"hn-stat/internal/shared/configs"
	"hn-stat/internal/shared/filestorages"
	"hn-stat/internal/shared/loggers"
)

const appName = "hn-stat"

// App holds all application dependencies and manages the HTTP server lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
}

// NewLogger creates the application logger writing to out.
func NewLogger(config *configs.Config, out io.Writer) (loggers.Logger, error) {
	appLogger, err := loggers.New(config.Log.Level, out)
	if err != nil {
		return appLogger, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger(), nil
}

// NewQueryService wires a query service reading its sources from fileStorage.
func NewQueryService(config *configs.Config, fileStorage filestorages.FileStorage) queries.QueryService {
	return queries.NewQueryService(
		fileStorage,
		aggregators.NewDistinctCounter(),
		aggregators.NewTopNSelector(),
		queries.Options{
			SkipMalformed: config.Query.SkipMalformed,
			MaxLineBytes:  config.Source.MaxLineBytes,
		},
	)
}

// New creates and initializes a new App instance serving sources under
// config.Source.RootDir.
func New(config *configs.Config, appLogger loggers.Logger) (*App, error) {
	// Initialize file storage
	fileStorage, err := filestorages.NewFileStorage(config.Source.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	queryService := NewQueryService(config, fileStorage)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(queryService, uint64(config.Query.DefaultTopN), httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
	}, nil
}

// Handler returns the HTTP handler served by the app.
func (app *App) Handler() http.Handler {
	return app.server.Handler
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting hn-stat service on port %d (log_level=%s, source_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Source.RootDir)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return nil
}
