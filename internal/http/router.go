package http

import (
	"net/http"

	"hn-stat/internal/queries"
	"hn-stat/internal/shared/loggers"
	"hn-stat/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(queryService queries.QueryService, defaultTopN uint64, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	distinctHandler := NewDistinctQueryHandler(queryService)
	topHandler := NewTopQueryHandler(queryService, defaultTopN)

	// Routes
	router.Route("/queries", func(r chi.Router) {
		r.Get("/distinct", errorHandlingAdapter(distinctHandler))
		r.Get("/top", errorHandlingAdapter(topHandler))
	})
	router.Get("/metrics", metrics.Handler().ServeHTTP)

	return router
}
