// Package server exposes the combined analysis table over a read-only JSON
// API for browser dashboards. Each request re-reads the loader, so data
// freshness is bounded by the loader's snapshot cache rather than server
// state.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"

	"github.com/salt-nlp/workbank-cli/internal/analysis"
	"github.com/salt-nlp/workbank-cli/internal/loader"
	"github.com/salt-nlp/workbank-cli/internal/model"
)

// Server serves the dashboard API over one Loader.
type Server struct {
	loader         *loader.Loader
	allowedOrigins []string
}

// New creates a Server. An empty origin list allows any origin.
func New(l *loader.Loader, allowedOrigins []string) *Server {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return &Server{loader: l, allowedOrigins: allowedOrigins}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/stats", s.handleStats)
		r.Get("/tasks", s.handleTasks)
		r.Get("/tasks/{taskID}", s.handleTask)
		r.Get("/quadrants", s.handleQuadrants)
		r.Get("/histogram", s.handleHistogram)
		r.Get("/export.csv", s.handleExportCSV)
	})

	return r
}

// combined loads the current snapshot and prepares the combined table.
func (s *Server) combined(r *http.Request) ([]model.CombinedRow, *loader.Snapshot, error) {
	snap := s.loader.Load(r.Context())
	rows, err := analysis.Prepare(snap.Tables.Workers, snap.Tables.Experts, snap.Tables.Tasks)
	if err != nil {
		return nil, nil, eris.Wrap(err, "server: prepare analysis")
	}
	return rows, snap, nil
}
