package rest

import (
	"net/http"

	"github.com/fpvlvr/esclavizador/internal/transport/middleware"
)

// Routes bundles the handlers mounted by NewRouter.
type Routes struct {
	Health      *HealthHandler
	TimeEntries *TimeEntryHandler
	Reports     *ReportHandler
	Tags        *TagHandler
	Users       *UserHandler

	// Metrics is served unauthenticated on MetricsPath. Nil disables it.
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter registers every endpoint on a new ServeMux. Probes and metrics
// are public; everything under /api/v1 passes through auth first.
func NewRouter(routes Routes, auth middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	member := func(h http.HandlerFunc) http.Handler { return auth(h) }
	boss := func(h http.HandlerFunc) http.Handler { return auth(middleware.RequireBoss(h)) }

	mux.HandleFunc("GET /live", routes.Health.Live)
	mux.HandleFunc("GET /ready", routes.Health.Ready)
	mux.HandleFunc("GET /health", routes.Health.Health)
	if routes.Metrics != nil && routes.MetricsPath != "" {
		mux.Handle("GET "+routes.MetricsPath, routes.Metrics)
	}

	te := routes.TimeEntries
	mux.Handle("POST /api/v1/time-entries/start", member(te.Start))
	mux.Handle("POST /api/v1/time-entries/{id}/stop", member(te.Stop))
	mux.Handle("GET /api/v1/time-entries/running", member(te.Running))
	mux.Handle("POST /api/v1/time-entries", member(te.Create))
	mux.Handle("GET /api/v1/time-entries", member(te.List))
	mux.Handle("GET /api/v1/time-entries/{id}", member(te.Get))
	mux.Handle("PUT /api/v1/time-entries/{id}", member(te.Update))
	mux.Handle("PATCH /api/v1/time-entries/{id}", member(te.Update))
	mux.Handle("DELETE /api/v1/time-entries/{id}", member(te.Delete))

	mux.Handle("GET /api/v1/reports/projects", boss(routes.Reports.Projects))
	mux.Handle("GET /api/v1/reports/users", boss(routes.Reports.UserStats))
	mux.Handle("GET /api/v1/users/stats", boss(routes.Reports.UserStats))

	u := routes.Users
	mux.Handle("GET /api/v1/users/me", member(u.Me))
	mux.Handle("GET /api/v1/users", boss(u.List))
	mux.Handle("GET /api/v1/users/{id}", boss(u.Get))
	mux.Handle("PUT /api/v1/users/{id}", boss(u.Update))
	mux.Handle("PATCH /api/v1/users/{id}", boss(u.Update))
	mux.Handle("DELETE /api/v1/users/{id}", boss(u.Delete))

	mux.Handle("POST /api/v1/tags", boss(routes.Tags.Create))
	mux.Handle("GET /api/v1/tags", member(routes.Tags.List))
	mux.Handle("GET /api/v1/tags/{id}", member(routes.Tags.Get))
	mux.Handle("DELETE /api/v1/tags/{id}", boss(routes.Tags.Delete))

	return mux
}
