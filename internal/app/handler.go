package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fpvlvr/esclavizador/internal/adapter/postgres"
	auditrepo "github.com/fpvlvr/esclavizador/internal/adapter/postgres/audit"
	projectrepo "github.com/fpvlvr/esclavizador/internal/adapter/postgres/project"
	reportrepo "github.com/fpvlvr/esclavizador/internal/adapter/postgres/report"
	tagrepo "github.com/fpvlvr/esclavizador/internal/adapter/postgres/tag"
	taskrepo "github.com/fpvlvr/esclavizador/internal/adapter/postgres/task"
	"github.com/fpvlvr/esclavizador/internal/adapter/postgres/timeentry"
	userrepo "github.com/fpvlvr/esclavizador/internal/adapter/postgres/user"
	authpkg "github.com/fpvlvr/esclavizador/internal/auth"
	"github.com/fpvlvr/esclavizador/internal/config"
	"github.com/fpvlvr/esclavizador/internal/metrics"
	authsvc "github.com/fpvlvr/esclavizador/internal/service/auth"
	"github.com/fpvlvr/esclavizador/internal/service/report"
	"github.com/fpvlvr/esclavizador/internal/service/tag"
	"github.com/fpvlvr/esclavizador/internal/service/timetracking"
	"github.com/fpvlvr/esclavizador/internal/service/user"
	"github.com/fpvlvr/esclavizador/internal/transport/middleware"
	"github.com/fpvlvr/esclavizador/internal/transport/rest"
)

// NewHandler builds the full HTTP stack on top of pool: repositories,
// services, REST handlers, and the middleware chain. limit is applied
// innermost so throttled requests are still logged and counted.
func NewHandler(
	logger *slog.Logger,
	pool *pgxpool.Pool,
	cfg *config.Config,
	m *metrics.Metrics,
	limit middleware.Middleware,
) http.Handler {
	txm := postgres.NewTxManager(pool)

	entries := timeentry.New(pool)
	projects := projectrepo.New(pool)
	tasks := taskrepo.New(pool)
	users := userrepo.New(pool)
	tags := tagrepo.New(pool)
	completed := reportrepo.New(pool)
	audit := auditrepo.New(pool)

	jwt := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL)

	authService := authsvc.NewService(logger, users, jwt)
	trackingService := timetracking.NewService(
		logger, entries, entries, projects, tasks, users, tags, txm, m, cfg.Tracking,
	)
	reportService := report.NewService(logger, completed, users, cfg.Tracking)
	tagService := tag.NewService(logger, tags, audit, txm, cfg.Tracking)
	userService := user.NewService(logger, users, audit, txm, cfg.Tracking)

	routes := rest.Routes{
		Health:      rest.NewHealthHandler(postgres.NewHealth(pool), Version),
		TimeEntries: rest.NewTimeEntryHandler(trackingService, logger),
		Reports:     rest.NewReportHandler(reportService, logger),
		Tags:        rest.NewTagHandler(tagService, logger),
		Users:       rest.NewUserHandler(userService, logger),
	}
	if cfg.Metrics.Enabled {
		routes.Metrics = m.Handler()
		routes.MetricsPath = cfg.Metrics.Path
	}

	mux := rest.NewRouter(routes, middleware.Auth(authService, logger))

	// Metrics reads the matched pattern from the request the mux received,
	// so nothing between it and the mux may replace the request.
	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Metrics(m),
		middleware.When(len(cfg.CORS.Origins()) > 0, middleware.CORS(cfg.CORS)),
		limit,
	)(mux)
}
