package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

type healthChecker interface {
	Ping(ctx context.Context) error
	SchemaVersion(ctx context.Context) (int64, error)
}

// HealthHandler serves /live, /ready and /health.
type HealthHandler struct {
	db      healthChecker
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db healthChecker, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

type healthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]componentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

type componentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Version int64  `json:"version,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (c componentStatus) ok() bool { return c.Status == "ok" }

func statusWord(ok bool) string {
	if ok {
		return "ok"
	}
	return "down"
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}

// Ready answers 503 until the database is reachable and migrated.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db, schema := h.check(r.Context())
	ok := db.ok() && schema.ok()

	code := http.StatusOK
	if !ok {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, healthResponse{Status: statusWord(ok), Timestamp: time.Now().UTC()})
}

// Health reports every component with latency and schema version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db, schema := h.check(r.Context())
	ok := db.ok() && schema.ok()

	code := http.StatusOK
	if !ok {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, healthResponse{
		Status:  statusWord(ok),
		Version: h.version,
		Components: map[string]componentStatus{
			"database": db,
			"schema":   schema,
		},
		Timestamp: time.Now().UTC(),
	})
}

func (h *HealthHandler) check(ctx context.Context) (db, schema componentStatus) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		down := componentStatus{Status: "down", Error: err.Error()}
		return down, componentStatus{Status: "unknown"}
	}
	db = componentStatus{Status: "ok", Latency: time.Since(start).String()}

	v, err := h.db.SchemaVersion(ctx)
	switch {
	case err != nil:
		schema = componentStatus{Status: "down", Error: err.Error()}
	case v == 0:
		schema = componentStatus{Status: "down", Error: "no migrations applied"}
	default:
		schema = componentStatus{Status: "ok", Version: v}
	}
	return db, schema
}
