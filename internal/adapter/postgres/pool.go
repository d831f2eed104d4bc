package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fpvlvr/esclavizador/internal/config"
)

const applicationName = "esclavizador"

// NewPool opens the pool described by cfg and pings it once.
// Sessions run with TimeZone=UTC.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	params := poolCfg.ConnConfig.RuntimeParams
	params["timezone"] = "UTC"
	if params["application_name"] == "" {
		params["application_name"] = applicationName
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = min(cfg.MinConns, cfg.MaxConns)
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// Health answers the probes for one pool.
type Health struct {
	db Querier
}

// NewHealth creates a Health over db.
func NewHealth(db Querier) *Health {
	return &Health{db: db}
}

// Ping runs a trivial query on a pooled connection.
func (h *Health) Ping(ctx context.Context) error {
	var one int
	if err := h.db.QueryRow(ctx, `SELECT 1`).Scan(&one); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

const schemaVersionSQL = `
SELECT COALESCE(max(version_id), 0)
FROM goose_db_version
WHERE is_applied AND version_id > 0`

// SchemaVersion returns the highest applied migration, or 0 before the first.
func (h *Health) SchemaVersion(ctx context.Context) (int64, error) {
	var v int64
	if err := h.db.QueryRow(ctx, schemaVersionSQL).Scan(&v); err != nil {
		if isUndefinedTable(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return v, nil
}
