// Package audit implements the append-only audit log using PostgreSQL.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/fpvlvr/esclavizador/internal/adapter/postgres"
	"github.com/fpvlvr/esclavizador/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type auditRow struct {
	ID             uuid.UUID `db:"id"`
	OrganizationID uuid.UUID `db:"organization_id"`
	ActorID        uuid.UUID `db:"actor_id"`
	EntityType     string    `db:"entity_type"`
	EntityID       uuid.UUID `db:"entity_id"`
	Action         string    `db:"action"`
	Changes        []byte    `db:"changes"`
	CreatedAt      time.Time `db:"created_at"`
}

func (r auditRow) toDomain() (domain.AuditRecord, error) {
	record := domain.AuditRecord{
		ID:             r.ID,
		OrganizationID: r.OrganizationID,
		ActorID:        r.ActorID,
		EntityType:     domain.EntityType(r.EntityType),
		EntityID:       r.EntityID,
		Action:         domain.AuditAction(r.Action),
		CreatedAt:      r.CreatedAt.UTC(),
	}
	if len(r.Changes) > 0 {
		if err := json.Unmarshal(r.Changes, &record.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", r.ID, err)
		}
	}
	return record, nil
}

const createSQL = `
INSERT INTO audit_log (id, organization_id, actor_id, entity_type, entity_id, action, changes)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Log appends a record. ID is generated when zero.
// Joins the caller's transaction when ctx carries one.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("audit_record marshal changes: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createSQL,
		record.ID, record.OrganizationID, record.ActorID,
		string(record.EntityType), record.EntityID, string(record.Action), changesJSON,
	)
	if err != nil {
		return postgres.MapError(err, "audit_record", record.ID)
	}
	return nil
}

const byEntitySQL = `
SELECT id, organization_id, actor_id, entity_type, entity_id, action, changes, created_at
FROM audit_log
WHERE organization_id = $1 AND entity_type = $2 AND entity_id = $3
ORDER BY created_at DESC, id
LIMIT $4`

// ListByEntity returns the newest limit records about one entity in orgID.
func (r *Repo) ListByEntity(ctx context.Context, orgID uuid.UUID, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	var rows []auditRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, byEntitySQL,
		orgID, string(entityType), entityID, limit); err != nil {
		return nil, fmt.Errorf("list audit_records by entity: %w", err)
	}

	records := make([]domain.AuditRecord, len(rows))
	for i, row := range rows {
		rec, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}
