// Package task implements org-scoped task lookups using PostgreSQL.
// Tasks have no organization column; scoping goes through their project.
package task

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/fpvlvr/esclavizador/internal/adapter/postgres"
	"github.com/fpvlvr/esclavizador/internal/domain"
)

// Repo provides read access to tasks.
type Repo struct {
	db postgres.Querier
}

// New creates a new task repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type taskRow struct {
	ID        uuid.UUID `db:"id"`
	ProjectID uuid.UUID `db:"project_id"`
	Name      string    `db:"name"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

const getByIDSQL = `
SELECT t.id, t.project_id, t.name, t.is_active, t.created_at
FROM tasks t
JOIN projects p ON p.id = t.project_id
WHERE t.id = $1 AND p.organization_id = $2`

// GetByID returns a task whose project belongs to orgID.
// Returns domain.ErrNotFound otherwise.
func (r *Repo) GetByID(ctx context.Context, orgID, taskID uuid.UUID) (*domain.Task, error) {
	var row taskRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByIDSQL, taskID, orgID); err != nil {
		return nil, postgres.MapError(err, "task", taskID)
	}

	return &domain.Task{
		ID:        row.ID,
		ProjectID: row.ProjectID,
		Name:      row.Name,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt.UTC(),
	}, nil
}
