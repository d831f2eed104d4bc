// Package project implements org-scoped project lookups using PostgreSQL.
package project

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/fpvlvr/esclavizador/internal/adapter/postgres"
	"github.com/fpvlvr/esclavizador/internal/domain"
)

// Repo provides read access to projects.
type Repo struct {
	db postgres.Querier
}

// New creates a new project repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type projectRow struct {
	ID             uuid.UUID `db:"id"`
	OrganizationID uuid.UUID `db:"organization_id"`
	Name           string    `db:"name"`
	Description    *string   `db:"description"`
	Color          string    `db:"color"`
	IsActive       bool      `db:"is_active"`
	CreatedAt      time.Time `db:"created_at"`
}

const getByIDSQL = `
SELECT id, organization_id, name, description, color, is_active, created_at
FROM projects
WHERE id = $1 AND organization_id = $2`

// GetByID returns a project scoped to orgID.
// Returns domain.ErrNotFound if it does not exist or belongs to another organization.
func (r *Repo) GetByID(ctx context.Context, orgID, projectID uuid.UUID) (*domain.Project, error) {
	var row projectRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByIDSQL, projectID, orgID); err != nil {
		return nil, postgres.MapError(err, "project", projectID)
	}

	return &domain.Project{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		Name:           row.Name,
		Description:    row.Description,
		Color:          row.Color,
		IsActive:       row.IsActive,
		CreatedAt:      row.CreatedAt.UTC(),
	}, nil
}
