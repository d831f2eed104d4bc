// Package tag implements the organization-scoped tag repository and the
// time_entry_tags association table using PostgreSQL.
package tag

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/fpvlvr/esclavizador/internal/adapter/postgres"
	"github.com/fpvlvr/esclavizador/internal/domain"
)

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new tag repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type tagRow struct {
	ID             uuid.UUID `db:"id"`
	OrganizationID uuid.UUID `db:"organization_id"`
	Name           string    `db:"name"`
	CreatedAt      time.Time `db:"created_at"`
}

func (r tagRow) toDomain() domain.Tag {
	return domain.Tag{
		ID:             r.ID,
		OrganizationID: r.OrganizationID,
		Name:           r.Name,
		CreatedAt:      r.CreatedAt.UTC(),
	}
}

func toDomainTags(rows []tagRow) []domain.Tag {
	tags := make([]domain.Tag, len(rows))
	for i, row := range rows {
		tags[i] = row.toDomain()
	}
	return tags
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByIDSQL = `
SELECT id, organization_id, name, created_at
FROM tags
WHERE id = $1 AND organization_id = $2`

// GetByID returns a tag scoped to orgID.
// Returns domain.ErrNotFound if the tag does not exist or belongs to another organization.
func (r *Repo) GetByID(ctx context.Context, orgID, tagID uuid.UUID) (*domain.Tag, error) {
	var row tagRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByIDSQL, tagID, orgID); err != nil {
		return nil, postgres.MapError(err, "tag", tagID)
	}
	t := row.toDomain()
	return &t, nil
}

const getByIDsSQL = `
SELECT id, organization_id, name, created_at
FROM tags
WHERE organization_id = $1 AND id = ANY($2::uuid[])`

// GetByIDs returns the tags of orgID among ids. Ids that do not resolve are
// silently absent from the result; the caller compares lengths.
func (r *Repo) GetByIDs(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return []domain.Tag{}, nil
	}

	var rows []tagRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, getByIDsSQL, orgID, ids); err != nil {
		return nil, fmt.Errorf("get tags by ids: %w", err)
	}
	return toDomainTags(rows), nil
}

const getByNameSQL = `
SELECT id, organization_id, name, created_at
FROM tags
WHERE organization_id = $1 AND lower(name) = lower($2)`

// GetByName returns the tag named name (case-insensitive) in orgID.
// Returns domain.ErrNotFound when absent.
func (r *Repo) GetByName(ctx context.Context, orgID uuid.UUID, name string) (*domain.Tag, error) {
	var row tagRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByNameSQL, orgID, name); err != nil {
		return nil, postgres.MapError(err, "tag named "+name+" in organization", orgID)
	}
	t := row.toDomain()
	return &t, nil
}

// List returns one page of tags in orgID ordered by name, and the total count.
func (r *Repo) List(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]domain.Tag, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var total int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM tags WHERE organization_id = $1`, orgID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tags: %w", err)
	}

	listSQL, args, err := postgres.Builder.
		Select("id", "organization_id", "name", "created_at").
		From("tags").
		Where(sq.Eq{"organization_id": orgID}).
		OrderBy("lower(name)", "id").
		Limit(uint64(max(limit, 0))).
		Offset(uint64(max(offset, 0))).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list tags: %w", err)
	}

	var rows []tagRow
	if err := pgxscan.Select(ctx, q, &rows, listSQL, args...); err != nil {
		return nil, 0, fmt.Errorf("list tags: %w", err)
	}

	return toDomainTags(rows), total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO tags (id, organization_id, name)
VALUES ($1, $2, $3)
RETURNING id, organization_id, name, created_at`

// Create inserts a tag. Returns domain.ErrAlreadyExists when the
// organization already has a tag with the same name, ignoring case.
func (r *Repo) Create(ctx context.Context, orgID uuid.UUID, name string) (*domain.Tag, error) {
	id := uuid.New()

	var row tagRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createSQL, id, orgID, name); err != nil {
		return nil, postgres.MapError(err, "tag", id)
	}
	t := row.toDomain()
	return &t, nil
}

const deleteSQL = `DELETE FROM tags WHERE id = $1 AND organization_id = $2`

// Delete removes a tag. CASCADE deletes its time_entry_tags rows; the
// entries themselves are NOT affected.
func (r *Repo) Delete(ctx context.Context, orgID, tagID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, tagID, orgID)
	if err != nil {
		return postgres.MapError(err, "tag", tagID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tag %s: %w", tagID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Entry association
// ---------------------------------------------------------------------------

const (
	clearEntryTagsSQL = `DELETE FROM time_entry_tags WHERE time_entry_id = $1`

	attachEntryTagsSQL = `
INSERT INTO time_entry_tags (time_entry_id, tag_id)
SELECT $1, unnest($2::uuid[])
ON CONFLICT DO NOTHING`
)

// ReplaceForEntry makes tagIDs the exact tag set of entryID. An empty slice
// clears every association. Duplicates in tagIDs collapse to one row.
// Must run inside the transaction that validated the tags.
func (r *Repo) ReplaceForEntry(ctx context.Context, entryID uuid.UUID, tagIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, clearEntryTagsSQL, entryID); err != nil {
		return postgres.MapError(err, "time_entry_tags of entry", entryID)
	}
	if len(tagIDs) == 0 {
		return nil
	}
	if _, err := q.Exec(ctx, attachEntryTagsSQL, entryID, tagIDs); err != nil {
		return postgres.MapError(err, "time_entry_tags of entry", entryID)
	}
	return nil
}
