// Package timeentry implements the time entry store using PostgreSQL.
// Every read returns fully hydrated entries: owner email, project and task
// names, and the attached tags. Tag association writes belong to the tag
// repository and run in the caller's transaction.
package timeentry

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

// Repo provides time entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new time entry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Row shapes
// ---------------------------------------------------------------------------

var entryColumns = []string{
	"te.id", "te.user_id", "te.project_id", "te.task_id", "te.organization_id",
	"te.start_time", "te.end_time", "te.is_running", "te.is_billable",
	"te.description", "te.created_at",
	"u.email AS user_email", "p.name AS project_name", "t.name AS task_name",
}

type entryRow struct {
	ID             uuid.UUID  `db:"id"`
	UserID         uuid.UUID  `db:"user_id"`
	ProjectID      uuid.UUID  `db:"project_id"`
	TaskID         *uuid.UUID `db:"task_id"`
	OrganizationID uuid.UUID  `db:"organization_id"`
	StartTime      time.Time  `db:"start_time"`
	EndTime        *time.Time `db:"end_time"`
	IsRunning      bool       `db:"is_running"`
	IsBillable     bool       `db:"is_billable"`
	Description    *string    `db:"description"`
	CreatedAt      time.Time  `db:"created_at"`
	UserEmail      string     `db:"user_email"`
	ProjectName    string     `db:"project_name"`
	TaskName       *string    `db:"task_name"`
}

type entryTagRow struct {
	EntryID        uuid.UUID `db:"time_entry_id"`
	ID             uuid.UUID `db:"id"`
	OrganizationID uuid.UUID `db:"organization_id"`
	Name           string    `db:"name"`
	CreatedAt      time.Time `db:"created_at"`
}

const tagsByEntryIDsSQL = `
SELECT tet.time_entry_id, tg.id, tg.organization_id, tg.name, tg.created_at
FROM time_entry_tags tet
JOIN tags tg ON tg.id = tet.tag_id
WHERE tet.time_entry_id = ANY($1::uuid[])
ORDER BY tet.time_entry_id, lower(tg.name)`

// selectEntries is the hydrated SELECT every read path starts from.
func selectEntries() sq.SelectBuilder {
	return postgres.Builder.
		Select(entryColumns...).
		From("time_entries te").
		Join("users u ON u.id = te.user_id").
		Join("projects p ON p.id = te.project_id").
		LeftJoin("tasks t ON t.id = te.task_id")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an entry scoped to orgID.
// Returns domain.ErrNotFound if the entry does not exist or belongs to another organization.
func (r *Repo) GetByID(ctx context.Context, orgID, entryID uuid.UUID) (*domain.TimeEntry, error) {
	query := selectEntries().Where(sq.Eq{"te.id": entryID, "te.organization_id": orgID})

	entries, err := r.query(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "time_entry", entryID)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("time_entry %s: %w", entryID, domain.ErrNotFound)
	}

	return entries[0], nil
}

// GetRunning returns the running entry of userID inside orgID.
// Returns domain.ErrNotFound when the user has no running timer.
func (r *Repo) GetRunning(ctx context.Context, orgID, userID uuid.UUID) (*domain.TimeEntry, error) {
	query := selectEntries().
		Where(sq.Eq{"te.user_id": userID, "te.organization_id": orgID, "te.is_running": true}).
		Limit(1)

	entries, err := r.query(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "running time_entry of user", userID)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("running time_entry of user %s: %w", userID, domain.ErrNotFound)
	}

	return entries[0], nil
}

// List returns one page of entries in orgID matching filter, newest
// start_time first, plus the total number of matches before pagination.
func (r *Repo) List(ctx context.Context, orgID uuid.UUID, filter domain.TimeEntryFilter, limit, offset int) ([]*domain.TimeEntry, int, error) {
	where := listConditions(orgID, filter)

	countSQL, countArgs, err := postgres.Builder.
		Select("count(*)").
		From("time_entries te").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count time entries: %w", err)
	}

	query := selectEntries().
		Where(where).
		OrderBy("te.start_time DESC", "te.id DESC").
		Limit(uint64(max(limit, 0))).
		Offset(uint64(max(offset, 0)))

	entries, err := r.query(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("list time entries: %w", err)
	}

	return entries, total, nil
}

// listConditions translates a filter into WHERE clauses on the te alias.
// Date bounds are inclusive calendar days applied to start_time; tag ids
// match entries carrying any of them.
func listConditions(orgID uuid.UUID, f domain.TimeEntryFilter) sq.And {
	conds := sq.And{sq.Eq{"te.organization_id": orgID}}

	if f.UserID != nil {
		conds = append(conds, sq.Eq{"te.user_id": *f.UserID})
	}
	if f.ProjectID != nil {
		conds = append(conds, sq.Eq{"te.project_id": *f.ProjectID})
	}
	if f.TaskID != nil {
		conds = append(conds, sq.Eq{"te.task_id": *f.TaskID})
	}
	if f.IsBillable != nil {
		conds = append(conds, sq.Eq{"te.is_billable": *f.IsBillable})
	}
	if f.IsRunning != nil {
		conds = append(conds, sq.Eq{"te.is_running": *f.IsRunning})
	}
	if f.StartDate != nil {
		conds = append(conds, sq.GtOrEq{"te.start_time": domain.StartOfDay(*f.StartDate)})
	}
	if f.EndDate != nil {
		conds = append(conds, sq.LtOrEq{"te.start_time": domain.EndOfDay(*f.EndDate)})
	}
	if len(f.TagIDs) > 0 {
		conds = append(conds, sq.Expr(
			"EXISTS (SELECT 1 FROM time_entry_tags tet WHERE tet.time_entry_id = te.id AND tet.tag_id = ANY(?::uuid[]))",
			f.TagIDs,
		))
	}

	return conds
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new entry and returns it hydrated. A nil EndTime creates
// a running timer. Tags are attached by the caller in the same transaction.
func (r *Repo) Create(ctx context.Context, n domain.NewTimeEntry) (*domain.TimeEntry, error) {
	id := uuid.New()

	var end *time.Time
	if n.EndTime != nil {
		e := n.EndTime.UTC()
		end = &e
	}

	insertSQL, args, err := postgres.Builder.
		Insert("time_entries").
		Columns("id", "organization_id", "user_id", "project_id", "task_id",
			"start_time", "end_time", "is_running", "is_billable", "description").
		Values(id, n.OrganizationID, n.UserID, n.ProjectID, n.TaskID,
			n.StartTime.UTC(), end, n.IsRunning(), n.IsBillable, n.Description).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertSQL, args...); err != nil {
		return nil, postgres.MapError(err, "time_entry", id)
	}

	return r.GetByID(ctx, n.OrganizationID, id)
}

const stopSQL = `
UPDATE time_entries
SET end_time = $3, is_running = false
WHERE id = $1 AND organization_id = $2`

// Stop sets end_time and clears is_running unconditionally. The caller has
// already checked that the entry is running and owned by the caller.
func (r *Repo) Stop(ctx context.Context, orgID, entryID uuid.UUID, end time.Time) (*domain.TimeEntry, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, stopSQL, entryID, orgID, end.UTC())
	if err != nil {
		return nil, postgres.MapError(err, "time_entry", entryID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("time_entry %s: %w", entryID, domain.ErrNotFound)
	}

	return r.GetByID(ctx, orgID, entryID)
}

// Update applies a partial update and returns the refreshed entry.
// Only column fields are written; params.TagIDs is left to the tag repository.
// Returns domain.ErrNotFound if the entry is not in orgID.
func (r *Repo) Update(ctx context.Context, orgID, entryID uuid.UUID, params domain.TimeEntryUpdateParams) (*domain.TimeEntry, error) {
	set := map[string]any{}

	if params.ProjectID != nil {
		set["project_id"] = *params.ProjectID
	}
	if params.TaskID != nil {
		if *params.TaskID == uuid.Nil {
			set["task_id"] = nil
		} else {
			set["task_id"] = *params.TaskID
		}
	}
	if params.StartTime != nil {
		set["start_time"] = params.StartTime.UTC()
	}
	if params.EndTime != nil {
		set["end_time"] = params.EndTime.UTC()
	}
	if params.IsBillable != nil {
		set["is_billable"] = *params.IsBillable
	}
	if params.Description != nil {
		if *params.Description == "" {
			set["description"] = nil
		} else {
			set["description"] = *params.Description
		}
	}

	if len(set) == 0 {
		return r.GetByID(ctx, orgID, entryID)
	}

	updateSQL, args, err := postgres.Builder.
		Update("time_entries").
		SetMap(set).
		Where(sq.Eq{"id": entryID, "organization_id": orgID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updateSQL, args...)
	if err != nil {
		return nil, postgres.MapError(err, "time_entry", entryID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("time_entry %s: %w", entryID, domain.ErrNotFound)
	}

	return r.GetByID(ctx, orgID, entryID)
}

const deleteSQL = `DELETE FROM time_entries WHERE id = $1 AND organization_id = $2`

// Delete hard-deletes an entry. Tag associations go with it (ON DELETE CASCADE).
// Returns domain.ErrNotFound if the entry is not in orgID.
func (r *Repo) Delete(ctx context.Context, orgID, entryID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, entryID, orgID)
	if err != nil {
		return postgres.MapError(err, "time_entry", entryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("time_entry %s: %w", entryID, domain.ErrNotFound)
	}
	return nil
}

// LockUser serializes lifecycle writes of one user for the rest of the
// current transaction.
func (r *Repo) LockUser(ctx context.Context, userID uuid.UUID) error {
	return postgres.LockKey(ctx, postgres.QuerierFromCtx(ctx, r.db), "time_entries:"+userID.String())
}

// ---------------------------------------------------------------------------
// Hydration
// ---------------------------------------------------------------------------

// query runs a hydrated SELECT and attaches tags in one extra round trip.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) query(ctx context.Context, b sq.SelectBuilder) ([]*domain.TimeEntry, error) {
	querySQL, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []entryRow
	if err := pgxscan.Select(ctx, q, &rows, querySQL, args...); err != nil {
		return nil, err
	}

	entries := make([]*domain.TimeEntry, len(rows))
	if len(rows) == 0 {
		return entries, nil
	}

	ids := make([]uuid.UUID, len(rows))
	byID := make(map[uuid.UUID]*domain.TimeEntry, len(rows))
	for i, row := range rows {
		e := toDomain(row)
		entries[i] = e
		ids[i] = e.ID
		byID[e.ID] = e
	}

	var tagRows []entryTagRow
	if err := pgxscan.Select(ctx, q, &tagRows, tagsByEntryIDsSQL, ids); err != nil {
		return nil, fmt.Errorf("load entry tags: %w", err)
	}
	for _, tr := range tagRows {
		e := byID[tr.EntryID]
		e.Tags = append(e.Tags, domain.Tag{
			ID:             tr.ID,
			OrganizationID: tr.OrganizationID,
			Name:           tr.Name,
			CreatedAt:      tr.CreatedAt,
		})
	}

	return entries, nil
}

func toDomain(row entryRow) *domain.TimeEntry {
	e := &domain.TimeEntry{
		ID:             row.ID,
		UserID:         row.UserID,
		ProjectID:      row.ProjectID,
		TaskID:         row.TaskID,
		OrganizationID: row.OrganizationID,
		StartTime:      row.StartTime.UTC(),
		IsRunning:      row.IsRunning,
		IsBillable:     row.IsBillable,
		Description:    row.Description,
		CreatedAt:      row.CreatedAt.UTC(),
		UserEmail:      row.UserEmail,
		ProjectName:    row.ProjectName,
		TaskName:       row.TaskName,
		Tags:           []domain.Tag{},
	}
	if row.EndTime != nil {
		end := row.EndTime.UTC()
		e.EndTime = &end
	}
	return e
}
