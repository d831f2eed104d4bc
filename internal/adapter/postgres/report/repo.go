// Package report reads the completed-entry projection the aggregation
// engine consumes.
package report

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

// Repo provides read access to completed time entries.
type Repo struct {
	db postgres.Querier
}

// New creates a new report repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type completedRow struct {
	UserID      uuid.UUID `db:"user_id"`
	ProjectID   uuid.UUID `db:"project_id"`
	ProjectName string    `db:"project_name"`
	StartTime   time.Time `db:"start_time"`
	EndTime     time.Time `db:"end_time"`
	IsBillable  bool      `db:"is_billable"`
}

// ListCompleted returns every stopped entry in orgID matching filter.
// Running entries and rows without end_time are never returned.
// UserIDs restricts the result to those users when non-empty.
func (r *Repo) ListCompleted(ctx context.Context, orgID uuid.UUID, filter domain.ReportFilter, userIDs ...uuid.UUID) ([]domain.CompletedEntry, error) {
	where := sq.And{
		sq.Eq{"te.organization_id": orgID, "te.is_running": false},
		sq.NotEq{"te.end_time": nil},
	}
	if filter.UserID != nil {
		where = append(where, sq.Eq{"te.user_id": *filter.UserID})
	}
	if len(userIDs) > 0 {
		where = append(where, sq.Expr("te.user_id = ANY(?::uuid[])", userIDs))
	}
	if filter.StartDate != nil {
		where = append(where, sq.GtOrEq{"te.start_time": domain.StartOfDay(*filter.StartDate)})
	}
	if filter.EndDate != nil {
		where = append(where, sq.LtOrEq{"te.start_time": domain.EndOfDay(*filter.EndDate)})
	}

	listSQL, args, err := postgres.Builder.
		Select("te.user_id", "te.project_id", "p.name AS project_name",
			"te.start_time", "te.end_time", "te.is_billable").
		From("time_entries te").
		Join("projects p ON p.id = te.project_id").
		Where(where).
		OrderBy("te.start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build completed entries query: %w", err)
	}

	var rows []completedRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listSQL, args...); err != nil {
		return nil, fmt.Errorf("list completed entries: %w", err)
	}

	out := make([]domain.CompletedEntry, len(rows))
	for i, row := range rows {
		out[i] = domain.CompletedEntry{
			UserID:      row.UserID,
			ProjectID:   row.ProjectID,
			ProjectName: row.ProjectName,
			StartTime:   row.StartTime.UTC(),
			EndTime:     row.EndTime.UTC(),
			IsBillable:  row.IsBillable,
		}
	}
	return out, nil
}
