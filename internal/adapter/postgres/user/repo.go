// Package user implements the user repository using PostgreSQL. Accounts are
// provisioned elsewhere; this package reads principals and lets bosses
// change or remove members of their organization.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/fpvlvr/esclavizador/internal/adapter/postgres"
	"github.com/fpvlvr/esclavizador/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID             uuid.UUID `db:"id"`
	OrganizationID uuid.UUID `db:"organization_id"`
	Email          string    `db:"email"`
	Role           string    `db:"role"`
	IsActive       bool      `db:"is_active"`
	CreatedAt      time.Time `db:"created_at"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:             r.ID,
		OrganizationID: r.OrganizationID,
		Email:          r.Email,
		Role:           domain.UserRole(r.Role),
		IsActive:       r.IsActive,
		CreatedAt:      r.CreatedAt.UTC(),
	}
}

var userColumns = []string{"id", "organization_id", "email", "role", "is_active", "created_at"}

// GetByID returns a user by primary key regardless of organization.
// Used to resolve the authenticated principal.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return r.get(ctx, userID, sq.Eq{"id": userID})
}

// GetByIDInOrg returns a user scoped to orgID.
// Returns domain.ErrNotFound if the user belongs to another organization.
func (r *Repo) GetByIDInOrg(ctx context.Context, orgID, userID uuid.UUID) (*domain.User, error) {
	return r.get(ctx, userID, sq.Eq{"id": userID, "organization_id": orgID})
}

func (r *Repo) get(ctx context.Context, userID uuid.UUID, where sq.Eq) (*domain.User, error) {
	getSQL, args, err := postgres.Builder.Select(userColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getSQL, args...); err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}
	return row.toDomain(), nil
}

// List returns one page of users in orgID ordered by email, and the total count.
func (r *Repo) List(ctx context.Context, orgID uuid.UUID, filter domain.UserFilter, limit, offset int) ([]*domain.User, int, error) {
	where := sq.And{sq.Eq{"organization_id": orgID}}
	if filter.IsActive != nil {
		where = append(where, sq.Eq{"is_active": *filter.IsActive})
	}
	if filter.Role != nil {
		where = append(where, sq.Eq{"role": string(*filter.Role)})
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder.Select("count(*)").From("users").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count users: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	listSQL, args, err := postgres.Builder.
		Select(userColumns...).
		From("users").
		Where(where).
		OrderBy("email", "id").
		Limit(uint64(max(limit, 0))).
		Offset(uint64(max(offset, 0))).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list users: %w", err)
	}

	var rows []userRow
	if err := pgxscan.Select(ctx, q, &rows, listSQL, args...); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	users := make([]*domain.User, len(rows))
	for i, row := range rows {
		users[i] = row.toDomain()
	}
	return users, total, nil
}

// Update applies params to the user identified by userID inside orgID and
// returns the stored row. An empty params reads the user unchanged.
func (r *Repo) Update(ctx context.Context, orgID, userID uuid.UUID, params domain.UserUpdateParams) (*domain.User, error) {
	if params.IsEmpty() {
		return r.GetByIDInOrg(ctx, orgID, userID)
	}

	b := postgres.Builder.Update("users").
		Where(sq.Eq{"id": userID, "organization_id": orgID}).
		Suffix("RETURNING " + strings.Join(userColumns, ", "))
	if params.Role != nil {
		b = b.Set("role", string(*params.Role))
	}
	if params.IsActive != nil {
		b = b.Set("is_active", *params.IsActive)
	}

	updateSQL, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, updateSQL, args...); err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}
	return row.toDomain(), nil
}

const deleteSQL = `DELETE FROM users WHERE id = $1 AND organization_id = $2`

// Delete removes a user. CASCADE deletes the user's time entries.
func (r *Repo) Delete(ctx context.Context, orgID, userID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, userID, orgID)
	if err != nil {
		return postgres.MapError(err, "user", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}
