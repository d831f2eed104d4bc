package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedOrg creates an organization with a unique name.
func SeedOrg(t *testing.T, pool *pgxpool.Pool) domain.Organization {
	t.Helper()

	org := domain.Organization{
		ID:        uuid.New(),
		Name:      "Org " + uniqueSuffix(),
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO organizations (id, name, created_at) VALUES ($1, $2, $3)`,
		org.ID, org.Name, org.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOrg: %v", err)
	}

	return org
}

// SeedUser creates an active user with the given role inside orgID.
func SeedUser(t *testing.T, pool *pgxpool.Pool, orgID uuid.UUID, role domain.UserRole) domain.User {
	t.Helper()

	user := domain.User{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Email:          string(role) + "-" + uniqueSuffix() + "@example.com",
		Role:           role,
		IsActive:       true,
		CreatedAt:      now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, organization_id, email, role, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.OrganizationID, user.Email, string(user.Role), user.IsActive, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedProject creates an active project inside orgID.
func SeedProject(t *testing.T, pool *pgxpool.Pool, orgID uuid.UUID) domain.Project {
	t.Helper()

	p := domain.Project{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Name:           "Project " + uniqueSuffix(),
		Color:          "#3b82f6",
		IsActive:       true,
		CreatedAt:      now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO projects (id, organization_id, name, color, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.OrganizationID, p.Name, p.Color, p.IsActive, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject: %v", err)
	}

	return p
}

// SeedTask creates an active task inside projectID.
func SeedTask(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID) domain.Task {
	t.Helper()

	task := domain.Task{
		ID:        uuid.New(),
		ProjectID: projectID,
		Name:      "Task " + uniqueSuffix(),
		IsActive:  true,
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tasks (id, project_id, name, is_active, created_at) VALUES ($1, $2, $3, $4, $5)`,
		task.ID, task.ProjectID, task.Name, task.IsActive, task.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTask: %v", err)
	}

	return task
}

// SeedTag creates a tag inside orgID. An empty name gets a unique one.
func SeedTag(t *testing.T, pool *pgxpool.Pool, orgID uuid.UUID, name string) domain.Tag {
	t.Helper()

	if name == "" {
		name = "tag-" + uniqueSuffix()
	}
	tag := domain.Tag{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Name:           name,
		CreatedAt:      now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tags (id, organization_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		tag.ID, tag.OrganizationID, tag.Name, tag.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTag: %v", err)
	}

	return tag
}

// SeedCompletedEntry inserts a stopped entry for user on project spanning
// [start, end). Tags are not attached.
func SeedCompletedEntry(t *testing.T, pool *pgxpool.Pool, user domain.User, projectID uuid.UUID, start, end time.Time, billable bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO time_entries (id, organization_id, user_id, project_id, start_time, end_time, is_running, is_billable)
		 VALUES ($1, $2, $3, $4, $5, $6, false, $7)`,
		id, user.OrganizationID, user.ID, projectID, start.UTC(), end.UTC(), billable,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCompletedEntry: %v", err)
	}

	return id
}

// SeedRunningEntry inserts a running entry for user on project started at start.
func SeedRunningEntry(t *testing.T, pool *pgxpool.Pool, user domain.User, projectID uuid.UUID, start time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO time_entries (id, organization_id, user_id, project_id, start_time, is_running)
		 VALUES ($1, $2, $3, $4, $5, true)`,
		id, user.OrganizationID, user.ID, projectID, start.UTC(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRunningEntry: %v", err)
	}

	return id
}

// Fixture is a ready-made organization with a boss, a worker, a project
// with one task, and one tag.
type Fixture struct {
	Org     domain.Organization
	Boss    domain.User
	Worker  domain.User
	Project domain.Project
	Task    domain.Task
	Tag     domain.Tag
}

// SeedFixture creates a Fixture.
func SeedFixture(t *testing.T, pool *pgxpool.Pool) Fixture {
	t.Helper()

	org := SeedOrg(t, pool)
	project := SeedProject(t, pool, org.ID)
	return Fixture{
		Org:     org,
		Boss:    SeedUser(t, pool, org.ID, domain.UserRoleBoss),
		Worker:  SeedUser(t, pool, org.ID, domain.UserRoleWorker),
		Project: project,
		Task:    SeedTask(t, pool, project.ID),
		Tag:     SeedTag(t, pool, org.ID, ""),
	}
}
