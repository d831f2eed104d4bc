package domain

import (
	"time"

	"github.com/google/uuid"
)

// Organization is the tenant boundary. Every other entity belongs to exactly one.
type Organization struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Project groups tasks and time entries inside an organization.
type Project struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	Description    *string
	Color          string
	IsActive       bool
	CreatedAt      time.Time
}

// Task is a unit of work inside a project.
type Task struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Name      string
	IsActive  bool
	CreatedAt time.Time
}

// Tag is an organization-scoped label. Names are unique per organization,
// compared case-insensitively.
type Tag struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	CreatedAt      time.Time
}

// MaxTagNameLength is the upper bound for a tag name in characters.
const MaxTagNameLength = 100

// TagPage is one page of tags ordered by name. Total counts all tags.
type TagPage struct {
	Items  []Tag
	Total  int
	Limit  int
	Offset int
}
