package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntityType names the kind of record an audit entry refers to.
type EntityType string

const (
	EntityTypeUser EntityType = "user"
	EntityTypeTag  EntityType = "tag"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeUser, EntityTypeTag:
		return true
	}
	return false
}

// AuditAction is the kind of change recorded.
type AuditAction string

const (
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}

// AuditRecord is an append-only note of an administrative change made by
// ActorID inside OrganizationID. Changes holds before/after values.
type AuditRecord struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	ActorID        uuid.UUID
	EntityType     EntityType
	EntityID       uuid.UUID
	Action         AuditAction
	Changes        map[string]any
	CreatedAt      time.Time
}
