package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a member of an organization. The authenticated principal of a
// request is always a User loaded from storage.
type User struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Email          string
	Role           UserRole
	IsActive       bool
	CreatedAt      time.Time
}

// IsBoss reports whether the user has the privileged role.
func (u *User) IsBoss() bool {
	return u.Role.IsBoss()
}

// CanAccessEntryOf reports whether u may read or edit an entry owned by ownerID.
// Workers are limited to their own entries; bosses see the whole organization.
func (u *User) CanAccessEntryOf(ownerID uuid.UUID) bool {
	return u.IsBoss() || u.ID == ownerID
}

// UserUpdateParams changes a member's role or activity. Nil fields are kept.
type UserUpdateParams struct {
	Role     *UserRole
	IsActive *bool
}

// IsEmpty reports whether no field is set.
func (p UserUpdateParams) IsEmpty() bool {
	return p.Role == nil && p.IsActive == nil
}

// UserPage is one page of organization members. Total counts all matches.
type UserPage struct {
	Items  []*User
	Total  int
	Limit  int
	Offset int
}
