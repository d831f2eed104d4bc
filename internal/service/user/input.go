package user

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// ListUsersInput holds filters and pagination for listing members.
type ListUsersInput struct {
	IsActive *bool
	Role     *domain.UserRole
	Limit    int // 0 = default
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i ListUsersInput) Validate(maxLimit int) error {
	var errs []domain.FieldError

	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be 'boss' or 'worker'"})
	}
	if i.Limit < 0 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", maxLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateUserInput changes a member's role or activity. Nil fields are kept.
type UpdateUserInput struct {
	UserID   uuid.UUID
	Role     *domain.UserRole
	IsActive *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be 'boss' or 'worker'"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateUserInput) params() domain.UserUpdateParams {
	return domain.UserUpdateParams{Role: i.Role, IsActive: i.IsActive}
}
