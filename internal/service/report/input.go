package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// ProjectReportInput narrows a project report. Dates are calendar days
// matched against start_time inclusively.
type ProjectReportInput struct {
	UserID    *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// Validate checks all fields and collects all errors.
func (i ProjectReportInput) Validate() error {
	if errs := dateRangeErrors(nil, i.StartDate, i.EndDate); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UserStatsInput selects the users of a stats report and the date window
// their entries are summed over.
type UserStatsInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	IsActive  *bool
	Role      *domain.UserRole
	Limit     int // 0 = default
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i UserStatsInput) Validate(maxLimit int) error {
	errs := dateRangeErrors(nil, i.StartDate, i.EndDate)

	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be boss or worker"})
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

func dateRangeErrors(errs []domain.FieldError, start, end *time.Time) []domain.FieldError {
	if start != nil && end != nil && end.Before(*start) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not be before start_date"})
	}
	return errs
}
