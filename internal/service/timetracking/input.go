package timetracking

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// StartTimerInput holds the parameters for starting a timer.
type StartTimerInput struct {
	ProjectID   uuid.UUID
	TaskID      *uuid.UUID
	IsBillable  bool
	Description *string
	TagIDs      []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i StartTimerInput) Validate(maxDescription int) error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	errs = appendDescriptionError(errs, i.Description, maxDescription)
	errs = appendTagErrors(errs, i.TagIDs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ManualEntryInput holds the parameters for a completed entry recorded after the fact.
type ManualEntryInput struct {
	ProjectID   uuid.UUID
	TaskID      *uuid.UUID
	StartTime   time.Time
	EndTime     time.Time
	IsBillable  bool
	Description *string
	TagIDs      []uuid.UUID
}

// Validate checks all fields and collects all errors. Temporal rules
// (ordering, future, overlap) are checked by the service.
func (i ManualEntryInput) Validate(maxDescription int) error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.StartTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start_time", Message: "required"})
	}
	if i.EndTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "end_time", Message: "required"})
	}
	errs = appendDescriptionError(errs, i.Description, maxDescription)
	errs = appendTagErrors(errs, i.TagIDs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListEntriesInput holds a filter and pagination for listing entries.
type ListEntriesInput struct {
	Filter domain.TimeEntryFilter
	Limit  int // 0 = default
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListEntriesInput) Validate(maxLimit int) error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", maxLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if i.Filter.StartDate != nil && i.Filter.EndDate != nil && i.Filter.EndDate.Before(*i.Filter.StartDate) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEntryInput holds a partial update. Nil fields are left unchanged.
type UpdateEntryInput struct {
	EntryID     uuid.UUID
	ProjectID   *uuid.UUID
	TaskID      *uuid.UUID // ptr(uuid.Nil) = clear
	StartTime   *time.Time
	EndTime     *time.Time
	IsBillable  *bool
	Description *string      // ptr("") = clear
	TagIDs      *[]uuid.UUID // ptr(empty) = remove all tags
}

// Validate checks all fields and collects all errors.
func (i UpdateEntryInput) Validate(maxDescription int) error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if i.ProjectID != nil && *i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "must not be empty"})
	}
	errs = appendDescriptionError(errs, i.Description, maxDescription)
	if i.TagIDs != nil {
		errs = appendTagErrors(errs, *i.TagIDs)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateEntryInput) params() domain.TimeEntryUpdateParams {
	return domain.TimeEntryUpdateParams{
		ProjectID:   i.ProjectID,
		TaskID:      i.TaskID,
		StartTime:   i.StartTime,
		EndTime:     i.EndTime,
		IsBillable:  i.IsBillable,
		Description: i.Description,
		TagIDs:      i.TagIDs,
	}
}

func appendDescriptionError(errs []domain.FieldError, description *string, max int) []domain.FieldError {
	if description != nil && utf8.RuneCountInString(*description) > max {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", max)})
	}
	return errs
}

func appendTagErrors(errs []domain.FieldError, ids []uuid.UUID) []domain.FieldError {
	for _, id := range ids {
		if id == uuid.Nil {
			return append(errs, domain.FieldError{Field: "tag_ids", Message: "must not contain empty ids"})
		}
	}
	return errs
}
