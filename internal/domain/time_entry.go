package domain

import (
	"time"

	"github.com/google/uuid"
)

// TimeEntry is a span of work by one user on one project.
//
// A running entry has EndTime == nil and IsRunning == true; a completed entry
// has both timestamps set. UserEmail, ProjectName, TaskName and Tags are
// read-time projections assembled by the store, never written back.
type TimeEntry struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	ProjectID      uuid.UUID
	TaskID         *uuid.UUID
	OrganizationID uuid.UUID
	StartTime      time.Time
	EndTime        *time.Time
	IsRunning      bool
	IsBillable     bool
	Description    *string
	CreatedAt      time.Time

	UserEmail   string
	ProjectName string
	TaskName    *string
	Tags        []Tag
}

// DurationSeconds returns end-start in whole seconds, or nil while running.
func (e *TimeEntry) DurationSeconds() *int64 {
	if e.EndTime == nil {
		return nil
	}
	d := DurationSeconds(e.StartTime, *e.EndTime)
	return &d
}

// DurationSeconds computes whole seconds between two instants after
// normalizing both to UTC.
func DurationSeconds(start, end time.Time) int64 {
	return int64(ToUTC(end).Sub(ToUTC(start)) / time.Second)
}

// NewTimeEntry holds the fields persisted when an entry is created.
type NewTimeEntry struct {
	UserID         uuid.UUID
	ProjectID      uuid.UUID
	TaskID         *uuid.UUID
	OrganizationID uuid.UUID
	StartTime      time.Time
	EndTime        *time.Time
	IsBillable     bool
	Description    *string
}

// IsRunning reports whether the new entry starts as a running timer.
func (n NewTimeEntry) IsRunning() bool {
	return n.EndTime == nil
}

// TimeEntryUpdateParams is a partial update. A nil field is left unchanged.
type TimeEntryUpdateParams struct {
	ProjectID   *uuid.UUID
	TaskID      *uuid.UUID // ptr(uuid.Nil) = clear
	StartTime   *time.Time
	EndTime     *time.Time
	IsBillable  *bool
	Description *string      // ptr("") = clear
	TagIDs      *[]uuid.UUID // ptr(empty) = remove all tags
}

// TouchesTimes reports whether the update modifies start_time or end_time.
func (p TimeEntryUpdateParams) TouchesTimes() bool {
	return p.StartTime != nil || p.EndTime != nil
}

// TimeEntryFilter narrows a time entry listing. Nil fields do not filter.
// StartDate and EndDate are calendar days bounding start_time inclusively.
// TagIDs matches entries carrying any of the given tags.
type TimeEntryFilter struct {
	UserID     *uuid.UUID
	ProjectID  *uuid.UUID
	TaskID     *uuid.UUID
	IsBillable *bool
	IsRunning  *bool
	StartDate  *time.Time
	EndDate    *time.Time
	TagIDs     []uuid.UUID
}

// TimeEntryPage is one page of a filtered listing. Total counts all matches.
type TimeEntryPage struct {
	Items  []*TimeEntry
	Total  int
	Limit  int
	Offset int
}
