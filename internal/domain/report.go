package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectAggregate is the computed total for one project. Never persisted.
type ProjectAggregate struct {
	ProjectID       uuid.UUID
	ProjectName     string
	TotalSeconds    int64
	BillableSeconds int64
}

// CompletedEntry is the minimal projection of a stopped entry that the
// aggregation reads.
type CompletedEntry struct {
	UserID      uuid.UUID
	ProjectID   uuid.UUID
	ProjectName string
	StartTime   time.Time
	EndTime     time.Time
	IsBillable  bool
}

// ReportFilter bounds an aggregation. StartDate and EndDate are calendar
// days matched against start_time inclusively.
type ReportFilter struct {
	UserID    *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// UserFilter narrows the user listing of a stats report.
type UserFilter struct {
	IsActive *bool
	Role     *UserRole
}

// UserStats is a per-user summary over a date window.
type UserStats struct {
	UserID          uuid.UUID
	Email           string
	Role            UserRole
	IsActive        bool
	EntryCount      int
	TotalSeconds    int64
	BillableSeconds int64
	Projects        []ProjectAggregate
}

// UserStatsPage is one page of user stats. Total counts matching users.
type UserStatsPage struct {
	Items  []UserStats
	Total  int
	Limit  int
	Offset int
}
