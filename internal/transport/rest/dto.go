package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

type tagResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	OrganizationID uuid.UUID `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
}

func toTagResponse(t domain.Tag) tagResponse {
	return tagResponse{
		ID:             t.ID,
		Name:           t.Name,
		OrganizationID: t.OrganizationID,
		CreatedAt:      t.CreatedAt.UTC(),
	}
}

func toTagResponses(tags []domain.Tag) []tagResponse {
	out := make([]tagResponse, len(tags))
	for i, t := range tags {
		out[i] = toTagResponse(t)
	}
	return out
}

type timeEntryResponse struct {
	ID              uuid.UUID     `json:"id"`
	UserID          uuid.UUID     `json:"user_id"`
	UserEmail       string        `json:"user_email"`
	ProjectID       uuid.UUID     `json:"project_id"`
	ProjectName     string        `json:"project_name"`
	TaskID          *uuid.UUID    `json:"task_id"`
	TaskName        *string       `json:"task_name"`
	OrganizationID  uuid.UUID     `json:"organization_id"`
	StartTime       time.Time     `json:"start_time"`
	EndTime         *time.Time    `json:"end_time"`
	IsRunning       bool          `json:"is_running"`
	IsBillable      bool          `json:"is_billable"`
	Description     *string       `json:"description"`
	DurationSeconds *int64        `json:"duration_seconds"`
	CreatedAt       time.Time     `json:"created_at"`
	Tags            []tagResponse `json:"tags"`
}

func toTimeEntryResponse(e *domain.TimeEntry) timeEntryResponse {
	resp := timeEntryResponse{
		ID:              e.ID,
		UserID:          e.UserID,
		UserEmail:       e.UserEmail,
		ProjectID:       e.ProjectID,
		ProjectName:     e.ProjectName,
		TaskID:          e.TaskID,
		TaskName:        e.TaskName,
		OrganizationID:  e.OrganizationID,
		StartTime:       e.StartTime.UTC(),
		IsRunning:       e.IsRunning,
		IsBillable:      e.IsBillable,
		Description:     e.Description,
		DurationSeconds: e.DurationSeconds(),
		CreatedAt:       e.CreatedAt.UTC(),
		Tags:            toTagResponses(e.Tags),
	}
	if e.EndTime != nil {
		end := e.EndTime.UTC()
		resp.EndTime = &end
	}
	return resp
}

type pageResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type itemsResponse[T any] struct {
	Items []T `json:"items"`
}

type projectAggregateResponse struct {
	ProjectID       uuid.UUID `json:"project_id"`
	ProjectName     string    `json:"project_name"`
	TotalSeconds    int64     `json:"total_seconds"`
	BillableSeconds int64     `json:"billable_seconds"`
}

func toProjectAggregateResponses(aggs []domain.ProjectAggregate) []projectAggregateResponse {
	out := make([]projectAggregateResponse, len(aggs))
	for i, a := range aggs {
		out[i] = projectAggregateResponse{
			ProjectID:       a.ProjectID,
			ProjectName:     a.ProjectName,
			TotalSeconds:    a.TotalSeconds,
			BillableSeconds: a.BillableSeconds,
		}
	}
	return out
}

type userStatsResponse struct {
	UserID           uuid.UUID                  `json:"user_id"`
	Email            string                     `json:"email"`
	Role             string                     `json:"role"`
	IsActive         bool                       `json:"is_active"`
	EntryCount       int                        `json:"entry_count"`
	TotalTimeSeconds int64                      `json:"total_time_seconds"`
	BillableSeconds  int64                      `json:"billable_seconds"`
	Projects         []projectAggregateResponse `json:"projects"`
}

func toUserStatsResponse(s domain.UserStats) userStatsResponse {
	return userStatsResponse{
		UserID:           s.UserID,
		Email:            s.Email,
		Role:             s.Role.String(),
		IsActive:         s.IsActive,
		EntryCount:       s.EntryCount,
		TotalTimeSeconds: s.TotalSeconds,
		BillableSeconds:  s.BillableSeconds,
		Projects:         toProjectAggregateResponses(s.Projects),
	}
}

type userResponse struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	OrganizationID uuid.UUID `json:"organization_id"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:             u.ID,
		Email:          u.Email,
		Role:           u.Role.String(),
		OrganizationID: u.OrganizationID,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt.UTC(),
	}
}
