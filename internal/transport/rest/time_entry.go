package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
	"github.com/fpvlvr/esclavizador/internal/service/timetracking"
)

type timeTrackingService interface {
	StartTimer(ctx context.Context, input timetracking.StartTimerInput) (*domain.TimeEntry, error)
	StopTimer(ctx context.Context, entryID uuid.UUID) (*domain.TimeEntry, error)
	GetRunningTimer(ctx context.Context) (*domain.TimeEntry, error)
	CreateManualEntry(ctx context.Context, input timetracking.ManualEntryInput) (*domain.TimeEntry, error)
	ListEntries(ctx context.Context, input timetracking.ListEntriesInput) (*domain.TimeEntryPage, error)
	GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.TimeEntry, error)
	UpdateEntry(ctx context.Context, input timetracking.UpdateEntryInput) (*domain.TimeEntry, error)
	DeleteEntry(ctx context.Context, entryID uuid.UUID) error
}

// TimeEntryHandler serves the time entry endpoints.
type TimeEntryHandler struct {
	svc timeTrackingService
	log *slog.Logger
}

// NewTimeEntryHandler creates a TimeEntryHandler.
func NewTimeEntryHandler(svc timeTrackingService, logger *slog.Logger) *TimeEntryHandler {
	return &TimeEntryHandler{svc: svc, log: logger.With("handler", "time_entries")}
}

type startTimerRequest struct {
	ProjectID   uuid.UUID   `json:"project_id"`
	TaskID      *uuid.UUID  `json:"task_id"`
	IsBillable  *bool       `json:"is_billable"`
	Description *string     `json:"description"`
	TagIDs      []uuid.UUID `json:"tag_ids"`
}

type manualEntryRequest struct {
	ProjectID   uuid.UUID   `json:"project_id"`
	TaskID      *uuid.UUID  `json:"task_id"`
	StartTime   *timestamp  `json:"start_time"`
	EndTime     *timestamp  `json:"end_time"`
	IsBillable  *bool       `json:"is_billable"`
	Description *string     `json:"description"`
	TagIDs      []uuid.UUID `json:"tag_ids"`
}

// updateEntryRequest tells absent fields from explicit nulls. A null
// task_id or description clears it; a null tag_ids leaves tags alone
// while [] removes them all.
type updateEntryRequest struct {
	ProjectID   *uuid.UUID            `json:"project_id"`
	TaskID      optional[uuid.UUID]   `json:"task_id"`
	StartTime   *timestamp            `json:"start_time"`
	EndTime     *timestamp            `json:"end_time"`
	IsBillable  *bool                 `json:"is_billable"`
	Description optional[string]      `json:"description"`
	TagIDs      optional[[]uuid.UUID] `json:"tag_ids"`
}

func (req updateEntryRequest) toInput(entryID uuid.UUID) timetracking.UpdateEntryInput {
	input := timetracking.UpdateEntryInput{
		EntryID:    entryID,
		ProjectID:  req.ProjectID,
		StartTime:  req.StartTime.ptr(),
		EndTime:    req.EndTime.ptr(),
		IsBillable: req.IsBillable,
	}
	if req.TaskID.Set {
		id := req.TaskID.Value
		if req.TaskID.Null {
			id = uuid.Nil
		}
		input.TaskID = &id
	}
	if req.Description.Set {
		desc := req.Description.Value
		input.Description = &desc
	}
	if req.TagIDs.Set && !req.TagIDs.Null {
		ids := req.TagIDs.Value
		if ids == nil {
			ids = []uuid.UUID{}
		}
		input.TagIDs = &ids
	}
	return input
}

func billableOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

// Start handles POST /api/v1/time-entries/start.
func (h *TimeEntryHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startTimerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	entry, err := h.svc.StartTimer(r.Context(), timetracking.StartTimerInput{
		ProjectID:   req.ProjectID,
		TaskID:      req.TaskID,
		IsBillable:  billableOrDefault(req.IsBillable),
		Description: req.Description,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTimeEntryResponse(entry))
}

// Stop handles POST /api/v1/time-entries/{id}/stop.
func (h *TimeEntryHandler) Stop(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	entry, err := h.svc.StopTimer(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTimeEntryResponse(entry))
}

// Running handles GET /api/v1/time-entries/running. The body is null when
// the caller has no running timer.
func (h *TimeEntryHandler) Running(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.GetRunningTimer(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if entry == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}

	writeJSON(w, http.StatusOK, toTimeEntryResponse(entry))
}

// Create handles POST /api/v1/time-entries.
func (h *TimeEntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req manualEntryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	entry, err := h.svc.CreateManualEntry(r.Context(), timetracking.ManualEntryInput{
		ProjectID:   req.ProjectID,
		TaskID:      req.TaskID,
		StartTime:   req.StartTime.value(),
		EndTime:     req.EndTime.value(),
		IsBillable:  billableOrDefault(req.IsBillable),
		Description: req.Description,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTimeEntryResponse(entry))
}

// List handles GET /api/v1/time-entries.
func (h *TimeEntryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := timetracking.ListEntriesInput{
		Filter: domain.TimeEntryFilter{
			UserID:     q.id("user_id"),
			ProjectID:  q.id("project_id"),
			TaskID:     q.id("task_id"),
			IsBillable: q.boolean("is_billable"),
			IsRunning:  q.boolean("is_running"),
			StartDate:  q.date("start_date"),
			EndDate:    q.date("end_date"),
			TagIDs:     q.ids("tag_ids"),
		},
		Limit:  q.limit(),
		Offset: q.integer("offset", 0),
	}
	if err := q.err(); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	page, err := h.svc.ListEntries(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	items := make([]timeEntryResponse, len(page.Items))
	for i, e := range page.Items {
		items[i] = toTimeEntryResponse(e)
	}
	writeJSON(w, http.StatusOK, pageResponse[timeEntryResponse]{
		Items:  items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

// Get handles GET /api/v1/time-entries/{id}.
func (h *TimeEntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	entry, err := h.svc.GetEntry(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTimeEntryResponse(entry))
}

// Update handles PUT and PATCH /api/v1/time-entries/{id}. Both are partial.
func (h *TimeEntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req updateEntryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	entry, err := h.svc.UpdateEntry(r.Context(), req.toInput(id))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTimeEntryResponse(entry))
}

// Delete handles DELETE /api/v1/time-entries/{id}.
func (h *TimeEntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteEntry(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
