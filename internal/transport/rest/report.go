package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/fpvlvr/esclavizador/internal/domain"
	"github.com/fpvlvr/esclavizador/internal/service/report"
)

type reportService interface {
	ProjectReport(ctx context.Context, input report.ProjectReportInput) ([]domain.ProjectAggregate, error)
	UserStats(ctx context.Context, input report.UserStatsInput) (*domain.UserStatsPage, error)
}

// ReportHandler serves the boss-only reporting endpoints.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "reports")}
}

// Projects handles GET /api/v1/reports/projects?user_id=&start_date=&end_date=.
func (h *ReportHandler) Projects(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := report.ProjectReportInput{
		UserID:    q.id("user_id"),
		StartDate: q.date("start_date"),
		EndDate:   q.date("end_date"),
	}
	if err := q.err(); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	aggs, err := h.svc.ProjectReport(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, itemsResponse[projectAggregateResponse]{Items: toProjectAggregateResponses(aggs)})
}

// UserStats handles GET /api/v1/reports/users and its alias /api/v1/users/stats.
func (h *ReportHandler) UserStats(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := report.UserStatsInput{
		StartDate: q.date("start_date"),
		EndDate:   q.date("end_date"),
		IsActive:  q.boolean("is_active"),
		Role:      q.role("role"),
		Limit:     q.limit(),
		Offset:    q.integer("offset", 0),
	}
	if err := q.err(); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	page, err := h.svc.UserStats(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	items := make([]userStatsResponse, len(page.Items))
	for i, s := range page.Items {
		items[i] = toUserStatsResponse(s)
	}
	writeJSON(w, http.StatusOK, pageResponse[userStatsResponse]{
		Items:  items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}
