package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
	"github.com/fpvlvr/esclavizador/internal/service/tag"
)

type tagService interface {
	CreateTag(ctx context.Context, input tag.CreateTagInput) (*domain.Tag, error)
	ListTags(ctx context.Context, input tag.ListTagsInput) (*domain.TagPage, error)
	GetTag(ctx context.Context, tagID uuid.UUID) (*domain.Tag, error)
	DeleteTag(ctx context.Context, tagID uuid.UUID) error
}

// TagHandler serves the tag endpoints.
type TagHandler struct {
	svc tagService
	log *slog.Logger
}

// NewTagHandler creates a TagHandler.
func NewTagHandler(svc tagService, logger *slog.Logger) *TagHandler {
	return &TagHandler{svc: svc, log: logger.With("handler", "tags")}
}

type createTagRequest struct {
	Name string `json:"name"`
}

// Create handles POST /api/v1/tags.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTagRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	t, err := h.svc.CreateTag(r.Context(), tag.CreateTagInput{Name: req.Name})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTagResponse(*t))
}

// List handles GET /api/v1/tags?limit=&offset=.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := tag.ListTagsInput{Limit: q.limit(), Offset: q.integer("offset", 0)}
	if err := q.err(); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	page, err := h.svc.ListTags(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, pageResponse[tagResponse]{
		Items:  toTagResponses(page.Items),
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

// Get handles GET /api/v1/tags/{id}.
func (h *TagHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	t, err := h.svc.GetTag(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTagResponse(*t))
}

// Delete handles DELETE /api/v1/tags/{id}.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteTag(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
