package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
	"github.com/fpvlvr/esclavizador/internal/service/user"
)

type userService interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
	ListUsers(ctx context.Context, input user.ListUsersInput) (*domain.UserPage, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateUser(ctx context.Context, input user.UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// UserHandler serves organization member management.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "users")}
}

type updateUserRequest struct {
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

// Me handles GET /api/v1/users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.CurrentUser(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// List handles GET /api/v1/users?is_active=&role=&limit=&offset=.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := user.ListUsersInput{
		IsActive: q.boolean("is_active"),
		Role:     q.role("role"),
		Limit:    q.limit(),
		Offset:   q.integer("offset", 0),
	}
	if err := q.err(); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	page, err := h.svc.ListUsers(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	items := make([]userResponse, len(page.Items))
	for i, u := range page.Items {
		items[i] = toUserResponse(u)
	}
	writeJSON(w, http.StatusOK, pageResponse[userResponse]{
		Items:  items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

// Get handles GET /api/v1/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Update handles PUT and PATCH /api/v1/users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req updateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	input := user.UpdateUserInput{UserID: id, IsActive: req.IsActive}
	if req.Role != nil {
		role := domain.UserRole(strings.ToLower(strings.TrimSpace(*req.Role)))
		input.Role = &role
	}

	u, err := h.svc.UpdateUser(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Delete handles DELETE /api/v1/users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteUser(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
