package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

type errorResponse struct {
	Detail string              `json:"detail"`
	Errors []fieldErrorPayload `json:"errors,omitempty"`
}

type fieldErrorPayload struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// writeServiceError maps a service error onto a status code and a
// caller-safe body. Unexpected errors are logged and hidden.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		resp := errorResponse{Detail: "Validation failed", Errors: make([]fieldErrorPayload, len(ve.Errors))}
		for i, fe := range ve.Errors {
			resp.Errors[i] = fieldErrorPayload{Field: fe.Field, Message: fe.Message}
		}
		if len(ve.Errors) == 1 {
			resp.Detail = fmt.Sprintf("%s: %s", ve.Errors[0].Field, ve.Errors[0].Message)
		}
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	status, fallback := statusOf(err)
	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, status, fallback)
		return
	}
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	detail := domain.MessageOf(err)
	if detail == "" {
		detail = fallback
	}
	writeError(w, status, detail)
}

func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, "Conflict"
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest, "Bad request"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Not authenticated"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
