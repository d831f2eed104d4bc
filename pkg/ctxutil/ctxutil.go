package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

type ctxKey string

const (
	principalKey ctxKey = "principal"
	requestIDKey ctxKey = "request_id"
)

// WithPrincipal stores the authenticated user in the context.
func WithPrincipal(ctx context.Context, u *domain.User) context.Context {
	return context.WithValue(ctx, principalKey, u)
}

// PrincipalFromCtx extracts the authenticated user from the context.
// Returns nil and false if the value is missing, nil, or of the wrong type.
func PrincipalFromCtx(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(principalKey).(*domain.User)
	if !ok || u == nil {
		return nil, false
	}
	return u, true
}

// UserIDFromCtx returns the id of the authenticated user.
// Returns uuid.Nil and false if there is no principal.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	u, ok := PrincipalFromCtx(ctx)
	if !ok || u.ID == uuid.Nil {
		return uuid.Nil, false
	}
	return u.ID, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
