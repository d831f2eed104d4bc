package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fpvlvr/esclavizador/internal/domain"
	"github.com/fpvlvr/esclavizador/pkg/ctxutil"
)

type authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Auth resolves the bearer token into a principal and stores it in the
// context. Requests without a valid token never reach next.
func Auth(auth authenticator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				w.Header().Set("WWW-Authenticate", "Bearer")
				writeError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			user, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrUnauthorized):
					w.Header().Set("WWW-Authenticate", "Bearer")
					writeError(w, http.StatusUnauthorized, "Could not validate credentials")
				case errors.Is(err, domain.ErrForbidden):
					writeError(w, http.StatusForbidden, domain.MessageOf(err))
				default:
					logger.ErrorContext(r.Context(), "authenticate request", slog.String("error", err.Error()))
					writeError(w, http.StatusInternalServerError, "Internal server error")
				}
				return
			}

			if sw, ok := w.(*statusWriter); ok {
				sw.principal = user
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithPrincipal(r.Context(), user)))
		})
	}
}

// RequireBoss refuses principals without the boss role. It must run after Auth.
func RequireBoss(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := ctxutil.PrincipalFromCtx(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		if !u.IsBoss() {
			writeError(w, http.StatusForbidden, "Boss role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
