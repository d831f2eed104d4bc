package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/pkg/ctxutil"
)

// RequestIDHeader carries the request correlation id both ways.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 128

// RequestID adopts a well-formed incoming X-Request-ID or mints a UUID,
// stores it in the context and echoes it on the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if !validRequestID(id) {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		})
	}
}

// validRequestID accepts non-empty visible ASCII up to maxRequestIDLength.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
