package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/greenkartlabs/greenkart-backend/pkg/logger"
)

// SessionHeader names the header carrying the anonymous shopper session id.
const SessionHeader = "session_id"

type sessionCtxKey struct{}

// Session reads the session id from the request header, minting a fresh one
// when absent, and echoes it back on the response so the client can persist
// it. The id is stashed on the request context for handlers.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(SessionHeader)
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			w.Header().Set(SessionHeader, sessionID)

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithSessionID returns a context carrying the given session id.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, sessionID)
}

// SessionIDFromContext returns the session id stashed by Session, or "".
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionCtxKey{}).(string); ok {
		return id
	}
	return ""
}
