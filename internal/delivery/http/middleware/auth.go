package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "devevent/internal/delivery/http/helpers"
	"devevent/internal/domain"
)

type contextKey string

const organizerKey contextKey = "organizer"

// SetOrganizer returns a context carrying the authenticated organizer subject.
func SetOrganizer(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, organizerKey, subject)
}

// OrganizerFromContext returns the authenticated organizer subject, if present.
func OrganizerFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(organizerKey).(string)
	return sub, ok
}

// RequireOrganizer validates the Bearer token and stores the organizer subject in the request
// context. A missing or invalid token is answered with 401 and next is not called.
func RequireOrganizer(verifier domain.TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteMessage(w, http.StatusUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteMessage(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteMessage(w, http.StatusUnauthorized, "missing token")
				return
			}
			subject, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "organizer token rejected", "path", r.URL.Path, "err", err)
				h.WriteMessage(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(SetOrganizer(r.Context(), subject)))
		})
	}
}
