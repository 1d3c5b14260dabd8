package middleware

import (
	"context"
	"net/http"

	"github.com/thetrinh16698/tufting-booking/internal/api/handlers"
)

// UserIDHeader carries the already-authenticated user id. Authentication
// itself is an upstream concern; this service only consumes the identity.
const UserIDHeader = "X-User-ID"

type userIDContextKey struct{}

// Auth rejects requests without an authenticated user id and stores the id
// on the request context for handlers.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(UserIDHeader)
		if userID == "" {
			handlers.RespondUnauthorized(w, "missing "+UserIDHeader+" header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the authenticated user id set by Auth.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(string)
	return userID, ok
}
