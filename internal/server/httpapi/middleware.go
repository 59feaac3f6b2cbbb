package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/karnadev/dragonsrealm/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// requireToken extracts and verifies the bearer token, placing the user id in
// the request context.
func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, http.StatusUnauthorized, "No token provided")
			return
		}

		token := header
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 {
			token = parts[1]
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromContext returns the id set by requireToken.
func userIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
