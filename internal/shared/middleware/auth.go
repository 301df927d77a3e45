package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/andrasnagy-data/userauth/internal/components/user"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const userIDKey contextKey = "userID"

// GetUserID extracts the user ID from the request context
func GetUserID(ctx context.Context) uuid.UUID {
	userID, _ := ctx.Value(userIDKey).(uuid.UUID)
	return userID
}

// NewAuthMiddleware creates authentication middleware for protected routes.
// It expects an "Authorization: Bearer <token>" header, verifies the token
// signature and expiry through the issuer, and adds the bound user ID to the
// request context for downstream handlers. No current route requires
// authentication, so nothing mounts it yet; it is the verification half of
// the token issuer, ready for the first protected route.
func NewAuthMiddleware(issuer *user.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			userID, err := issuer.Parse(token)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
