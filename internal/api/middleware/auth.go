// Package middleware holds the router-level HTTP middleware.
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/tktkaws/booking-02/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

// Auth requires a positive numeric X-User-ID header and stores it in the
// request context. Authentication itself happens upstream; this service
// trusts the gateway-injected header.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			handlers.RespondUnauthorized(w, "X-User-ID header is required")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "X-User-ID header must be a positive integer")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated user from the request context.
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
