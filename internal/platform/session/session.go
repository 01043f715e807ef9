// Package session ties per-browser state to a cookie-carried session ID
// and hands out the per-session stores that hold it.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type contextKey struct{}

// Middleware ensures every request carries a session ID. A missing or
// blank cookie gets a freshly generated ID set on the response, and the
// ID is placed on the request context for handlers.
func Middleware(cookieName string, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
				id = c.Value
			} else {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    id,
					Path:     "/",
					Expires:  time.Now().Add(ttl),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
		})
	}
}

// WithID returns a context carrying the given session ID.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// IDFromContext returns the session ID placed by Middleware, or "".
func IDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
