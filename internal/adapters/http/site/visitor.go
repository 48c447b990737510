package site

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// VisitorCookie carries the visitor id between requests.
const VisitorCookie = "olympia_visitor"

type visitorKey struct{}

// VisitorID returns the visitor id attached to ctx.
func VisitorID(ctx context.Context) string {
	id, _ := ctx.Value(visitorKey{}).(string)
	return id
}

// WithVisitorID attaches a visitor id to ctx.
func WithVisitorID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, visitorKey{}, id)
}

type visitorCookie struct {
	name   string
	secure bool
}

// Middleware attaches the visitor id from the cookie, issuing a new id when
// the cookie is missing or malformed.
func (c *visitorCookie) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if ck, err := r.Cookie(c.name); err == nil {
			if parsed, err := uuid.Parse(ck.Value); err == nil {
				id = parsed.String()
			}
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     c.name,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				Secure:   c.secure,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(WithVisitorID(r.Context(), id)))
	})
}
