package session

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	// HeaderName carries the session id on requests and responses.
	HeaderName = "X-Session-ID"
	// DefaultCookieName is used when no cookie name is configured.
	DefaultCookieName = "pagechat_session"

	maxIDLength = 128
)

type ctxKey struct{}

// WithID returns a context carrying the session id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the session id stored by Middleware or WithID.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// Middleware resolves the session id from the X-Session-ID header, then the
// session cookie, and mints a new one when neither is usable. The id is
// echoed back in the header and cookie and stored in the request context.
func Middleware(cookieName string) func(http.Handler) http.Handler {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, fromCookie := resolveID(r, cookieName)
			if id == "" {
				id = uuid.NewString()
			}
			if !fromCookie {
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			w.Header().Set(HeaderName, id)
			next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
		})
	}
}

// resolveID reports the client-supplied id and whether the cookie already
// carries it.
func resolveID(r *http.Request, cookieName string) (string, bool) {
	var cookieID string
	if c, err := r.Cookie(cookieName); err == nil && validID(c.Value) {
		cookieID = c.Value
	}
	if h := strings.TrimSpace(r.Header.Get(HeaderName)); validID(h) {
		return h, h == cookieID
	}
	return cookieID, cookieID != ""
}

func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for _, c := range id {
		if !(c == '-' || c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}
