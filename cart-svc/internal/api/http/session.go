package httpapi

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	SessionCookieName = "session_id"
	sessionMaxAge     = 30 * 24 * 60 * 60
)

type sessionKey struct{}

// withSession makes sure every request has a session id, issuing a new
// cookie when the request carries none or carries a malformed one.
func withSession(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := ""
			if cookie, err := r.Cookie(SessionCookieName); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					session = cookie.Value
				}
			}
			if session == "" {
				session = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    session,
					Path:     "/",
					MaxAge:   sessionMaxAge,
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, session)))
		})
	}
}

func sessionFrom(r *http.Request) string {
	session, _ := r.Context().Value(sessionKey{}).(string)
	return session
}
