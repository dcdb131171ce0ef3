package gateway

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	CSRFCookieName = "csrftoken"
	CSRFHeaderName = "X-CSRFToken"
	csrfMaxAge     = 365 * 24 * 60 * 60
)

// IssueCSRFToken returns the caller's token, minting one when the cookie is
// missing or malformed. The cookie stays readable from scripts so pages can
// copy it into the header.
func (g *Gateway) IssueCSRFToken(w http.ResponseWriter, r *http.Request) {
	token := ""
	if c, err := r.Cookie(CSRFCookieName); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			token = c.Value
		}
	}
	if token == "" {
		token = uuid.NewString()
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   csrfMaxAge,
		Secure:   g.config.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	json.NewEncoder(w).Encode(map[string]string{"csrfToken": token})
}

func safeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}

// CSRFMiddleware rejects state-changing API calls whose X-CSRFToken header
// does not match the csrftoken cookie.
func (g *Gateway) CSRFMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if safeMethod(r.Method) || !strings.HasPrefix(r.URL.Path, "/api/") {
			next.ServeHTTP(w, r)
			return
		}

		cookie, err := r.Cookie(CSRFCookieName)
		header := r.Header.Get(CSRFHeaderName)
		if err != nil || cookie.Value == "" || header == "" ||
			subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(header)) != 1 {
			g.logger.Warn().Str("method", r.Method).Str("path", r.URL.Path).Msg("csrf check failed")
			http.Error(w, "CSRF token missing or incorrect", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
