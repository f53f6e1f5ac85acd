package middleware

import (
	"net/http"
	"strings"
	"time"

	"fc-admin/internal/supabase"

	"github.com/rs/zerolog"
)

type ctxKey string

const (
	CtxUserID ctxKey = "uid"
	CtxEmail  ctxKey = "email"
)

// SessionCookie carries the backend access token between requests.
const SessionCookie = "session"

// WithAuth attaches the caller's backend session to the request context so
// the auth façade forwards it. It does not decide anything: the backend is
// asked when a route requires a user.
func WithAuth(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Read token from cookie "session" or Authorization: Bearer
			var tok string
			if c, err := r.Cookie(SessionCookie); err == nil {
				tok = c.Value
			}
			if h := r.Header.Get("Authorization"); tok == "" && strings.HasPrefix(h, "Bearer ") {
				tok = strings.TrimPrefix(h, "Bearer ")
			}

			s := supabase.SessionFromToken(tok)
			if s == nil {
				next.ServeHTTP(w, r)
				return
			}

			// An expired cookie will never work again; stop it being sent.
			if exp := s.Expiry(); !exp.IsZero() && exp.Before(time.Now()) {
				log.Debug().Time("exp", exp).Msg("dropping expired session cookie")
				ClearSessionCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(supabase.ContextWithSession(r.Context(), s)))
		})
	}
}

func SetSessionCookie(w http.ResponseWriter, s *supabase.Session, secure bool) {
	c := &http.Cookie{
		Name:     SessionCookie,
		Value:    s.AccessToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
	if exp := s.Expiry(); !exp.IsZero() {
		c.Expires = exp
	}
	http.SetCookie(w, c)
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,              // expire immediately
		Expires:  time.Unix(0, 0), // for older browsers
	})
}
