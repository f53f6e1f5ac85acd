// Package supabasetest runs an in-process stand-in for the Supabase auth API.
package supabasetest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"fc-admin/internal/supabase"
	"fc-admin/internal/utils"
)

const AnonKey = "test-anon-key"

type Request struct {
	Method string
	Path   string
	Query  string
	APIKey string
	Bearer string
	Body   map[string]any
}

type account struct {
	password string
	user     supabase.User
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	accounts map[string]account
	tokens   map[string]string // access token -> email
	requests []Request
}

// NewServer starts a fake and closes it when the test ends.
func NewServer(t testing.TB) *Server {
	s := &Server{
		accounts: map[string]account{},
		tokens:   map[string]string{},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/v1/token", s.token)
	mux.HandleFunc("/auth/v1/user", s.user)
	mux.HandleFunc("/auth/v1/logout", s.logout)
	s.Server = httptest.NewServer(s.record(mux))
	t.Cleanup(s.Close)
	return s
}

// AddUser registers credentials and returns the user the fake will report.
func (s *Server) AddUser(email, password string) supabase.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := supabase.User{
		ID:        uuid.NewString(),
		Aud:       "authenticated",
		Role:      "authenticated",
		Email:     email,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	s.accounts[email] = account{password: password, user: u}
	return u
}

// Client returns a client pointed at the fake.
func (s *Server) Client(t testing.TB, opts ...supabase.Option) *supabase.Client {
	c, err := supabase.New(s.URL, AnonKey, opts...)
	if err != nil {
		t.Fatalf("supabase client: %v", err)
	}
	return c
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// ActiveTokens counts sessions the fake still accepts.
func (s *Server) ActiveTokens() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			APIKey: r.Header.Get("apikey"),
			Bearer: strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "),
		}
		if r.Body != nil && r.ContentLength != 0 {
			_ = json.NewDecoder(r.Body).Decode(&rec.Body)
		}
		s.mu.Lock()
		s.requests = append(s.requests, rec)
		s.mu.Unlock()

		if rec.APIKey != AnonKey {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Invalid API key"})
			return
		}
		r = r.WithContext(withBody(r.Context(), rec.Body))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) token(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Query().Get("grant_type") != "password" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "unsupported_grant_type", "error_description": "unsupported grant type"})
		return
	}
	body := bodyFrom(r.Context())
	email, _ := body["email"].(string)
	password, _ := body["password"].(string)

	s.mu.Lock()
	acc, ok := s.accounts[email]
	s.mu.Unlock()
	if !ok || acc.password != password {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"code":       400,
			"error_code": "invalid_credentials",
			"msg":        "Invalid login credentials",
		})
		return
	}

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, utils.Claims{
		Email:     email,
		Role:      "authenticated",
		SessionID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acc.user.ID,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}).SignedString([]byte("fake-jwt-secret"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"msg": err.Error()})
		return
	}

	s.mu.Lock()
	s.tokens[tok] = email
	s.mu.Unlock()

	u := acc.user
	writeJSON(w, http.StatusOK, supabase.Session{
		AccessToken:  tok,
		TokenType:    "bearer",
		ExpiresIn:    3600,
		ExpiresAt:    exp.Unix(),
		RefreshToken: uuid.NewString(),
		User:         &u,
	})
}

func (s *Server) user(w http.ResponseWriter, r *http.Request) {
	u, ok := s.lookup(r)
	if !ok {
		writeJSON(w, http.StatusForbidden, map[string]any{"code": 403, "error_code": "bad_jwt", "msg": "invalid JWT"})
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.lookup(r); !ok {
		writeJSON(w, http.StatusForbidden, map[string]any{"code": 403, "error_code": "bad_jwt", "msg": "invalid JWT"})
		return
	}
	s.mu.Lock()
	delete(s.tokens, bearer(r))
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) lookup(r *http.Request) (supabase.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email, ok := s.tokens[bearer(r)]
	if !ok {
		return supabase.User{}, false
	}
	return s.accounts[email].user, true
}

func bearer(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
