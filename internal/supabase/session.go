package supabase

import (
	"context"
	"time"

	"fc-admin/internal/utils"
)

// User is the auth user as returned by the backend.
type User struct {
	ID               string         `json:"id"`
	Aud              string         `json:"aud,omitempty"`
	Role             string         `json:"role,omitempty"`
	Email            string         `json:"email,omitempty"`
	Phone            string         `json:"phone,omitempty"`
	EmailConfirmedAt *time.Time     `json:"email_confirmed_at,omitempty"`
	LastSignInAt     *time.Time     `json:"last_sign_in_at,omitempty"`
	AppMetadata      map[string]any `json:"app_metadata,omitempty"`
	UserMetadata     map[string]any `json:"user_metadata,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        *time.Time     `json:"updated_at,omitempty"`
}

type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at,omitempty"` // unix seconds
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
}

// AuthResponse is the data half of a sign-in.
type AuthResponse struct {
	Session *Session `json:"session"`
	User    *User    `json:"user"`
}

// SessionFromToken wraps a bare access token, e.g. one read from a cookie.
func SessionFromToken(accessToken string) *Session {
	if accessToken == "" {
		return nil
	}
	return &Session{AccessToken: accessToken, TokenType: "bearer"}
}

// Claims reads the access token payload. The signature is not checked.
func (s *Session) Claims() (*utils.Claims, error) {
	return utils.ParseAccessClaims(s.AccessToken)
}

// Expiry prefers expires_at and falls back to the token's exp claim.
func (s *Session) Expiry() time.Time {
	if s.ExpiresAt > 0 {
		return time.Unix(s.ExpiresAt, 0)
	}
	if c, err := s.Claims(); err == nil {
		return c.Expiry()
	}
	return time.Time{}
}

type sessionKey struct{}

// ContextWithSession attaches a session that takes precedence over the one
// held by the client for calls made with the returned context.
func ContextWithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey{}).(*Session)
	return s
}
