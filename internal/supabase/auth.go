package supabase

import (
	"context"
	"net/http"
	"time"

	"github.com/supabase-community/auth-go/types"
)

// SignInWithPassword exchanges email and password for a session.
// Credentials are sent as given.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*AuthResponse, error) {
	api, x := c.api(ctx)
	res, err := api.Token(types.TokenRequest{
		GrantType: "password",
		Email:     email,
		Password:  password,
	})
	if err != nil {
		return nil, x.wrap("sign in", err)
	}

	var s Session
	if err := convert(res, &s); err != nil {
		return nil, err
	}
	if s.User != nil {
		s.User.dropZeroTimes()
	}
	if c.persist {
		held := s.clone()
		c.mu.Lock()
		c.session = held
		c.mu.Unlock()
	}
	return &AuthResponse{Session: &s, User: s.User}, nil
}

// SignOut ends the current session. Without a session it is a no-op.
// A 401, 403 or 404 means the backend already forgot the session, which is
// treated as success.
func (c *Client) SignOut(ctx context.Context) error {
	s := c.currentSession(ctx)
	if s == nil {
		return nil
	}
	api, x := c.api(ctx)
	if err := api.WithToken(s.AccessToken).Logout(); err != nil {
		err = x.wrap("sign out", err)
		if !IsAuthError(err, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound) {
			return err
		}
	}
	c.forget(s)
	return nil
}

// GetUser asks the backend who owns the current session.
func (c *Client) GetUser(ctx context.Context) (*User, error) {
	s := c.currentSession(ctx)
	if s == nil {
		return nil, ErrSessionMissing
	}
	api, x := c.api(ctx)
	res, err := api.WithToken(s.AccessToken).GetUser()
	if err != nil {
		return nil, x.wrap("get user", err)
	}
	var u User
	if err := convert(res, &u); err != nil {
		return nil, err
	}
	u.dropZeroTimes()
	return &u, nil
}

// Session returns the session held by the client, if any.
func (c *Client) Session() *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

func (c *Client) currentSession(ctx context.Context) *Session {
	if s := SessionFromContext(ctx); s != nil {
		return s
	}
	return c.Session()
}

// forget drops the held session only if it is the one that was signed out.
func (c *Client) forget(s *Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == s {
		c.session = nil
	}
}

// clone copies the session and its user so the held copy is not shared with
// callers. Metadata maps are shared.
func (s *Session) clone() *Session {
	cp := *s
	if s.User != nil {
		u := *s.User
		cp.User = &u
	}
	return &cp
}

// auth-go encodes unset timestamps as the zero time.
func (u *User) dropZeroTimes() {
	for _, p := range []**time.Time{&u.EmailConfirmedAt, &u.LastSignInAt, &u.UpdatedAt} {
		if *p != nil && (*p).IsZero() {
			*p = nil
		}
	}
}
