// Package auth exposes the admin sign-in, sign-out and current-user calls.
// Every function forwards to the backend client and returns its result as is.
package auth

import (
	"context"
	"errors"

	"fc-admin/internal/supabase"
)

// Backend is the part of *supabase.Client the façade forwards to.
type Backend interface {
	SignInWithPassword(ctx context.Context, email, password string) (*supabase.AuthResponse, error)
	SignOut(ctx context.Context) error
	GetUser(ctx context.Context) (*supabase.User, error)
}

type Service struct {
	backend Backend
}

func New(b Backend) *Service { return &Service{backend: b} }

func (s *Service) SignInAdmin(ctx context.Context, email, password string) (*supabase.AuthResponse, error) {
	return s.backend.SignInWithPassword(ctx, email, password)
}

func (s *Service) SignOutAdmin(ctx context.Context) error {
	return s.backend.SignOut(ctx)
}

// GetCurrentUser returns nil, nil when nobody is signed in.
func (s *Service) GetCurrentUser(ctx context.Context) (*supabase.User, error) {
	u, err := s.backend.GetUser(ctx)
	if errors.Is(err, supabase.ErrSessionMissing) {
		return nil, nil
	}
	return u, err
}

// SignInAdmin signs in through the process-wide client.
// It panics if SUPABASE_URL or SUPABASE_ANON_KEY is missing.
func SignInAdmin(ctx context.Context, email, password string) (*supabase.AuthResponse, error) {
	return New(supabase.MustShared()).SignInAdmin(ctx, email, password)
}

func SignOutAdmin(ctx context.Context) error {
	return New(supabase.MustShared()).SignOutAdmin(ctx)
}

func GetCurrentUser(ctx context.Context) (*supabase.User, error) {
	return New(supabase.MustShared()).GetCurrentUser(ctx)
}
