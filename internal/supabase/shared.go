package supabase

import (
	"fmt"
	"sync"

	"fc-admin/internal/config"
)

var (
	shared     *Client
	sharedErr  error
	sharedOnce sync.Once
)

// FromEnv builds a client from SUPABASE_URL and SUPABASE_ANON_KEY.
func FromEnv(opts ...Option) (*Client, error) {
	s, err := config.LoadSupabase()
	if err != nil {
		return nil, fmt.Errorf("supabase config: %w", err)
	}
	return New(s.URL, s.AnonKey, opts...)
}

// Shared returns the process-wide client, building it on first use.
// A configuration error is sticky: later calls return the same error.
func Shared() (*Client, error) {
	sharedOnce.Do(func() {
		shared, sharedErr = FromEnv()
	})
	return shared, sharedErr
}

// MustShared is Shared for callers that cannot proceed without a backend.
func MustShared() *Client {
	c, err := Shared()
	if err != nil {
		panic(err)
	}
	return c
}
