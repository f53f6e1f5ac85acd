package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://demo.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "http://localhost:3000", cfg.Origin)
	require.False(t, cfg.CookieSecure)
	require.Equal(t, 200, cfg.RateLimit)
	require.Equal(t, "https://demo.supabase.co", cfg.Supabase.URL)
	require.Equal(t, "anon", cfg.Supabase.AnonKey)
}

func TestLoadMissingSupabase(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://demo.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "")

	_, err := Load()
	require.Error(t, err)

	_, err = LoadSupabase()
	require.Error(t, err)
}

func TestLoadSupabase(t *testing.T) {
	t.Setenv("SUPABASE_URL", "http://127.0.0.1:54321")
	t.Setenv("SUPABASE_ANON_KEY", "key")

	s, err := LoadSupabase()
	require.NoError(t, err)
	require.Equal(t, Supabase{URL: "http://127.0.0.1:54321", AnonKey: "key"}, s)
}
