package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fc-admin/internal/auth"
	"fc-admin/internal/config"
	"fc-admin/internal/database"
	"fc-admin/internal/repository/postgres"
	"fc-admin/internal/router"
	"fc-admin/internal/supabase"
	"fc-admin/pkg/logger"
)

func main() {
	// config + logger
	cfg, err := config.Load()
	l := logger.New(cfg.Env)
	if err != nil {
		l.Fatal().Err(err).Msg("config")
	}

	// backend client; sessions travel in the request context, never on the client
	sb, err := supabase.New(cfg.Supabase.URL, cfg.Supabase.AnonKey,
		supabase.WithHTTPClient(&http.Client{Timeout: 15 * time.Second}),
		supabase.WithPersistSession(false))
	if err != nil {
		l.Fatal().Err(err).Msg("supabase client")
	}
	deps := router.Deps{Auth: auth.New(sb)}

	// db (optional)
	pool, err := database.Open(context.Background(), cfg)
	switch {
	case errors.Is(err, database.ErrNoDSN):
	case err != nil:
		l.Fatal().Err(err).Msg("db connect failed")
	default:
		defer pool.Close()
		deps.Admins = postgres.NewAdminRepo(pool)
		deps.Users = postgres.NewAppUserRepo(pool)
		deps.Missions = postgres.NewMissionRepo(pool)
		deps.Cards = postgres.NewCardRepo(pool)
	}

	// http
	r := router.New(l, cfg, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		l.Info().Str("addr", srv.Addr).Str("supabase", sb.URL()).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	l.Info().Msg("shutdown complete")
}
