package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"fc-admin/internal/auth"
	"fc-admin/internal/config"
	"fc-admin/internal/handlers"
	"fc-admin/internal/middleware"
	"fc-admin/internal/repository"
)

// Deps are the services behind the routes. The repositories are nil when
// no database is configured; the data routes are then not mounted.
type Deps struct {
	Auth     *auth.Service
	Admins   repository.AdminRepository
	Users    repository.AppUserRepository
	Missions repository.MissionRepository
	Cards    repository.CardRepository
}

func (d Deps) hasData() bool {
	return d.Admins != nil && d.Users != nil && d.Missions != nil && d.Cards != nil
}

func New(log zerolog.Logger, cfg config.Config, d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
	}))
	r.Use(middleware.WithAuth(log))

	r.Get("/healthz", handlers.Health(d.hasData()))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/api/theme", handlers.Theme())

	ah := handlers.NewAuthHTTP(d.Auth, d.Admins, cfg.CookieSecure)
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", ah.Login())
		r.Post("/logout", ah.Logout())
		r.Get("/me", ah.Me())
	})

	if !d.hasData() {
		log.Warn().Msg("DB_DSN not set, data routes disabled")
		return r
	}

	uh := handlers.NewUserHTTP(d.Users, d.Cards)
	mh := handlers.NewMissionHTTP(d.Missions)
	ch := handlers.NewCardHTTP(d.Cards)

	r.Group(func(r chi.Router) {
		if cfg.RateLimit > 0 {
			r.Use(httprate.LimitByIP(cfg.RateLimit, time.Minute))
		}
		r.Use(middleware.RequireAuth(d.Auth))
		r.Use(middleware.RequireAdmin(d.Admins))

		r.Get("/api/admins/me", ah.AdminProfile())

		r.Route("/api/users", func(r chi.Router) {
			r.Get("/", uh.List())
			r.Get("/{id}", uh.Get())
			r.Get("/{id}/cards", uh.Cards())
		})

		r.Route("/api/missions", func(r chi.Router) {
			r.Get("/", mh.List())
			r.Post("/", mh.Create())
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", mh.Get())
				r.Patch("/status", mh.UpdateStatus())
				r.Get("/users", mh.Assignments())
				r.Post("/users", mh.Assign())
				r.Delete("/users/{userID}", mh.Unassign())
				r.Get("/cards", ch.List())
				r.Post("/cards", ch.Create())
			})
		})

		r.Route("/api/cards/{id}", func(r chi.Router) {
			r.Get("/", ch.Get())
			r.Patch("/active", ch.SetActive())
			r.Get("/users", ch.UserCards())
		})
	})

	return r
}
