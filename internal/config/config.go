package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Supabase holds the two public credentials of the hosted project.
// Neither has a default: a deployment without them cannot start.
type Supabase struct {
	URL     string `env:"SUPABASE_URL,required,notEmpty"`
	AnonKey string `env:"SUPABASE_ANON_KEY,required,notEmpty"`
}

type Config struct {
	Env          string `env:"APP_ENV" envDefault:"dev"`
	Port         string `env:"API_PORT" envDefault:"8080"`
	DBURL        string `env:"DB_DSN"`
	Origin       string `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"` // CORS
	CookieSecure bool   `env:"COOKIE_SECURE" envDefault:"false"`
	RateLimit    int    `env:"API_RATE_LIMIT" envDefault:"200"` // per IP per minute on data routes, 0 disables

	Supabase Supabase
}

// dotenv files are optional; values already set in the environment win.
var dotenvFiles = []string{".env.local", ".env"}

func loadDotenv() {
	for _, f := range dotenvFiles {
		_ = godotenv.Load(f)
	}
}

func Load() (Config, error) {
	loadDotenv()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadSupabase reads only the backend credentials.
func LoadSupabase() (Supabase, error) {
	loadDotenv()
	var s Supabase
	if err := env.Parse(&s); err != nil {
		return Supabase{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
