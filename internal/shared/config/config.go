package config

import (
	"log"
	"strings"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config holds application configuration.
type Config struct {
	Port            string `env:"PORT,default=8000" validate:"required,numeric"`
	Env             string `env:"ENV,default=dev"`
	CORSAllowOrigin string `env:"CORS_ALLOW_ORIGINS,default=http://localhost:5173"`
}

// Load reads configuration from environment variables with sensible
// defaults. Invalid configuration is fatal at startup.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		log.Fatalf("load environment: %v", err)
	}
	cfg.Env = normalizeEnv(cfg.Env)
	if err := validate.Struct(cfg); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	return cfg
}

// CORSOrigins returns the configured allow-list as a slice.
func (c Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowOrigin, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
