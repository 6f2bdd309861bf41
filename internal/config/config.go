package config

import (
	"errors"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

// Development-only secrets. NewConfig refuses them outside local.
const (
	defaultSessionSecret = "change-me-session-secret-32bytes"
	defaultCSRFKey       = "change-me-csrf-key-of-32-bytes!!"
)

type Config struct {
	App struct {
		Version string      `env:"APP_VERSION" envDefault:"local"`
		Env     Environment `env:"APP_ENV" envDefault:"local"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"3000"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Backend struct {
		URL     string        `env:"BACKEND_API_URL" envDefault:"http://localhost:8080"`
		Timeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`
	}

	Session struct {
		Secret     string `env:"SESSION_SECRET" envDefault:"change-me-session-secret-32bytes"`
		CookieName string `env:"SESSION_COOKIE" envDefault:"hospital-session"`
		MaxAge     int    `env:"SESSION_MAX_AGE" envDefault:"86400"`
	}

	CSRF struct {
		Key string `env:"CSRF_KEY" envDefault:"change-me-csrf-key-of-32-bytes!!"`
	}

	CookieSecure bool `env:"COOKIE_SECURE"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))
	cfg.Backend.URL = strings.TrimRight(cfg.Backend.URL, "/")

	// gorilla/csrf only accepts a 32 byte authentication key
	if len(cfg.CSRF.Key) != 32 {
		return nil, errors.New("CSRF_KEY must be exactly 32 bytes")
	}

	if !cfg.IsLocal() {
		if cfg.Session.Secret == defaultSessionSecret {
			return nil, errors.New("SESSION_SECRET must be set outside local")
		}
		if cfg.CSRF.Key == defaultCSRFKey {
			return nil, errors.New("CSRF_KEY must be set outside local")
		}
	}

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) Addr() string {
	return c.HTTP.Host + ":" + c.HTTP.Port
}
