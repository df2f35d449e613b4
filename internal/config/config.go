package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"8081"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Backend struct {
		BaseURL        string `env:"BASE_URL" envDefault:"http://localhost:8080/api"`
		RequestTimeout int    `env:"REQUEST_TIMEOUT" envDefault:"15"`
	} `envPrefix:"BACKEND_"`
	Credentials struct {
		// Store selects where the bearer token is persisted across restarts:
		// "file" for the default single-host setup, "redis" for kiosk fleets
		// that keep credentials on a shared host.
		Store    string `env:"STORE" envDefault:"file"`
		FilePath string `env:"FILE_PATH" envDefault:".portal-credentials.json"`
		Redis    struct {
			Host             string `env:"HOST" envDefault:"localhost"`
			Port             int    `env:"PORT" envDefault:"6379"`
			Password         string `env:"PASSWORD"`
			KeyPrefix        string `env:"KEY_PREFIX" envDefault:"bpohire_portal"`
			OperationTimeout int    `env:"OPERATION_TIMEOUT" envDefault:"5"`
		} `envPrefix:"REDIS_"`
	} `envPrefix:"CREDENTIALS_"`
	DevServer struct {
		Port      string `env:"PORT" envDefault:"8080"`
		JWTSecret string `env:"JWT_SECRET" envDefault:"dev-only-secret"`
		// Token lifetime in seconds.
		TokenExpiration int `env:"TOKEN_EXPIRATION" envDefault:"86400"`
	} `envPrefix:"DEVSERVER_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// Only return the first error to keep the log readable.
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
