package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env holds the process settings read from the environment.
type Env struct {
	ServerAddress  string        `env:"SABER_ADDR" envDefault:":8080"`
	DBPath         string        `env:"SABER_DB" envDefault:"file:saber-duel.db"`
	ConfigPath     string        `env:"SABER_CONFIG"`
	AssetsDir      string        `env:"SABER_ASSETS" envDefault:"./assets/images"`
	SessionSecret  string        `env:"SESSION_SECRET"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	IdleSessionTTL time.Duration `env:"SESSION_IDLE_TTL" envDefault:"2h"`
	SecureCookie   bool          `env:"SESSION_SECURE_COOKIE" envDefault:"false"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	GinMode        string        `env:"GIN_MODE" envDefault:"debug"`
}

// LoadEnv loads variables from the given dotenv files (missing files are
// skipped) and parses the environment into Env. Variables already set in
// the process win over dotenv values.
func LoadEnv(dotenvFiles ...string) (*Env, error) {
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if e.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive")
	}
	if e.IdleSessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_IDLE_TTL must be positive")
	}
	return &e, nil
}
