// Package config reads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime settings, each overridable by an environment variable.
type Config struct {
	Port            string        `env:"PORT"                envDefault:"8080"`
	StaticDir       string        `env:"STATIC_DIR"          envDefault:"./static"`
	LogLevel        string        `env:"LOG_LEVEL"           envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT"          envDefault:"json"`
	CORSOrigin      string        `env:"CORS_ALLOWED_ORIGIN" envDefault:"*"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"   envDefault:"15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"  envDefault:"15s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"   envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"    envDefault:"10s"`
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads dotenv files (if present) into the process environment and then
// parses Config. Variables already set in the environment win over the files.
func Load(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
