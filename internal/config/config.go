package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	BackendSupabase = "supabase"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

var validate = validator.New()

type Config struct {
	SupabaseURL string `env:"SUPABASE_URL" validate:"omitempty,url"`
	SupabaseKey string `env:"SUPABASE_ANON_KEY"`
	// Key name used by older deployments and scripts.
	LegacyKey string `env:"SUPABASE_KEY"`
	Table     string `env:"SUPABASE_TABLE,default=messages" validate:"required"`

	DatabaseURL string `env:"DATABASE_URL"`
	Backend     string `env:"BOARD_BACKEND,default=supabase" validate:"oneof=supabase postgres memory"`

	Host           string        `env:"HOST"`
	Port           int           `env:"PORT,default=8080" validate:"min=1,max=65535"`
	StaticDir      string        `env:"STATIC_DIR,default=./static"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,default=10s"`
	LogLevel       string        `env:"LOG_LEVEL,default=info"`
}

// Load reads the given dotenv files (".env" when none) and then the environment.
// Missing dotenv files are not an error.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("dotenv: %w", err)
		}
		log.Debug().Msg("No .env file found")
	}

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	if cfg.SupabaseKey == "" {
		cfg.SupabaseKey = cfg.LegacyKey
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Configured reports whether the selected backend has what it needs to connect.
func (c Config) Configured() bool {
	switch c.Backend {
	case BackendSupabase:
		return c.SupabaseURL != "" && c.SupabaseKey != ""
	case BackendPostgres:
		return c.DatabaseURL != ""
	case BackendMemory:
		return true
	}
	return false
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
