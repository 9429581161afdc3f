package rulebook

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/rulebook/pkg/config"
	"github.com/dmitrymomot/rulebook/pkg/logger"
	"github.com/dmitrymomot/rulebook/pkg/validator"
)

// EnvPrefix prefixes every variable read by LoadConfig.
const EnvPrefix = "RULEBOOK_"

// ErrInvalidConfig is returned when configuration values cannot be applied.
var ErrInvalidConfig = errors.New("invalid rulebook configuration")

// Config is the environment-driven engine configuration.
type Config struct {
	Language   string `env:"LANGUAGE" envDefault:"en"`
	CatalogDir string `env:"CATALOG_DIR"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"text"`
}

// LoadConfig reads Config from RULEBOOK_* variables, with ".env" and any extra dotenv
// files underneath.
func LoadConfig(envFiles ...string) (Config, error) {
	return config.Load[Config](
		config.WithPrefix(EnvPrefix),
		config.WithEnvFiles(append([]string{".env"}, envFiles...)...),
	)
}

// Options translates the configuration into New options.
func (c Config) Options() ([]Option, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
	}

	format := logger.Format(c.LogFormat)
	if format != logger.FormatText && format != logger.FormatJSON {
		return nil, fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.LogFormat)
	}

	return []Option{
		WithLanguage(c.Language),
		WithCatalogDir(c.CatalogDir),
		WithLogger(logger.New(logger.WithLevel(level), logger.WithFormat(format))),
	}, nil
}

// NewFromEnv builds an engine from the environment. Options passed here apply after the
// environment-derived ones.
func NewFromEnv(ctx context.Context, opts ...Option) (*validator.Engine, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(ctx, cfg, opts...)
}

// NewFromConfig builds an engine from cfg followed by opts.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*validator.Engine, error) {
	base, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(ctx, append(base, opts...)...)
}
