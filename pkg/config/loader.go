package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type options struct {
	prefix      string
	files       []string
	environment map[string]string
}

// Option configures Load.
type Option func(*options)

// WithPrefix prepends prefix to every variable name, e.g. "RULEBOOK_".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvFiles reads the given dotenv files before parsing. Missing files are skipped;
// variables already set in the process environment win over file values.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.files = append(o.files, paths...)
	}
}

// WithEnvironment parses from the given variables instead of the process environment.
// Dotenv files still apply underneath.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) {
		o.environment = vars
	}
}

// Load parses environment variables into a new T using `env` struct tags.
//
// Example:
//
//	type Config struct {
//		Language string `env:"LANGUAGE" envDefault:"en"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
//	}
//
//	cfg, err := config.Load[Config](config.WithPrefix("RULEBOOK_"))
func Load[T any](opts ...Option) (T, error) {
	var cfg T

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	fileVars, err := readEnvFiles(o.files)
	if err != nil {
		return cfg, err
	}

	envOpts := env.Options{Prefix: o.prefix}
	switch {
	case o.environment != nil:
		vars := fileVars
		maps.Copy(vars, o.environment)
		envOpts.Environment = vars
	case len(fileVars) > 0:
		vars := fileVars
		maps.Copy(vars, env.ToMap(os.Environ()))
		envOpts.Environment = vars
	}

	if err := env.ParseWithOptions(&cfg, envOpts); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

// readEnvFiles merges the given dotenv files; later files override earlier ones.
func readEnvFiles(paths []string) (map[string]string, error) {
	vars := make(map[string]string)
	for _, path := range paths {
		fileVars, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrReadingEnvFile, path, err)
		}
		maps.Copy(vars, fileVars)
	}
	return vars, nil
}
