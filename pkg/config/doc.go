// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: dotenv files are read
// first, the process environment overrides them, and the result is parsed into any struct
// annotated with `env` tags.
//
// # Usage
//
//	type Config struct {
//		Language   string `env:"LANGUAGE" envDefault:"en"`
//		CatalogDir string `env:"CATALOG_DIR"`
//	}
//
//	cfg, err := config.Load[Config](
//		config.WithPrefix("RULEBOOK_"),
//		config.WithEnvFiles(".env"),
//	)
//
// Loading is stateless: every call reads the environment again.
//
// # Error Handling
//
// Parse failures (including missing required variables) wrap ErrParsingConfig.
// Unreadable dotenv files wrap ErrReadingEnvFile; files that do not exist are skipped.
package config
