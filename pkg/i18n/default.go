package i18n

import (
	"context"
	"embed"
)

//go:embed lang/*.yaml
var defaultFS embed.FS

// DefaultAdapter serves the built-in English and Spanish rule messages.
func DefaultAdapter() Adapter {
	return NewFSAdapter(NewYAMLParser(), defaultFS, "lang")
}

// Default loads the built-in catalog. Missing Spanish entries fall back to English.
func Default(ctx context.Context, opts ...Option) (*Catalog, error) {
	opts = append([]Option{WithFallbackLanguage(DefaultLanguage)}, opts...)
	return NewCatalog(ctx, DefaultAdapter(), opts...)
}
