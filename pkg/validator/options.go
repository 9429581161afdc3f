package validator

import (
	"log/slog"
)

// DefaultLanguage is the catalog language used when none is configured.
const DefaultLanguage = "en"

// MessageCatalog supplies message templates for a language: rule templates keyed by rule
// name and attribute templates keyed by attribute pattern.
type MessageCatalog interface {
	Lookup(lang string) (rules map[string]string, attributes map[string]string, err error)
}

// Bootstrap registers a set of predicates on an engine. It runs at construction and on
// every Reset, so it must be idempotent.
type Bootstrap func(e *Engine)

// Option configures an Engine.
type Option func(*Engine)

// WithLanguage selects the catalog language.
func WithLanguage(lang string) Option {
	return func(e *Engine) {
		if lang != "" {
			e.language = lang
		}
	}
}

// WithCatalog sets the message catalog installed at construction and on Reset.
func WithCatalog(c MessageCatalog) Option {
	return func(e *Engine) {
		if c != nil {
			e.catalog = c
		}
	}
}

// WithBootstrap adds rule registration routines run at construction and on Reset.
func WithBootstrap(fns ...Bootstrap) Option {
	return func(e *Engine) {
		for _, fn := range fns {
			if fn != nil {
				e.bootstrap = append(e.bootstrap, fn)
			}
		}
	}
}

// WithPrettifier replaces the transform applied to ":"-prefixed replacement values.
func WithPrettifier(fn func(string) string) Option {
	return func(e *Engine) {
		if fn != nil {
			e.prettify = fn
		}
	}
}

// WithLogger provides a logger. If not specified, a discard logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}
