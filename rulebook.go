package rulebook

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/rulebook/pkg/i18n"
	"github.com/dmitrymomot/rulebook/pkg/logger"
	"github.com/dmitrymomot/rulebook/pkg/rules"
	"github.com/dmitrymomot/rulebook/pkg/validator"
)

type options struct {
	language   string
	catalogDir string
	adapters   []i18n.Adapter
	bootstrap  []validator.Bootstrap
	prettify   func(string) string
	logger     *slog.Logger
}

// Option configures New.
type Option func(*options)

// WithLanguage selects the message language. Defaults to "en".
func WithLanguage(lang string) Option {
	return func(o *options) {
		if lang != "" {
			o.language = lang
		}
	}
}

// WithCatalogDir merges every YAML and JSON catalog in dir over the built-in messages.
func WithCatalogDir(dir string) Option {
	return func(o *options) {
		o.catalogDir = dir
	}
}

// WithCatalog merges the messages loaded by adapter over the built-in ones.
// Adapters apply in the order given, after WithCatalogDir.
func WithCatalog(adapter i18n.Adapter) Option {
	return func(o *options) {
		if adapter != nil {
			o.adapters = append(o.adapters, adapter)
		}
	}
}

// WithRules registers additional predicates after the built-in ones. They run again on
// every Engine.Reset.
func WithRules(fns ...validator.Bootstrap) Option {
	return func(o *options) {
		o.bootstrap = append(o.bootstrap, fns...)
	}
}

// WithPrettifier replaces the attribute prettifier.
func WithPrettifier(fn func(string) string) Option {
	return func(o *options) {
		o.prettify = fn
	}
}

// WithLogger provides a logger. If not specified, a discard logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New builds an engine with the built-in rules and messages. Catalogs added with
// WithCatalogDir or WithCatalog override built-in entries per language.
func New(ctx context.Context, opts ...Option) (*validator.Engine, error) {
	o := &options{
		language: validator.DefaultLanguage,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}

	catalog, err := loadCatalog(ctx, o)
	if err != nil {
		return nil, err
	}

	return validator.New(
		validator.WithLanguage(o.language),
		validator.WithCatalog(catalog),
		validator.WithBootstrap(append([]validator.Bootstrap{rules.Register}, o.bootstrap...)...),
		validator.WithPrettifier(o.prettify),
		validator.WithLogger(o.logger),
	)
}

func loadCatalog(ctx context.Context, o *options) (*i18n.Catalog, error) {
	catalog, err := i18n.Default(ctx, i18n.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}

	adapters := o.adapters
	if o.catalogDir != "" {
		adapters = append([]i18n.Adapter{i18n.NewDirectoryAdapter(nil, o.catalogDir)}, adapters...)
	}
	if len(adapters) == 0 {
		return catalog, nil
	}

	extra, err := i18n.NewCatalog(ctx, i18n.ChainAdapter(adapters), i18n.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}
	return catalog.Merge(extra), nil
}

// Check clears e, validates data against rs and returns the rendered violations as a
// ValidationError. It returns nil when the data is valid, and a configuration error
// (such as a *validator.MissingTemplateError) when the report cannot be rendered.
func Check(e *validator.Engine, data any, rs validator.RuleSet) error {
	e.Clear()
	if !e.Validate(data, rs) {
		return nil
	}

	report, err := e.Report()
	if err != nil {
		return err
	}
	return FromReport(report)
}

// IsValidationError reports whether err carries a ValidationError and returns it.
func IsValidationError(err error) (ValidationError, bool) {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
