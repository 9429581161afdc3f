package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/rulebook/pkg/logger"
)

const (
	// DefaultLanguage is used when no language is requested.
	DefaultLanguage = "en"

	// SectionRules holds rule name -> template entries.
	SectionRules = "rules"
	// SectionCustom holds attribute path or pattern -> template entries.
	SectionCustom = "custom"
)

// Catalog is a loaded, read-only set of validation messages keyed by language.
// It is safe for concurrent use once constructed.
type Catalog struct {
	rules      map[string]map[string]string
	attributes map[string]map[string]string
	fallback   string
	logger     *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used while loading.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithFallbackLanguage fills entries missing from a language with those of lang.
func WithFallbackLanguage(lang string) Option {
	return func(c *Catalog) {
		c.fallback = lang
	}
}

// NewCatalog loads the adapter's data into a Catalog.
func NewCatalog(ctx context.Context, adapter Adapter, opts ...Option) (*Catalog, error) {
	if adapter == nil {
		return nil, fmt.Errorf("%w: adapter is nil", ErrInvalidCatalog)
	}

	c := &Catalog{
		rules:      make(map[string]map[string]string),
		attributes: make(map[string]map[string]string),
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	data, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	for lang, sections := range data {
		rules := make(map[string]string)
		attributes := make(map[string]string)
		for name, val := range sections {
			entries, ok := val.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: %s.%s: expected mapping, got %T", ErrInvalidCatalog, lang, name, val)
			}
			switch name {
			case SectionRules:
				flattenInto(rules, "", entries)
			case SectionCustom:
				flattenInto(attributes, "", entries)
			default:
				c.logger.WarnContext(ctx, "ignoring unknown catalog section",
					logger.Language(lang),
					slog.String("section", name),
				)
			}
		}
		c.rules[lang] = rules
		c.attributes[lang] = attributes
	}

	if c.fallback != "" && !c.HasLanguage(c.fallback) {
		return nil, &ErrLanguageNotSupported{Lang: c.fallback}
	}

	c.logger.InfoContext(ctx, "message catalog loaded", slog.Any("languages", c.Languages()))
	return c, nil
}

// Lookup returns copies of the rule and attribute templates of lang.
func (c *Catalog) Lookup(lang string) (rules, attributes map[string]string, err error) {
	r, ok := c.rules[lang]
	if !ok {
		return nil, nil, &ErrLanguageNotSupported{Lang: lang}
	}
	a := c.attributes[lang]

	rules, attributes = maps.Clone(r), maps.Clone(a)
	if c.fallback != "" && c.fallback != lang {
		fillMissing(rules, c.rules[c.fallback])
		fillMissing(attributes, c.attributes[c.fallback])
	}
	return rules, attributes, nil
}

// Languages returns the catalog languages, sorted.
func (c *Catalog) Languages() []string {
	return slices.Sorted(maps.Keys(c.rules))
}

// HasLanguage reports whether lang is present in the catalog.
func (c *Catalog) HasLanguage(lang string) bool {
	_, ok := c.rules[lang]
	return ok
}

// Negotiate picks the catalog language that best matches an Accept-Language header value.
// It returns def when nothing matches or the header is malformed.
func (c *Catalog) Negotiate(acceptLanguage, def string) string {
	supported := c.Languages()
	if len(supported) == 0 || strings.TrimSpace(acceptLanguage) == "" {
		return def
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return def
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, lang := range supported {
		tags = append(tags, language.Make(lang))
	}
	_, idx, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return def
	}
	return supported[idx]
}

// flattenInto joins nested keys with dots so that
//
//	users: {"*": {email: "..."}}
//
// is stored under "users.*.email".
func flattenInto(dst map[string]string, prefix string, entries map[string]any) {
	for k, v := range entries {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch t := v.(type) {
		case map[string]any:
			flattenInto(dst, key, t)
		case string:
			dst[key] = t
		case nil:
		default:
			dst[key] = fmt.Sprint(t)
		}
	}
}

func fillMissing(dst, src map[string]string) {
	for k, v := range src {
		if _, ok := dst[k]; !ok {
			dst[k] = v
		}
	}
}

// Merge returns a new catalog holding the entries of c overridden by those of other.
// The fallback language and logger of c are kept.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	merged := &Catalog{
		rules:      cloneNested(c.rules),
		attributes: cloneNested(c.attributes),
		fallback:   c.fallback,
		logger:     c.logger,
	}
	if other == nil {
		return merged
	}
	for lang, r := range other.rules {
		if merged.rules[lang] == nil {
			merged.rules[lang] = make(map[string]string)
			merged.attributes[lang] = make(map[string]string)
		}
		maps.Copy(merged.rules[lang], r)
		maps.Copy(merged.attributes[lang], other.attributes[lang])
	}
	return merged
}

func cloneNested(src map[string]map[string]string) map[string]map[string]string {
	dst := make(map[string]map[string]string, len(src))
	for k, v := range src {
		dst[k] = maps.Clone(v)
	}
	return dst
}
