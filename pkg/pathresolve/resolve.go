package pathresolve

import (
	"iter"
	"regexp"
	"slices"
	"strings"
)

const (
	// Wildcard is the pattern segment matching every key or index at its depth.
	Wildcard = "*"

	// Separator delimits pattern and path segments.
	Separator = "."

	// DefaultCacheSize is the number of compiled patterns kept by the package-level resolver.
	DefaultCacheSize = 256
)

var defaultResolver = NewResolver(DefaultCacheSize)

// Resolver answers path queries over nested data. It is stateless apart from a bounded
// cache of compiled ResolveFirst patterns and is safe for concurrent use.
type Resolver struct {
	patterns *patternCache
}

// NewResolver creates a Resolver caching up to capacity compiled patterns.
// A non-positive capacity disables caching.
func NewResolver(capacity int) *Resolver {
	return &Resolver{patterns: newPatternCache(capacity)}
}

// ResolveAll yields every (concrete path, value) pair that pattern denotes in data
// using the package-level resolver. See Resolver.ResolveAll.
func ResolveAll(data any, pattern string) iter.Seq2[string, any] {
	return defaultResolver.ResolveAll(data, pattern)
}

// ResolveFirst returns the first flattened leaf whose path matches pattern
// using the package-level resolver. See Resolver.ResolveFirst.
func ResolveFirst(data any, pattern string) (any, bool) {
	return defaultResolver.ResolveFirst(data, pattern)
}

// ResolveAll yields every (concrete path, value) pair that pattern denotes in data.
//
// A pattern without wildcards yields at most one pair and nothing at all when a segment
// is absent. Each wildcard expands to every key or index present at its depth, depth-first
// in segment order. Branches whose wildcard level is missing are dropped, while a literal
// tail after the last wildcard is always yielded, with a nil value when absent.
//
// The sequence is lazy and restartable. Data must be acyclic.
func (r *Resolver) ResolveAll(data any, pattern string) iter.Seq2[string, any] {
	segments := Split(pattern)
	return func(yield func(string, any) bool) {
		if !slices.Contains(segments, Wildcard) {
			if v, ok := lookup(data, segments); ok {
				yield(pattern, v)
			}
			return
		}
		expand(data, nil, segments, yield)
	}
}

// expand reports false once the consumer has stopped the iteration.
func expand(node any, prefix, rest []string, yield func(string, any) bool) bool {
	w := slices.Index(rest, Wildcard)
	if w < 0 {
		v, _ := lookup(node, rest)
		return yield(Join(slices.Concat(prefix, rest)...), v)
	}

	container, ok := lookup(node, rest[:w])
	if !ok {
		return true
	}
	seq, ok := children(container)
	if !ok {
		return true
	}

	base := slices.Concat(prefix, rest[:w])
	for key, val := range seq {
		path := slices.Concat(base, []string{key})
		if w == len(rest)-1 {
			if !yield(Join(path...), val) {
				return false
			}
			continue
		}
		if !expand(val, path, rest[w+1:], yield) {
			return false
		}
	}
	return true
}

// ResolveFirst flattens data into (dotted path, leaf) entries and returns the value of the
// first entry whose whole path matches pattern. Here a wildcard segment only matches
// numeric segments (sequence indexes), unlike ResolveAll where it matches any key.
// Only leaves are considered: a pattern addressing a mapping or sequence matches nothing.
func (r *Resolver) ResolveFirst(data any, pattern string) (any, bool) {
	re := r.compile(pattern)
	for e := range walk(data) {
		if re.MatchString(e.Path) {
			return e.Value, true
		}
	}
	return nil, false
}

func (r *Resolver) compile(pattern string) *regexp.Regexp {
	if re, ok := r.patterns.get(pattern); ok {
		return re
	}
	re := regexp.MustCompile(PatternExpr(pattern))
	r.patterns.put(pattern, re)
	return re
}

// PatternExpr returns the anchored regular expression ResolveFirst uses for pattern.
func PatternExpr(pattern string) string {
	segments := Split(pattern)
	parts := make([]string, len(segments))
	for i, s := range segments {
		if s == Wildcard {
			parts[i] = `\d+`
			continue
		}
		parts[i] = regexp.QuoteMeta(s)
	}
	return "^" + strings.Join(parts, `\.`) + "$"
}

// HasWildcard reports whether any segment of pattern is the wildcard.
func HasWildcard(pattern string) bool {
	return slices.Contains(Split(pattern), Wildcard)
}

// Split breaks a pattern or path into its segments.
func Split(pattern string) []string {
	return strings.Split(pattern, Separator)
}

// Join builds a dotted path from segments.
func Join(segments ...string) string {
	return strings.Join(segments, Separator)
}

func lookup(node any, segments []string) (any, bool) {
	current := node
	for _, s := range segments {
		next, ok := child(current, s)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}
