package binder

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/rulebook/pkg/pathresolve"
)

// Values turns flat request values into a nested tree of *pathresolve.Object.
//
//   - "name=a" becomes {"name": "a"}; repeated keys and "tags[]" become lists.
//   - "user.name" and "user[name]" both become {"user": {"name": ...}}.
//   - An object whose keys are exactly 0..n-1 becomes a list, so "items[1][qty]" and
//     "items.0.qty" yield {"items": [{"qty": ...}, {"qty": ...}]}.
//
// A key used both as a value and as a parent ("a=1&a.b=2") is an ErrConflictingKeys.
func Values(values url.Values) (any, error) {
	root := pathresolve.NewObject()

	for _, key := range slices.Sorted(maps.Keys(values)) {
		segments, list := splitKey(key)
		if len(segments) == 0 {
			continue
		}

		vals := values[key]
		var leaf any
		switch {
		case list || len(vals) > 1:
			items := make([]any, len(vals))
			for i, v := range vals {
				items[i] = v
			}
			leaf = items
		case len(vals) == 1:
			leaf = vals[0]
		default:
			leaf = ""
		}

		if err := insert(root, segments, leaf, key); err != nil {
			return nil, err
		}
	}
	return listify(root), nil
}

// splitKey splits "a.b[c][]" into ["a", "b", "c"] and reports the trailing "[]".
func splitKey(key string) ([]string, bool) {
	list := strings.HasSuffix(key, "[]")
	key = strings.TrimSuffix(key, "[]")
	key = strings.ReplaceAll(key, "]", "")
	key = strings.ReplaceAll(key, "[", pathresolve.Separator)

	var segments []string
	for _, seg := range pathresolve.Split(key) {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments, list
}

func insert(node *pathresolve.Object, segments []string, leaf any, key string) error {
	for i, seg := range segments {
		last := i == len(segments)-1
		existing, ok := node.Get(seg)

		if last {
			if ok {
				if _, isObj := existing.(*pathresolve.Object); isObj {
					return fmt.Errorf("%w: %q", ErrConflictingKeys, key)
				}
			}
			node.Set(seg, leaf)
			return nil
		}

		if !ok {
			next := pathresolve.NewObject()
			node.Set(seg, next)
			node = next
			continue
		}
		next, isObj := existing.(*pathresolve.Object)
		if !isObj {
			return fmt.Errorf("%w: %q", ErrConflictingKeys, key)
		}
		node = next
	}
	return nil
}

// listify converts objects keyed exactly 0..n-1 into lists, bottom-up.
func listify(v any) any {
	obj, ok := v.(*pathresolve.Object)
	if !ok {
		return v
	}

	keys := obj.Keys()
	for _, k := range keys {
		child, _ := obj.Get(k)
		obj.Set(k, listify(child))
	}

	if len(keys) == 0 {
		return obj
	}
	items := make([]any, len(keys))
	seen := make([]bool, len(keys))
	for _, k := range keys {
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 || i >= len(keys) || strconv.Itoa(i) != k || seen[i] {
			return obj
		}
		seen[i] = true
		items[i], _ = obj.Get(k)
	}
	return items
}
