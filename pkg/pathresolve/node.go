package pathresolve

import (
	"iter"
	"reflect"
	"slices"
	"strconv"

	"github.com/iancoleman/orderedmap"
)

// child returns the value stored under key in the container v.
// Sequences are indexed by canonical decimal keys ("0", "1", ...).
func child(v any, key string) (any, bool) {
	switch c := v.(type) {
	case nil:
		return nil, false
	case *Object:
		return c.Get(key)
	case *orderedmap.OrderedMap:
		if c == nil {
			return nil, false
		}
		return c.Get(key)
	case orderedmap.OrderedMap:
		return c.Get(key)
	case map[string]any:
		val, ok := c[key]
		return val, ok
	case []any:
		i, ok := index(key, len(c))
		if !ok {
			return nil, false
		}
		return c[i], true
	}

	rv := indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Slice, reflect.Array:
		if isBytes(rv) {
			return nil, false
		}
		i, ok := index(key, rv.Len())
		if !ok {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	}
	return nil, false
}

// children enumerates the entries of v in natural order: insertion order for *Object and
// orderedmap.OrderedMap,
// sorted keys for Go maps and index order for sequences. ok is false for scalars.
func children(v any) (seq iter.Seq2[string, any], ok bool) {
	switch c := v.(type) {
	case nil:
		return nil, false
	case *Object:
		return func(yield func(string, any) bool) {
			for _, k := range c.Keys() {
				val, _ := c.Get(k)
				if !yield(k, val) {
					return
				}
			}
		}, true
	case *orderedmap.OrderedMap:
		if c == nil {
			return nil, false
		}
		return ordered(c), true
	case orderedmap.OrderedMap:
		return ordered(&c), true
	case map[string]any:
		return func(yield func(string, any) bool) {
			keys := make([]string, 0, len(c))
			for k := range c {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				if !yield(k, c[k]) {
					return
				}
			}
		}, true
	case []any:
		return func(yield func(string, any) bool) {
			for i, val := range c {
				if !yield(strconv.Itoa(i), val) {
					return
				}
			}
		}, true
	}

	rv := indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		return func(yield func(string, any) bool) {
			keys := rv.MapKeys()
			slices.SortFunc(keys, func(a, b reflect.Value) int {
				switch {
				case a.String() < b.String():
					return -1
				case a.String() > b.String():
					return 1
				}
				return 0
			})
			for _, k := range keys {
				if !yield(k.String(), rv.MapIndex(k).Interface()) {
					return
				}
			}
		}, true
	case reflect.Slice, reflect.Array:
		if isBytes(rv) {
			return nil, false
		}
		return func(yield func(string, any) bool) {
			for i := range rv.Len() {
				if !yield(strconv.Itoa(i), rv.Index(i).Interface()) {
					return
				}
			}
		}, true
	}
	return nil, false
}

// ordered enumerates an orderedmap in key order. Nested objects decoded by
// orderedmap.OrderedMap.UnmarshalJSON are held by value; child handles both forms.
func ordered(m *orderedmap.OrderedMap) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range slices.Clone(m.Keys()) {
			val, _ := m.Get(k)
			if !yield(k, val) {
				return
			}
		}
	}
}

// IsContainer reports whether v is a mapping or a sequence the resolver can descend into.
func IsContainer(v any) bool {
	_, ok := children(v)
	return ok
}

func index(key string, n int) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= n || strconv.Itoa(i) != key {
		return 0, false
	}
	return i, true
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func isBytes(rv reflect.Value) bool {
	return rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8
}
