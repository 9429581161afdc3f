package rules

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/rulebook/pkg/pathresolve"
)

// isEmpty reports whether v counts as missing input: nil, a blank string or an empty
// collection.
func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case *pathresolve.Object:
		return t.Len() == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// asString returns the textual form of scalar values. Containers have none.
func asString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	case []byte:
		return string(t), true
	case fmt.Stringer:
		return t.String(), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return fmt.Sprint(v), true
	}
	return "", false
}

// asNumber converts numbers, json.Number and numeric strings to float64.
func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case json.Number:
		return parseFloat(t.String())
	case string:
		return parseFloat(strings.TrimSpace(t))
	case bool:
		return 0, false
	}
	return reflectNumber(v)
}

func reflectNumber(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// measure returns the size used by min, max, between and size: the rune count of strings,
// the length of collections and the value of numbers.
func measure(v any) (float64, bool) {
	switch t := v.(type) {
	case string:
		return float64(utf8.RuneCountInString(t)), true
	case json.Number:
		return parseFloat(t.String())
	case *pathresolve.Object:
		return float64(t.Len()), true
	case bool:
		return 0, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return float64(rv.Len()), true
	}
	return reflectNumber(v)
}

// formatNumber renders a parameter for messages without a trailing ".0".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// joined re-joins parameters split on ",".
func joined(params []string) string {
	return strings.Join(params, ",")
}
