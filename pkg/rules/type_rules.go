package rules

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func isNumeric(v any) bool {
	_, ok := asNumber(v)
	return ok
}

// isInteger accepts integer kinds, whole floats and strings or json.Number holding an
// integer literal.
func isInteger(v any) bool {
	switch t := v.(type) {
	case json.Number:
		_, err := strconv.ParseInt(t.String(), 10, 64)
		return err == nil
	case string:
		_, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		return err == nil
	case bool:
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == math.Trunc(f) && !math.IsInf(f, 0)
	}
	return false
}

// isBoolean accepts true, false, 0, 1 and their string forms.
func isBoolean(v any) bool {
	if _, ok := v.(bool); ok {
		return true
	}
	s, ok := asString(v)
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "false", "0", "1":
		return true
	}
	return false
}
