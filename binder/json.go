package binder

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrymomot/rulebook/pkg/pathresolve"
)

// DefaultMaxBodySize limits how much of a request body JSON reads.
const DefaultMaxBodySize int64 = 10 << 20

// JSON decodes an application/json (or any "+json") body of at most DefaultMaxBodySize
// bytes into a data tree. Objects keep their key order and numbers are json.Number, so
// rule messages and numeric rules see exactly what the client sent.
func JSON(r *http.Request) (any, error) {
	return decodeJSON(r, DefaultMaxBodySize)
}

// JSONLimit is JSON with a custom body size limit.
func JSONLimit(limit int64) Source {
	return func(r *http.Request) (any, error) {
		return decodeJSON(r, limit)
	}
}

func decodeJSON(r *http.Request, limit int64) (any, error) {
	mt, err := mediaType(r, "application/json")
	if err != nil {
		return nil, err
	}
	if mt != "application/json" && !strings.HasSuffix(mt, "+json") {
		return nil, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mt)
	}
	if r.Body == nil {
		return nil, fmt.Errorf("%w: empty body", ErrInvalidJSON)
	}

	data, err := pathresolve.DecodeJSON(http.MaxBytesReader(nil, r.Body, limit))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxErr.Limit)
		}
		return nil, errors.Join(ErrInvalidJSON, err)
	}
	return data, nil
}
