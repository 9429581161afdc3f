package binder

import (
	"fmt"
	"net/http"
	"net/url"
)

// DefaultMaxMemory is the multipart memory limit used by Form.
const DefaultMaxMemory int64 = 10 << 20

// Form builds a data tree from an application/x-www-form-urlencoded or multipart/form-data
// body. Keys in dotted ("users.0.email") or bracket ("users[0][email]") notation nest;
// see Values for the exact shape. Uploaded files are not part of the tree.
func Form(r *http.Request) (any, error) {
	mt, err := mediaType(r, "application/x-www-form-urlencoded")
	if err != nil {
		return nil, err
	}

	var values url.Values
	switch mt {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		values = r.PostForm
	case "multipart/form-data":
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		values = r.MultipartForm.Value
	default:
		return nil, fmt.Errorf("%w: got %s, expected a form", ErrUnsupportedMediaType, mt)
	}

	tree, err := Values(values)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	return tree, nil
}

// Query builds a data tree from the URL query string, with the same nesting as Form.
func Query(r *http.Request) (any, error) {
	tree, err := Values(r.URL.Query())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	return tree, nil
}

// Path returns a Source reading the named path parameters through extractor, e.g.
// chi.URLParam. Empty parameters are left out.
func Path(extractor func(r *http.Request, name string) string, names ...string) Source {
	return func(r *http.Request) (any, error) {
		if extractor == nil {
			return nil, fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}
		values := make(url.Values, len(names))
		for _, name := range names {
			if v := extractor(r, name); v != "" {
				values.Set(name, v)
			}
		}
		tree, err := Values(values)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPath, err)
		}
		return tree, nil
	}
}
