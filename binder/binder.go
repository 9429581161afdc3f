package binder

import (
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/dmitrymomot/rulebook/pkg/pathresolve"
)

// Source extracts a data tree from a request.
type Source func(r *http.Request) (any, error)

// Request reads every source and merges the trees; later sources win on conflicts.
//
//	data, err := binder.Request(r, binder.JSON, binder.Query, binder.Path(chi.URLParam, "id"))
func Request(r *http.Request, sources ...Source) (any, error) {
	trees := make([]any, 0, len(sources))
	for _, src := range sources {
		if src == nil {
			continue
		}
		tree, err := src(r)
		if err != nil {
			return nil, err
		}
		trees = append(trees, tree)
	}
	return Merge(trees...), nil
}

// Merge deep-merges object trees left to right. Keys of later objects override earlier
// ones; nested objects are merged recursively. Non-object trees replace the result.
func Merge(trees ...any) any {
	var result any
	for _, tree := range trees {
		result = mergeValue(result, tree)
	}
	if result == nil {
		return pathresolve.NewObject()
	}
	return result
}

func mergeValue(dst, src any) any {
	d, dok := dst.(*pathresolve.Object)
	s, sok := src.(*pathresolve.Object)
	if !dok || !sok {
		if src == nil {
			return dst
		}
		return src
	}

	out := pathresolve.NewObject()
	for _, k := range d.Keys() {
		v, _ := d.Get(k)
		out.Set(k, v)
	}
	for _, k := range s.Keys() {
		sv, _ := s.Get(k)
		dv, _ := out.Get(k)
		out.Set(k, mergeValue(dv, sv))
	}
	return out
}

// mediaType returns the request media type or an error when it is missing.
func mediaType(r *http.Request, expected string) (string, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return "", fmt.Errorf("%w: expected %s", ErrMissingContentType, expected)
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	return strings.ToLower(mt), nil
}
