package pathresolve

import "errors"

var (
	// ErrInvalidJSON is returned when a document cannot be decoded into a data tree.
	ErrInvalidJSON = errors.New("invalid JSON document")

	// ErrNotAnObject is returned when an Object is decoded from a non-object JSON value.
	ErrNotAnObject = errors.New("JSON value is not an object")
)
