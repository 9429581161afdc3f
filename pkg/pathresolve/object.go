package pathresolve

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"

	"github.com/iancoleman/orderedmap"
)

// Object is a string-keyed map that remembers insertion order.
// Wildcard segments enumerate an Object's keys in the order they were first set,
// which plain Go maps cannot offer.
//
// Storage is an orderedmap.OrderedMap; nested objects are held as *Object so a tree can
// be built and mutated in place.
type Object struct {
	m *orderedmap.OrderedMap
}

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{m: orderedmap.New()}
}

// Set stores value under key. Re-setting an existing key keeps its original position.
func (o *Object) Set(key string, value any) *Object {
	if o.m == nil {
		o.m = orderedmap.New()
	}
	o.m.Set(key, value)
	return o
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil || o.m == nil {
		return nil, false
	}
	return o.m.Get(key)
}

// Delete removes key, preserving the order of the remaining keys.
func (o *Object) Delete(key string) {
	if o.m == nil {
		return
	}
	o.m.Delete(key)
}

// Keys returns a copy of the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil || o.m == nil {
		return nil
	}
	return slices.Clone(o.m.Keys())
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil || o.m == nil {
		return 0
	}
	return len(o.m.Keys())
}

// MarshalJSON encodes the object with keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	switch {
	case o == nil:
		return []byte("null"), nil
	case o.m == nil:
		return []byte("{}"), nil
	}
	return o.m.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, keeping key order at every nesting level.
func (o *Object) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return errors.Join(ErrInvalidJSON, err)
	}
	obj, ok := v.(*Object)
	if !ok {
		return ErrNotAnObject
	}
	*o = *obj
	return nil
}
