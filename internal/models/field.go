package models

import (
	"bytes"
	"encoding/json"
)

// Field is an optional JSON field that remembers whether it appeared in
// the request body at all. Plain pointers cannot tell an omitted field
// from an explicit null; partial updates need both: omitted keeps the
// stored value, null clears it.
type Field[T any] struct {
	Set   bool // present in the body
	Valid bool // present and not null
	Value T
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(b, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

// Ptr returns the value for a nullable column: nil when the field held an
// explicit null.
func (f Field[T]) Ptr() *T {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}
