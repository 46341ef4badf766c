package dto

import (
	"bytes"
	"encoding/json"
)

// Field is one property of a partial update. A field absent from the request body
// is Unchanged; a present one is SetTo its value. A JSON null sets the zero value,
// which for clearable fields means "clear".
type Field[T any] struct {
	set   bool
	value T
}

func Unchanged[T any]() Field[T] {
	return Field[T]{}
}

func SetTo[T any](v T) Field[T] {
	return Field[T]{set: true, value: v}
}

func (f Field[T]) IsSet() bool { return f.set }

// Get returns the value and whether it was set.
func (f Field[T]) Get() (T, bool) { return f.value, f.set }

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.value = zero
		return nil
	}
	return json.Unmarshal(data, &f.value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
