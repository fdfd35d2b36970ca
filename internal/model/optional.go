// internal/model/optional.go
package model

import "encoding/json"

// Optional tracks whether a field appeared in the request body, so an
// explicit JSON null is distinguishable from an omitted field. Set is true
// whenever the key was present; Value is nil when the caller sent null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// UnmarshalJSON runs only for keys present in the body, including keys
// set to null; omitted keys leave the zero value.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// Some wraps a value as a supplied field.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null marks a field as supplied with an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}
