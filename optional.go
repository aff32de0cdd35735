package fundcalc

import (
	"bytes"
	"encoding/json"
)

// Optional holds a value that may be unset. Unset is distinct from the zero
// value: a 0 fixed charge is a valid input, a blank one is not.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a set optional.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, set: true} }

// None returns an unset optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is set.
func (o Optional[T]) Get() (T, bool) { return o.value, o.set }

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool { return o.set }

// OrElse returns the value if set, or def otherwise.
func (o Optional[T]) OrElse(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// Render formats the value with format, or returns placeholder when unset.
func (o Optional[T]) Render(format func(T) string, placeholder string) string {
	if !o.set {
		return placeholder
	}
	return format(o.value)
}

// MarshalJSON writes null for unset values.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON treats null as unset.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
