package types

import (
	"bytes"
	"encoding/json"
)

type fieldState uint8

const (
	stateUnchanged fieldState = iota
	stateSet
	stateCleared
)

// Field is an update value that distinguishes "leave unchanged", "set to v"
// and "clear". Its zero value is Unchanged, so an absent JSON key decodes to
// Unchanged while an explicit null decodes to Cleared.
type Field[T any] struct {
	state fieldState
	value T
}

func Unchanged[T any]() Field[T] { return Field[T]{} }

func Set[T any](v T) Field[T] { return Field[T]{state: stateSet, value: v} }

func Cleared[T any]() Field[T] { return Field[T]{state: stateCleared} }

func (f Field[T]) IsUnchanged() bool { return f.state == stateUnchanged }

func (f Field[T]) IsSet() bool { return f.state == stateSet }

func (f Field[T]) IsCleared() bool { return f.state == stateCleared }

// Present reports whether the field was supplied at all, as a value or as null.
func (f Field[T]) Present() bool { return f.state != stateUnchanged }

// Value returns the set value. It is the zero value unless IsSet.
func (f Field[T]) Value() T { return f.value }

// Ptr returns a pointer to the set value, or nil when the field is cleared or unchanged.
func (f Field[T]) Ptr() *T {
	if f.state != stateSet {
		return nil
	}
	v := f.value
	return &v
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.state, f.value = stateCleared, zero
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.state, f.value = stateSet, v
	return nil
}

// MarshalJSON renders Set as the value and everything else as null.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.state != stateSet {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
