// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package optional contains a presence-aware value wrapper.
//
// A Value distinguishes a field that was never given (None) from a field
// that was given, even if the given value is the zero value or nil. When
// a Value is used as a struct field tagged with the omitzero JSON option,
// a None value is left out of the encoded object while Some(nil) is
// encoded as null.
package optional

import (
	"encoding/json"
	"errors"
)

// Value is an optional value. The zero value is None.
type Value[T any] struct {
	present bool
	value   T
}

// None returns an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Some returns a Value holding v. The Value is present even if v is the
// zero value of T or a nil pointer, map or slice.
func Some[T any](v T) Value[T] {
	return Value[T]{present: true, value: v}
}

// IsNone returns whether the Value is empty.
func (v Value[T]) IsNone() bool {
	return !v.present
}

// IsZero reports whether the Value is empty. It exists so that the
// omitzero JSON option leaves None values out.
func (v Value[T]) IsZero() bool {
	return !v.present
}

// Unwrap returns the underlying value or panics if the Value is empty.
func (v Value[T]) Unwrap() T {
	if !v.present {
		panic(errors.New("is none"))
	}
	return v.value
}

// UnwrapOr returns the underlying value or fallback if the Value is empty.
func (v Value[T]) UnwrapOr(fallback T) T {
	if !v.present {
		return fallback
	}
	return v.value
}

// MarshalJSON implements json.Marshaler. An empty Value encodes as null.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.present {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}

// UnmarshalJSON implements json.Unmarshaler. Any successfully decoded
// input, including null, makes the Value present; null leaves the zero
// value of T inside it.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	v.present = true
	v.value = value
	return nil
}
