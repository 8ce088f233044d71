// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import "errors"

// ErrInvalidArgument is matched, using errors.Is, by every error Build
// returns because of a malformed endpoint, method or header.
var ErrInvalidArgument = errors.New("invalid argument")

// An ArgumentError describes an argument rejected while building a
// Request.
type ArgumentError struct {
	// Field names the rejected argument, for example "endpoint" or
	// "header".
	Field string
	// Err is the underlying cause.
	Err error
}

func (e *ArgumentError) Error() string {
	return "gqlhttp/request: invalid " + e.Field + ": " + e.Err.Error()
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func argumentError(field string, err error) *ArgumentError {
	return &ArgumentError{Field: field, Err: err}
}
