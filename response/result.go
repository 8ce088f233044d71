// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package response

import (
	"encoding/json"
	"errors"

	"github.com/graphqland/gqlhttp/optional"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// An ExecutionResult is the standard GraphQL response envelope.
//
// Data and Extensions are present whenever the key appears in the
// response body, including when its value is null.
//
// Errors holds the "errors" entry when it is a list of well-formed
// GraphQL errors. Otherwise Errors is nil and ErrorsRaw keeps the entry
// exactly as received.
type ExecutionResult[Data, Extensions any] struct {
	Data       optional.Value[Data]
	Errors     gqlerror.List
	ErrorsRaw  json.RawMessage
	Extensions optional.Value[Extensions]
}

// UnmarshalJSON implements json.Unmarshaler. It never rejects well-formed
// JSON because of the shape of the envelope: a value that is not an
// object decodes to an empty ExecutionResult, and off-spec errors end up
// in ErrorsRaw. Only data and extensions that do not fit the Data and
// Extensions types fail, with *json.UnmarshalTypeError.
func (r *ExecutionResult[Data, Extensions]) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			*r = ExecutionResult[Data, Extensions]{}
			return nil
		}
		return err
	}

	var result ExecutionResult[Data, Extensions]
	if raw, ok := fields["data"]; ok {
		if err := json.Unmarshal(raw, &result.Data); err != nil {
			return err
		}
	}
	if raw, ok := fields["errors"]; ok {
		var list gqlerror.List
		if err := json.Unmarshal(raw, &list); err != nil {
			result.ErrorsRaw = raw
		} else {
			result.Errors = list
		}
	}
	if raw, ok := fields["extensions"]; ok {
		if err := json.Unmarshal(raw, &result.Extensions); err != nil {
			return err
		}
	}
	*r = result
	return nil
}

// MarshalJSON implements json.Marshaler. Absent members are omitted, and
// ErrorsRaw, when set, is written back as the "errors" member.
func (r ExecutionResult[Data, Extensions]) MarshalJSON() ([]byte, error) {
	var errs any
	if len(r.ErrorsRaw) > 0 {
		errs = r.ErrorsRaw
	} else if len(r.Errors) > 0 {
		errs = r.Errors
	}
	return json.Marshal(struct {
		Data       optional.Value[Data]       `json:"data,omitzero"`
		Errors     any                        `json:"errors,omitempty"`
		Extensions optional.Value[Extensions] `json:"extensions,omitzero"`
	}{r.Data, errs, r.Extensions})
}

// Decode parses body as a GraphQL response envelope. Malformed JSON
// fails with *json.SyntaxError. Data or extensions that do not fit the
// caller's Data or Extensions type fail with *json.UnmarshalTypeError.
// Neither is wrapped. Any other well-formed body decodes.
func Decode[Data, Extensions any](body []byte) (*ExecutionResult[Data, Extensions], error) {
	var result ExecutionResult[Data, Extensions]
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
