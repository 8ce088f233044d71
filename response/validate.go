// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package response

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/graphqland/gqlhttp/request"
)

var supportedMediaTypes = []string{
	"application/graphql-response+json",
	"application/json",
}

// Validate checks resp, the response received for req, then reads and
// decodes its body. The body of resp is always closed, and is never
// read unless the status and Content-Type checks pass.
//
// The error is a *ClientError if resp was rejected, a *json.SyntaxError
// if the body is not well-formed JSON, or whatever error reading the
// body produced.
func Validate[Data, Extensions any](req *request.Request, resp *http.Response) (*ExecutionResult[Data, Extensions], error) {
	if resp == nil {
		return nil, errors.New("gqlhttp/response: nil response")
	}
	if resp.Body != nil {
		defer resp.Body.Close()
	}

	if err := check(req, resp, nil); err != nil {
		return nil, err
	}

	var body []byte
	if resp.Body != nil {
		var err error
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
	}

	return Decode[Data, Extensions](body)
}

// ValidateBody is like Validate for a response whose body has already
// been read into body. The Body field of resp is ignored.
func ValidateBody[Data, Extensions any](req *request.Request, resp *http.Response, body []byte) (*ExecutionResult[Data, Extensions], error) {
	if resp == nil {
		return nil, errors.New("gqlhttp/response: nil response")
	}
	if err := check(req, resp, body); err != nil {
		return nil, err
	}
	return Decode[Data, Extensions](body)
}

// Check applies the status and Content-Type checks to resp without
// touching its body. It returns nil or a *ClientError.
func Check(req *request.Request, resp *http.Response) error {
	if resp == nil {
		return errors.New("gqlhttp/response: nil response")
	}
	return check(req, resp, nil)
}

func check(req *request.Request, resp *http.Response, body []byte) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newClientError(HTTPFailure, req, resp, body)
	}
	if !IsSupportedMediaType(contentType(resp)) {
		return newClientError(UnsupportedMediaType, req, resp, body)
	}
	return nil
}

// IsSupportedMediaType reports whether contentType, compared
// case-insensitively, starts with application/graphql-response+json or
// application/json.
func IsSupportedMediaType(contentType string) bool {
	contentType = strings.ToLower(contentType)
	for _, mediaType := range supportedMediaTypes {
		if strings.HasPrefix(contentType, mediaType) {
			return true
		}
	}
	return false
}

// contentType returns every Content-Type value of resp joined by ", ",
// or "<nil>" if there is none.
func contentType(resp *http.Response) string {
	values := resp.Header.Values("Content-Type")
	if len(values) == 0 {
		return "<nil>"
	}
	return strings.Join(values, ", ")
}
