// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/graphqland/gqlhttp/request"
)

// A Kind identifies the reason a response was rejected.
type Kind int

const (
	// HTTPFailure indicates a status code outside the 2xx range.
	HTTPFailure Kind = iota
	// UnsupportedMediaType indicates a missing or non-JSON Content-Type.
	UnsupportedMediaType
)

var kindNames = []string{
	"HTTPFailure",
	"UnsupportedMediaType",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// A ClientError reports a response rejected before its body was parsed.
//
// Request and Response are snapshots: changing them does not affect the
// values the caller sent and received. Response carries the status and
// headers of the real response, and its Body is always http.NoBody.
type ClientError struct {
	Kind     Kind
	Request  *request.Request
	Response *http.Response

	// Body is the response body when validation was given one already
	// read, as with ValidateBody. Otherwise it is nil.
	Body []byte

	msg string
}

func (e *ClientError) Error() string {
	return "gqlhttp/response: " + e.msg
}

// StatusCode returns the status code of the rejected response.
func (e *ClientError) StatusCode() int {
	if e.Response == nil {
		return 0
	}
	return e.Response.StatusCode
}

// AsClientError returns the first *ClientError in the chain of err, or
// nil if there is none.
func AsClientError(err error) *ClientError {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}

func newClientError(kind Kind, req *request.Request, resp *http.Response, body []byte) *ClientError {
	var msg string
	switch kind {
	case HTTPFailure:
		msg = fmt.Sprintf("request has failed. status: %d", resp.StatusCode)
	case UnsupportedMediaType:
		msg = "unsupported media type. " + contentType(resp)
	}
	return &ClientError{
		Kind:     kind,
		Request:  snapshotRequest(req),
		Response: snapshotResponse(resp),
		Body:     body,
		msg:      msg,
	}
}

func snapshotRequest(req *request.Request) *request.Request {
	if req == nil {
		return nil
	}
	return req.Clone()
}

func snapshotResponse(resp *http.Response) *http.Response {
	r2 := new(http.Response)
	*r2 = *resp
	r2.Header = resp.Header.Clone()
	r2.Trailer = resp.Trailer.Clone()
	r2.Body = http.NoBody
	return r2
}
