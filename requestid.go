// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package gqlhttp

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/graphqland/gqlhttp/request"
)

// DefaultRequestIDHeader is the header RequestID uses when given an
// empty header name.
const DefaultRequestIDHeader = "X-Request-Id"

type requestIDKey struct{}

// RequestID returns a BeforeSend handler that tags each HTTP request
// with a random UUID in the named header. A request ID set by the
// caller is kept. The ID sent is also stored in the execution, where
// RequestIDOf finds it.
//
//	handlers.PushBack(gqlhttp.BeforeSend, gqlhttp.RequestID(""))
func RequestID(header string) Handler {
	if header == "" {
		header = DefaultRequestIDHeader
	}
	header = http.CanonicalHeaderKey(header)
	return HandlerFunc(func(evt Event, e *request.Execution) {
		if evt != BeforeSend || e.HTTPRequest == nil {
			return
		}
		id := e.HTTPRequest.Header.Get(header)
		if id == "" {
			id = uuid.NewString()
			e.HTTPRequest.Header.Set(header, id)
		}
		e.SetValue(requestIDKey{}, id)
	})
}

// RequestIDOf returns the request ID a RequestID handler sent for e, or
// the empty string if there was none.
func RequestIDOf(e *request.Execution) string {
	id, _ := e.Value(requestIDKey{}).(string)
	return id
}
