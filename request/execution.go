// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"net/http"
	"time"

	"github.com/graphqland/gqlhttp/transient"
)

// An Execution represents the state of sending a single Request and
// validating its response.
//
// When a Client executes a Request, an Execution is created for it and
// handed to event handlers as the round trip progresses. Handlers may
// store values on an Execution using its SetValue method and read them
// back using the Value method, but should treat the exported fields as
// read-only. The one exception is HTTPRequest, which BeforeSend
// handlers may change (for example to sign the request).
type Execution struct {
	// Request is the GraphQL request being executed. It is never nil.
	Request *Request

	// Start is the time the round trip started. It is set before the
	// BeforeSend event.
	Start time.Time

	// End is the time the round trip ended. It contains the zero value
	// until the response has been validated or sending failed.
	End time.Time

	// HTTPRequest is the HTTP request handed to the transport. It is
	// created from Request just before the BeforeSend event.
	HTTPRequest *http.Request

	// Response is the HTTP response received from the transport. It is
	// nil if sending failed or has not completed yet. Its body is
	// closed once the execution ends.
	Response *http.Response

	// Err is the error, if any, from the transport or from validating
	// the response.
	Err error

	data context.Context
}

// StatusCode returns the status code of the HTTP response. If there is
// no HTTP response, 0 is returned.
func (e *Execution) StatusCode() int {
	if e.Response == nil {
		return 0
	}

	return e.Response.StatusCode
}

// Header returns the HTTP response headers. If there is no HTTP
// response, the nil header is returned.
//
// Note that a nil return value is always safe for read-only operations,
// since http.Header is a map type.
func (e *Execution) Header() http.Header {
	if e.Response == nil {
		var nilHeader http.Header
		return nilHeader
	}

	return e.Response.Header
}

// Duration returns the duration of the execution.
//
// If the execution has not yet started, the duration is zero. If the
// execution has ended, the duration returned is equal to End minus
// Start. Otherwise, it is equal to the current time minus Start.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return time.Duration(0)
	} else if !e.Ended() {
		return time.Since(e.Start)
	}

	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started.
func (e *Execution) Started() bool {
	return e.Start != (time.Time{})
}

// Ended indicates whether the execution has ended.
func (e *Execution) Ended() bool {
	return e.End != (time.Time{})
}

// Timeout indicates whether Err currently contains a non-nil value
// which indicates a timeout.
func (e *Execution) Timeout() bool {
	return transient.Categorize(e.Err) == transient.Timeout
}

// Aborted indicates whether Err currently contains a non-nil value
// caused by the request context being cancelled or its deadline being
// exceeded.
func (e *Execution) Aborted() bool {
	return transient.Aborted(e.Err)
}

// SetValue allows event handlers to store arbitrary data in the
// execution.
//
// The key must follow the same rules as the key parameter in
// context.WithValue: it may not be nil, it must be comparable, and it
// should not be of a built-in type.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}

	e.data = context.WithValue(ctx, key, value)
}

// Value returns the data value associated with this execution for key,
// or nil if there is no value associated with key.
func (e *Execution) Value(key interface{}) interface{} {
	ctx := e.data
	if ctx == nil {
		return nil
	}

	return ctx.Value(key)
}
