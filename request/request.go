// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"context"
	"io"
	"net/http"
	urlpkg "net/url"
)

var (
	template, _ = http.NewRequest("GET", "", nil)
)

const (
	nilCtxMsg = "gqlhttp/request: nil context"
)

// A Request is a GraphQL-over-HTTP request built by Build and ready for
// a transport to send.
//
// The field structure of Request mirrors the lower-level http.Request
// with server-only and stream-oriented fields removed. Callers own the
// Request once it is built and should treat it as immutable: the
// snapshot carried by a response.ClientError is the same value. Use
// Clone to obtain an independent copy before changing anything.
type Request struct {
	// Method specifies the HTTP method. Build never leaves it empty.
	Method string

	// URL specifies the URL to access. For a GET request it carries the
	// GraphQL parameters in its query string.
	URL *urlpkg.URL

	// Header contains the merged request header fields. Keys are in
	// canonical form, so lookups are case-insensitive.
	Header http.Header

	// Body is the pre-buffered request body. It is nil unless Method is
	// POST.
	Body []byte

	// Close stipulates whether to close the connection after sending
	// the request and reading the response.
	Close bool

	// Host optionally overrides the Host header to send. If empty, the
	// value of URL.Host will be sent.
	Host string

	// ctx allows sending the Request to be cancelled. It should only be
	// modified by copying the whole Request using WithContext.
	ctx context.Context
}

// Context returns the request's context. The context controls
// cancellation of sending the request and reading its response. To
// change the context, use WithContext.
//
// The returned context is always non-nil; it defaults to the
// background context.
func (r *Request) Context() context.Context {
	if r.ctx != nil {
		return r.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of r with its context changed to
// ctx, which must be non-nil.
func (r *Request) WithContext(ctx context.Context) *Request {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	r2 := new(Request)
	*r2 = *r
	r2.ctx = ctx
	return r2
}

// Clone returns a deep copy of r. Changing the URL, Header or Body of
// the copy does not affect r.
func (r *Request) Clone() *Request {
	r2 := new(Request)
	*r2 = *r
	if r.URL != nil {
		r2.URL = cloneURL(r.URL)
	}
	r2.Header = r.Header.Clone()
	if r.Body != nil {
		r2.Body = append([]byte(nil), r.Body...)
	}
	return r2
}

// ToHTTP creates an HTTP request corresponding to r. The context of
// the new request is set to ctx, which may not be nil.
//
// The URL and Header of the new request are copies, so a transport or
// event handler that changes them does not alter r.
func (r *Request) ToHTTP(ctx context.Context) *http.Request {
	hr := template.WithContext(ctx)
	hr.Method = r.Method
	hr.URL = cloneURL(r.URL)
	hr.Header = r.Header.Clone()
	if hr.Header == nil {
		hr.Header = make(http.Header)
	}
	if len(r.Body) > 0 {
		body := r.Body
		hr.Body = io.NopCloser(bytes.NewReader(body))
		hr.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
		hr.ContentLength = int64(len(body))
	}
	hr.Close = r.Close
	hr.Host = r.Host
	return hr
}

func cloneURL(u *urlpkg.URL) *urlpkg.URL {
	u2 := new(urlpkg.URL)
	*u2 = *u
	if u.User != nil {
		u3 := *u.User
		u2.User = &u3
	}
	return u2
}
