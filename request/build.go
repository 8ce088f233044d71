// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	urlpkg "net/url"
	"strings"

	"github.com/graphqland/gqlhttp/optional"
	"golang.org/x/net/http/httpguts"
)

// DefaultMethod is the method used when Options.Method is empty.
const DefaultMethod = http.MethodPost

// Params holds the GraphQL request parameters. Encoded as JSON it is the
// body of a POST request: absent optional fields are left out, while a
// present field holding nil is encoded as null.
type Params struct {
	// Query is the GraphQL document containing the operations and
	// fragments to execute.
	Query string `json:"query"`

	// Variables holds values for the variables defined by the
	// operation.
	Variables optional.Value[map[string]any] `json:"variables,omitzero"`

	// OperationName names the operation in Query to execute.
	OperationName optional.Value[string] `json:"operationName,omitzero"`

	// Extensions is reserved for implementors to extend the protocol.
	Extensions optional.Value[map[string]any] `json:"extensions,omitzero"`
}

// Options contains the optional GraphQL parameters of a request along
// with transport settings. The zero value is valid and describes a POST
// request carrying only the query.
type Options struct {
	// Method is the HTTP method. An empty string means POST. GET and
	// POST are the only methods GraphQL parameters are encoded for;
	// any other method produces a request with no body and no default
	// headers.
	Method string

	// Variables, OperationName and Extensions are the optional GraphQL
	// request parameters. See Params.
	Variables     optional.Value[map[string]any]
	OperationName optional.Value[string]
	Extensions    optional.Value[map[string]any]

	// Header holds caller header fields. They are merged over the
	// default headers with MergeHeader.
	Header http.Header

	// Context controls cancellation of the request. If nil, the
	// background context is used.
	Context context.Context

	// Host and Close are passed through to the transport. See the
	// same-named fields of Request.
	Host  string
	Close bool
}

// Build returns a new Request given an endpoint URL string, a GraphQL
// document and optional options (opts may be nil).
//
// Build fails with an error wrapping ErrInvalidArgument if endpoint is
// not an absolute URL, if the method is not a valid HTTP token, if a
// header field is invalid, or if the variables or extensions cannot be
// encoded as JSON.
func Build(endpoint, query string, opts *Options) (*Request, error) {
	u, err := urlpkg.Parse(endpoint)
	if err != nil {
		return nil, argumentError("endpoint", err)
	}
	return BuildURL(u, query, opts)
}

// BuildURL is like Build but takes a parsed endpoint URL. The endpoint
// is copied and never modified.
func BuildURL(endpoint *urlpkg.URL, query string, opts *Options) (*Request, error) {
	if endpoint == nil {
		return nil, argumentError("endpoint", errors.New("nil URL"))
	}
	if opts == nil {
		opts = &Options{}
	}
	if !endpoint.IsAbs() {
		return nil, argumentError("endpoint", fmt.Errorf("%q is not an absolute URL", endpoint.String()))
	}
	if isSpecialScheme(endpoint.Scheme) && endpoint.Host == "" {
		return nil, argumentError("endpoint", fmt.Errorf("%q has no host", endpoint.String()))
	}
	method := opts.Method
	if method == "" {
		method = DefaultMethod
	}
	if !httpguts.ValidHeaderFieldName(method) {
		return nil, argumentError("method", fmt.Errorf("%q is not a valid token", method))
	}

	u := cloneURL(endpoint)
	u.Host = removeEmptyPort(u.Host)
	if isSpecialScheme(u.Scheme) && u.Path == "" && u.Opaque == "" {
		u.Path = "/"
		u.RawPath = ""
	}

	p := opts.Params(query)
	var body []byte
	switch method {
	case http.MethodGet:
		rawQuery, err := encodeQuery(u.RawQuery, p)
		if err != nil {
			return nil, err
		}
		u.RawQuery = rawQuery
		u.ForceQuery = false
	case http.MethodPost:
		b, err := encodeJSON(p)
		if err != nil {
			return nil, argumentError("params", err)
		}
		body = b
	}

	header, err := MergeHeader(defaultHeader(method), opts.Header)
	if err != nil {
		return nil, err
	}

	return &Request{
		Method: method,
		URL:    u,
		Header: header,
		Body:   body,
		Close:  opts.Close,
		Host:   opts.Host,
		ctx:    opts.Context,
	}, nil
}

// Params returns the GraphQL parameters described by opts together
// with query.
func (opts *Options) Params(query string) Params {
	if opts == nil {
		return Params{Query: query}
	}
	return Params{
		Query:         query,
		Variables:     opts.Variables,
		OperationName: opts.OperationName,
		Extensions:    opts.Extensions,
	}
}

// encodeQuery sets the GraphQL parameters of p on the query string
// rawQuery. Variables and extensions are only set when non-empty, and
// the operation name only when non-blank.
func encodeQuery(rawQuery string, p Params) (string, error) {
	q := parseQuery(rawQuery)
	q = q.set("query", p.Query)
	if vars := p.Variables.UnwrapOr(nil); len(vars) > 0 {
		b, err := encodeJSON(vars)
		if err != nil {
			return "", argumentError("variables", err)
		}
		q = q.set("variables", string(b))
	}
	if name := p.OperationName.UnwrapOr(""); name != "" {
		q = q.set("operationName", name)
	}
	if ext := p.Extensions.UnwrapOr(nil); len(ext) > 0 {
		b, err := encodeJSON(ext)
		if err != nil {
			return "", argumentError("extensions", err)
		}
		q = q.set("extensions", string(b))
	}
	return q.encode(), nil
}

// encodeJSON encodes v as compact JSON without escaping HTML
// characters.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func isSpecialScheme(scheme string) bool {
	switch strings.ToLower(scheme) {
	case "http", "https", "ws", "wss", "ftp":
		return true
	default:
		return false
	}
}

// hasPort is lifted verbatim from net/http/http.go
//
// Given a string of the form "host", "host:port", or "[ipv6::address]:port",
// return true if the string includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort is lifted verbatim from net/http/http.go
//
// removeEmptyPort strips the empty port in ":port" to ""
// as mandated by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
