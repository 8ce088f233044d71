// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package gqlhttp

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/graphqland/gqlhttp/document"
	"github.com/graphqland/gqlhttp/request"
	"github.com/graphqland/gqlhttp/response"
	"github.com/graphqland/gqlhttp/timeout"
	"github.com/graphqland/gqlhttp/transient"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

// Result is an ExecutionResult whose data and extensions are decoded
// into generic JSON maps.
type Result = response.ExecutionResult[map[string]any, map[string]any]

var emptyHandlers = HandlerGroup{}

// A Client is a GraphQL-over-HTTP client. Its zero value is a valid
// configuration.
//
// The zero value client uses http.DefaultClient (from net/http) as the
// HTTPDoer, timeout.DefaultPolicy as the timeout policy, an empty
// handler group (no event handlers/plug-ins), and DiscardLogger.
//
// Client's HTTPDoer typically has an internal state (cached TCP
// connections) so Client instances should be reused instead of created
// as needed. Client is safe for concurrent use by multiple goroutines.
//
// Each call sends exactly one HTTP request. Client never retries: every
// failure, whether from the transport, the status code, the content
// type or the JSON body, is returned to the caller once.
type Client struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, http.DefaultClient from the standard net/http
	// package is used.
	HTTPDoer HTTPDoer
	// TimeoutPolicy specifies how to set the timeout of each round
	// trip.
	//
	// If TimeoutPolicy is nil, timeout.DefaultPolicy is used.
	TimeoutPolicy timeout.Policy
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during execution of a request.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
	// Logger receives debug traces of each round trip and a warning for
	// each failed one.
	//
	// If Logger is nil, DiscardLogger is used.
	Logger Logger
	// CheckDocument makes Fetch parse the GraphQL document before
	// building the request. A document with a syntax error is rejected
	// with an error wrapping request.ErrInvalidArgument, and nothing is
	// sent.
	CheckDocument bool
}

// Fetch builds a GraphQL request for query, sends it to endpoint using
// c, and validates the response, decoding data into Data and extensions
// into Extensions. A nil c behaves like the zero value Client.
//
// The ctx parameter, if not nil, replaces opts.Context.
//
// The returned error is one of:
//
//   - an error wrapping request.ErrInvalidArgument if the request could
//     not be built;
//   - a *url.Error from the transport (use IsAborted to tell whether the
//     context was cancelled or its deadline exceeded);
//   - a *response.ClientError if the response was rejected;
//   - a *json.SyntaxError if the response body is not valid JSON.
//
// GraphQL errors in the result are not treated as failures.
func Fetch[Data, Extensions any](ctx context.Context, c *Client, endpoint, query string, opts *request.Options) (*response.ExecutionResult[Data, Extensions], error) {
	if c == nil {
		c = &Client{}
	}
	r, err := c.build(ctx, endpoint, query, opts)
	if err != nil {
		return nil, err
	}
	return Send[Data, Extensions](c, r)
}

// Send sends a built request using c and validates the response, in the
// same manner as Fetch. A nil c behaves like the zero value Client.
func Send[Data, Extensions any](c *Client, r *request.Request) (*response.ExecutionResult[Data, Extensions], error) {
	if c == nil {
		c = &Client{}
	}
	var result *response.ExecutionResult[Data, Extensions]
	_, err := c.execute(r, func(req *request.Request, resp *http.Response) error {
		var err error
		result, err = response.Validate[Data, Extensions](req, resp)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Do sends a built request and returns the validated result, decoded
// into generic JSON maps. See Fetch for the errors returned.
func (c *Client) Do(r *request.Request) (*Result, error) {
	return Send[map[string]any, map[string]any](c, r)
}

// Fetch is like the package-level Fetch function, decoding into generic
// JSON maps.
func (c *Client) Fetch(ctx context.Context, endpoint, query string, opts *request.Options) (*Result, error) {
	return Fetch[map[string]any, map[string]any](ctx, c, endpoint, query, opts)
}

// Execute sends a built request and returns the final execution state
// along with the error, if any. Unlike Do, the response is only
// checked for its status and Content-Type, and its body is closed
// unread. Execute suits callers that only need to know whether the
// endpoint accepts the request.
//
// The returned Execution is never nil, and its Err field always
// references the returned error.
func (c *Client) Execute(r *request.Request) (*request.Execution, error) {
	return c.execute(r, func(req *request.Request, resp *http.Response) error {
		if resp.Body != nil {
			defer resp.Body.Close()
		}
		return response.Check(req, resp)
	})
}

// CloseIdleConnections invokes the same method on the client's
// underlying HTTPDoer.
//
// If the HTTPDoer has no CloseIdleConnections method, this method does
// nothing.
func (c *Client) CloseIdleConnections() {
	doer := c.doer()
	if ic, ok := doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (c *Client) build(ctx context.Context, endpoint, query string, opts *request.Options) (*request.Request, error) {
	if c.CheckDocument {
		if err := document.Check(query); err != nil {
			return nil, &request.ArgumentError{Field: "query", Err: err}
		}
	}
	r, err := request.Build(endpoint, query, opts)
	if err != nil {
		return nil, err
	}
	if ctx != nil {
		r = r.WithContext(ctx)
	}
	return r, nil
}

type validateFunc func(req *request.Request, resp *http.Response) error

func (c *Client) execute(r *request.Request, validate validateFunc) (*request.Execution, error) {
	e := &request.Execution{
		Request: r,
	}
	logger := c.logger()
	handlers := c.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}

	e.Start = time.Now()
	ctx, cancel := c.roundTripContext(r)
	defer cancel()
	e.HTTPRequest = r.ToHTTP(ctx)
	handlers.run(BeforeSend, e)
	logger.Debugf("gqlhttp: %s %s", r.Method, r.URL)

	var err error
	e.Response, err = c.doer().Do(e.HTTPRequest)
	if err != nil {
		e.Err = urlErrorWrap(r, err)
	} else {
		handlers.run(AfterReceive, e)
		logger.Debugf("gqlhttp: %s %s: %d %s", r.Method, r.URL, e.Response.StatusCode, e.Response.Header.Get("Content-Type"))
		e.Err = validate(r, e.Response)
	}

	e.End = time.Now()
	if e.Err != nil {
		logger.Warnf("gqlhttp: %s %s failed after %s: %s", r.Method, r.URL, e.Duration(), e.Err)
	}
	handlers.run(AfterExecutionEnd, e)
	return e, e.Err
}

func (c *Client) roundTripContext(r *request.Request) (context.Context, context.CancelFunc) {
	timeoutPolicy := c.TimeoutPolicy
	if timeoutPolicy == nil {
		timeoutPolicy = timeout.DefaultPolicy
	}
	if d := timeoutPolicy.Timeout(r); d > 0 {
		return context.WithTimeout(r.Context(), d)
	}
	return context.WithCancel(r.Context())
}

func (c *Client) doer() HTTPDoer {
	if c.HTTPDoer == nil {
		return http.DefaultClient
	}

	return c.HTTPDoer
}

func (c *Client) logger() Logger {
	if c.Logger == nil {
		return DiscardLogger
	}

	return c.Logger
}

// IsAborted reports whether err was caused by the request context being
// cancelled or its deadline being exceeded, including a deadline set by
// the timeout policy. An aborted request is never a
// *response.ClientError.
func IsAborted(err error) bool {
	return transient.Aborted(err)
}

func urlErrorWrap(r *request.Request, err error) error {
	if _, ok := err.(*url.Error); ok {
		return err
	}

	return &url.Error{
		Op:  urlErrorOp(r.Method),
		URL: r.URL.String(),
		Err: err,
	}
}

// urlErrorOp is lifted verbatim from net/http/client.go
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
