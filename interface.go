// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package gqlhttp

import (
	"context"

	"github.com/graphqland/gqlhttp/optional"
	"github.com/graphqland/gqlhttp/request"
)

// Doer is the interface that wraps the basic Do method.
//
// Do sends a built GraphQL request and returns the validated result
// (and error, if any). Client implements the Doer interface, and any
// other Doer implementation must behave substantially the same as
// Client.Do.
//
// Any Doer can be converted into an Executor via the Inflate function.
type Doer interface {
	Do(r *request.Request) (*Result, error)
}

// Fetcher is the interface that wraps the basic Fetch method.
//
// Fetch builds a GraphQL request from an endpoint, a document and
// options, sends it, and returns the validated result (and error, if
// any). Client implements the Fetcher interface, and any other Fetcher
// implementation must behave substantially the same as Client.Fetch.
//
// Any Doer can be used to emulate a Fetcher via the FetchWith function.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint, query string, opts *request.Options) (*Result, error)
}

// Querier is the interface that wraps the basic Query method.
//
// Query sends a GraphQL document with variables as a GET request.
// Client implements the Querier interface, and any other Querier
// implementation must behave substantially the same as Client.Query.
//
// Any Doer can be used to emulate a Querier via the Query function.
type Querier interface {
	Query(ctx context.Context, endpoint, query string, variables map[string]any) (*Result, error)
}

// Mutator is the interface that wraps the basic Mutate method.
//
// Mutate sends a GraphQL document with variables as a POST request.
// Client implements the Mutator interface, and any other Mutator
// implementation must behave substantially the same as Client.Mutate.
//
// Any Doer can be used to emulate a Mutator via the Mutate function.
type Mutator interface {
	Mutate(ctx context.Context, endpoint, query string, variables map[string]any) (*Result, error)
}

// IdleCloser is the interface that wraps the basic CloseIdleConnections
// method.
//
// If the underlying implementation supports it, CloseIdleConnections
// closes any idle which were previously connected from previous
// requests but are now sitting idle in a "keep-alive" state. It does
// not interrupt any connections currently in use.
//
// If the underlying implementation does not support this ability,
// CloseIdleConnections does nothing.
type IdleCloser interface {
	CloseIdleConnections()
}

// Executor is the interface that groups the basic Do, Fetch, Query,
// Mutate, and CloseIdleConnections methods.
//
// Any Doer can be converted into an Executor via the Inflate function.
type Executor interface {
	Doer
	Fetcher
	Querier
	Mutator
	IdleCloser
}

// FetchWith uses the specified Doer to send the GraphQL request built
// from endpoint, query and opts. The ctx parameter, if not nil,
// replaces opts.Context.
func FetchWith(ctx context.Context, d Doer, endpoint, query string, opts *request.Options) (*Result, error) {
	r, err := request.Build(endpoint, query, opts)
	if err != nil {
		return nil, err
	}
	if ctx != nil {
		r = r.WithContext(ctx)
	}
	return d.Do(r)
}

// Query uses the specified Doer to send query as a GET request, with
// variables in the URL query string. A nil or empty variables map
// sends no variables.
//
// To set custom headers or other options, use FetchWith.
func Query(ctx context.Context, d Doer, endpoint, query string, variables map[string]any) (*Result, error) {
	return FetchWith(ctx, d, endpoint, query, &request.Options{
		Method:    "GET",
		Variables: someVariables(variables),
	})
}

// Mutate uses the specified Doer to send query as a POST request, with
// variables in the JSON body. A nil variables map sends no variables.
//
// To set custom headers or other options, use FetchWith.
func Mutate(ctx context.Context, d Doer, endpoint, query string, variables map[string]any) (*Result, error) {
	return FetchWith(ctx, d, endpoint, query, &request.Options{
		Method:    "POST",
		Variables: someVariables(variables),
	})
}

func someVariables(variables map[string]any) optional.Value[map[string]any] {
	if variables == nil {
		return optional.None[map[string]any]()
	}
	return optional.Some(variables)
}

// Query sends query as a GET request, with variables in the URL query
// string, using the same policies followed by Fetch.
func (c *Client) Query(ctx context.Context, endpoint, query string, variables map[string]any) (*Result, error) {
	return c.Fetch(ctx, endpoint, query, &request.Options{
		Method:    "GET",
		Variables: someVariables(variables),
	})
}

// Mutate sends query as a POST request, with variables in the JSON
// body, using the same policies followed by Fetch.
func (c *Client) Mutate(ctx context.Context, endpoint, query string, variables map[string]any) (*Result, error) {
	return c.Fetch(ctx, endpoint, query, &request.Options{
		Method:    "POST",
		Variables: someVariables(variables),
	})
}

// Inflate converts any non-nil Doer into an Executor. This may be
// helpful for interop across library boundaries, i.e. if code that only
// has access to a Doer needs to call a function that requires an
// Executor.
func Inflate(d Doer) Executor {
	if d == nil {
		panic("gqlhttp: nil doer")
	}

	if e, ok := d.(Executor); ok {
		return e
	}

	return inflated{d}
}

type inflated struct {
	doer Doer
}

func (i inflated) Do(r *request.Request) (*Result, error) {
	return i.doer.Do(r)
}

func (i inflated) Fetch(ctx context.Context, endpoint, query string, opts *request.Options) (*Result, error) {
	return FetchWith(ctx, i.doer, endpoint, query, opts)
}

func (i inflated) Query(ctx context.Context, endpoint, query string, variables map[string]any) (*Result, error) {
	return Query(ctx, i.doer, endpoint, query, variables)
}

func (i inflated) Mutate(ctx context.Context, endpoint, query string, variables map[string]any) (*Result, error) {
	return Mutate(ctx, i.doer, endpoint, query, variables)
}

func (i inflated) CloseIdleConnections() {
	if ic, ok := i.doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}
