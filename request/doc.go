// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Request (describes a GraphQL
request ready to be sent over HTTP) and Execution (describes the state
of sending a Request and validating its response).

The first core type is Request, which is built from an endpoint, a
GraphQL document and Options using Build:

	r, err := request.Build("https://example.com/graphql", query, &request.Options{
		Method:    "GET",
		Variables: optional.Some(map[string]any{"id": "1"}),
	})
	...
	result, err := client.Do(r)

A Request looks like a stripped-down http.Request with a pre-buffered
[]byte body. The method decides where the GraphQL parameters go: a GET
request carries them in the URL query string and has no body, a POST
request carries them in a JSON body and never in the URL. Any other
method is passed through with no body and no default headers.

Headers given in Options are merged over the protocol defaults (Accept,
and Content-Type for POST) using MergeHeader. Caller headers win on a
case-insensitive key collision.

A Request is a plain value and does not reference any net/http type.
Use ToHTTP to adapt it into an *http.Request at the transport boundary.

The second core type is Execution, which represents the state of a
single round trip. It is the input type for event handlers installed
in gqlhttp.Client. You will typically not allocate Execution instances
yourself.
*/
package request
