// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package gqlhttp provides a GraphQL-over-HTTP client within a simple and
familiar interface.

Create a Client to begin making requests.

	client := &gqlhttp.Client{}
	result, err := client.Fetch(ctx, "https://example.com/graphql", `query {
	  person(personID: "1") { name }
	}`, nil)

Fetch decodes data and extensions into generic maps. To decode into
your own types, use the package-level Fetch function:

	type Data struct {
		Person struct {
			Name string `json:"name"`
		} `json:"person"`
	}
	result, err := gqlhttp.Fetch[Data, map[string]any](ctx, client, endpoint, query, &request.Options{
		Method:    "GET",
		Variables: optional.Some(map[string]any{"id": "1"}),
	})

The request is a POST with a JSON body unless Options.Method says
otherwise. A GET request carries the GraphQL parameters in the URL query
string instead. Package request documents how requests are built, and
package response how responses are validated.

An error is returned if the request could not be built, if the
transport failed, if the response was rejected (a *response.ClientError)
or if its body is not valid JSON. GraphQL errors inside a decoded result
are not treated as failures. Client never retries: use IsAborted and
package transient to build a retry policy of your own.

For control over how the client sends HTTP requests and receives HTTP
responses, use a custom HTTPDoer. For example, use a GoLang standard
HTTP client:

	doer := &http.Client{
		..., // See package "net/http" for detailed documentation
	}
	client := &gqlhttp.Client{
		HTTPDoer: doer,
	}

For control over the timeout of each round trip, set a custom timeout
policy using package timeout:

	client := &gqlhttp.Client{
		TimeoutPolicy: timeout.Fixed(10*time.Second),
	}

To trace round trips, set a Logger. The log.Log value of package
github.com/apex/log can be used as is:

	client := &gqlhttp.Client{
		Logger: log.Log,
	}

To hook into the details of the client's request execution logic,
install a handler into the appropriate handler chain:

	handlers := &gqlhttp.HandlerGroup{}
	handlers.PushBack(gqlhttp.BeforeSend, gqlhttp.HandlerFunc(
		func(_ gqlhttp.Event, e *request.Execution) {
			e.HTTPRequest.Header.Set("Authorization", "Bearer "+token)
		}),
	)
	client := &gqlhttp.Client{
		HTTPDoer: doer,
		Handlers: handlers,
	}

RequestID is a ready-made BeforeSend handler that tags each request with
a random ID. Package metrics provides handlers that export Prometheus
metrics.

Package gqlhttp provides basic interfaces for each method of the client
(Doer, Fetcher, Querier, Mutator, and IdleCloser); a combined interface
that composes all the basic methods (Executor); and utility functions
for working with a Doer (Inflate, FetchWith, Query, and Mutate).
*/
package gqlhttp
