// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package metrics exports Prometheus metrics about GraphQL requests as a
handler plug-in for gqlhttp.Client.

	handlers := &gqlhttp.HandlerGroup{}
	metrics.New(prometheus.DefaultRegisterer, "myapp_graphql").Install(handlers)
	client := &gqlhttp.Client{
		Handlers: handlers,
	}
*/
package metrics
