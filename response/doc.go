// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package response validates the HTTP response to a GraphQL request and
decodes it into an ExecutionResult.

Validation is a short sequence of checks where the first failure wins:

 1. A status code outside the 2xx range fails with a *ClientError of
    kind HTTPFailure. The body is never read.
 2. A missing Content-Type, or one that does not start with
    application/graphql-response+json or application/json (compared
    case-insensitively), fails with a *ClientError of kind
    UnsupportedMediaType.
 3. The body is read in full and parsed as JSON. A malformed body fails
    with the *json.SyntaxError produced by package encoding/json, not
    wrapped.

Past that point the envelope is not validated. Any well-formed body is
accepted: a value that is not a JSON object decodes to an empty
ExecutionResult, and an "errors" member that is not a list of GraphQL
errors is kept unparsed in ErrorsRaw. Only data or extensions that do
not fit the caller's Data or Extensions type fail, with
*json.UnmarshalTypeError.

A successfully decoded ExecutionResult is returned as-is. GraphQL errors
in its Errors field are data, not failures:

	result, err := response.Validate[Hero, map[string]any](req, resp)
	if err != nil {
		...
	}
	if len(result.Errors) > 0 {
		...
	}
*/
package response
