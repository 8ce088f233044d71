// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package timeout defines policies for setting the timeout of a single
// GraphQL round trip made by gqlhttp.Client. A generic interface for
// timeout policies is provided, Policy, along with policy generating
// functions and built-in policies.
package timeout
