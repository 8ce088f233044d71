// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"time"

	"github.com/graphqland/gqlhttp/request"
)

// A Policy defines a timeout policy which may be plugged into the
// GraphQL client (gqlhttp.Client) to direct how to set the timeout of a
// round trip. The timeout covers sending the request, receiving the
// response and reading its body.
//
// A timeout of zero or less means no timeout. The request context still
// applies either way.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	// Timeout returns the timeout to set on the round trip for r.
	Timeout(r *request.Request) time.Duration
}

// DefaultPolicy is the default timeout policy. It never times out,
// leaving cancellation entirely to the request context.
var DefaultPolicy Policy = Infinite

// Infinite is a built-in timeout policy which never times out.
var Infinite Policy = Fixed(0)

// Fixed constructs a timeout policy that uses the same value for every
// round trip. The return value is a timeout policy that always returns
// the value d.
func Fixed(d time.Duration) Policy {
	return fixed(d)
}

// ByMethod constructs a timeout policy that looks up the timeout by the
// HTTP method of the request, falling back to fallback for methods not
// in timeouts.
//
// Consider the following timeout policy:
//
//	p := ByMethod(map[string]time.Duration{"GET": 2 * time.Second}, 30*time.Second)
//
// The policy p gives queries sent with GET 2 seconds, and gives
// everything else, including mutations sent with POST, 30 seconds.
func ByMethod(timeouts map[string]time.Duration, fallback time.Duration) Policy {
	p := byMethod{
		timeouts: make(map[string]time.Duration, len(timeouts)),
		fallback: fallback,
	}
	for method, d := range timeouts {
		p.timeouts[method] = d
	}
	return p
}

// PolicyFunc is an adapter to allow the use of ordinary functions as
// timeout policies.
type PolicyFunc func(r *request.Request) time.Duration

// Timeout calls f(r).
func (f PolicyFunc) Timeout(r *request.Request) time.Duration {
	return f(r)
}

type fixed time.Duration

func (p fixed) Timeout(_ *request.Request) time.Duration {
	return time.Duration(p)
}

type byMethod struct {
	timeouts map[string]time.Duration
	fallback time.Duration
}

func (p byMethod) Timeout(r *request.Request) time.Duration {
	if d, ok := p.timeouts[r.Method]; ok {
		return d
	}
	return p.fallback
}
