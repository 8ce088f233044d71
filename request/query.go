// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/url"
	"strings"
)

// A query is an ordered URL query string. Unlike url.Values it keeps
// the order of its parameters, and parameters it did not set keep their
// original encoding.
type query []queryParam

type queryParam struct {
	key string // decoded, for comparison
	raw string // encoded key=value
}

func parseQuery(rawQuery string) query {
	var q query
	for _, raw := range strings.Split(rawQuery, "&") {
		if raw == "" {
			continue
		}
		key := raw
		if i := strings.IndexByte(raw, '='); i >= 0 {
			key = raw[:i]
		}
		if k, err := url.QueryUnescape(key); err == nil {
			key = k
		}
		q = append(q, queryParam{key: key, raw: raw})
	}
	return q
}

// set replaces the first parameter named key with key=value and drops
// any later parameter of the same name. If there is no such parameter,
// key=value is appended.
func (q query) set(key, value string) query {
	p := queryParam{key: key, raw: url.QueryEscape(key) + "=" + url.QueryEscape(value)}
	out := q[:0]
	found := false
	for _, existing := range q {
		if existing.key != key {
			out = append(out, existing)
		} else if !found {
			out = append(out, p)
			found = true
		}
	}
	if !found {
		out = append(out, p)
	}
	return out
}

func (q query) encode() string {
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.raw)
	}
	return b.String()
}
