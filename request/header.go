// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"fmt"
	"net/http"
	"sort"

	"golang.org/x/net/http/httpguts"
)

const (
	// Accept is the Accept header value sent with GET and POST requests.
	Accept = "application/graphql-response+json;charset=UTF-8,application/json;charset=UTF-8"

	// ContentType is the Content-Type header value sent with POST
	// requests.
	ContentType = "application/json;charset=UTF-8"
)

// MergeHeader returns a new header holding every field of defaults and
// caller, where a field of caller replaces the field of defaults with
// the same case-insensitive name. Neither argument is modified, and
// either may be nil.
//
// An error wrapping ErrInvalidArgument is returned if a field name in
// caller is not a valid HTTP token, or a field value contains a byte
// not allowed in a header value.
func MergeHeader(defaults, caller http.Header) (http.Header, error) {
	merged := make(http.Header, len(defaults)+len(caller))
	for k, vv := range defaults {
		merged[http.CanonicalHeaderKey(k)] = append([]string(nil), vv...)
	}

	// Keys of caller are visited in sorted order so that two spellings
	// of the same name resolve the same way every time.
	keys := make([]string, 0, len(caller))
	for k := range caller {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !httpguts.ValidHeaderFieldName(k) {
			return nil, argumentError("header", fmt.Errorf("field name %q is not a valid token", k))
		}
		for _, v := range caller[k] {
			if !httpguts.ValidHeaderFieldValue(v) {
				return nil, argumentError("header", fmt.Errorf("value for field %q is not valid", k))
			}
		}
		merged[http.CanonicalHeaderKey(k)] = append([]string(nil), caller[k]...)
	}

	return merged, nil
}

func defaultHeader(method string) http.Header {
	switch method {
	case http.MethodGet:
		return http.Header{
			"Accept": {Accept},
		}
	case http.MethodPost:
		return http.Header{
			"Content-Type": {ContentType},
			"Accept":       {Accept},
		}
	default:
		return nil
	}
}
