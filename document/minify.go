// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package document

import (
	"regexp"
	"strings"
)

// A space survives only between two word characters.
var insignificantSpace = regexp.MustCompile(`\B \B|\b \B|\B \b`)

// Minify removes insignificant whitespace from a GraphQL document. Each
// run of whitespace is collapsed to a single space, which is then
// dropped unless it separates two word characters.
//
// Minify is idempotent. It does not parse the document, so whitespace
// inside string literals is collapsed too.
//
//	Minify("query { hello world }") == "query{hello world}"
func Minify(doc string) string {
	collapsed := strings.Join(strings.Fields(doc), " ")
	return insignificantSpace.ReplaceAllString(collapsed, "")
}
