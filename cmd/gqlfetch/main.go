// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command gqlfetch sends one GraphQL request and prints the execution
// result as JSON.
//
// Usage:
//
//	gqlfetch [flags] ENDPOINT
//
// The document is given with -q, read from a file with -f, or read from
// standard input when neither is set. Run gqlfetch -h for all flags.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
