// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transient classifies transport errors surfaced while sending
// a GraphQL request: timeouts, caller cancellation, and connection
// refusal or reset. The client never retries, so this is where callers
// look when writing their own retry policy or bucketing error metrics.
//
// Package transient depends only on the standard library packages
// "context", "errors" and "syscall".
package transient
