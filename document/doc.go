// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package document contains helpers for GraphQL documents sent by a
// client: Minify shrinks a document before it is put on the wire, and
// Check and OperationNames inspect its syntax without a schema.
package document
