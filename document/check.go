// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package document

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Check parses doc as an executable GraphQL document and returns the
// syntax error, if any. No schema is involved, so unknown fields and
// types are not reported.
func Check(doc string) error {
	_, err := parse(doc)
	return err
}

// OperationNames returns the name of every operation defined in doc, in
// document order. An anonymous operation contributes an empty string.
func OperationNames(doc string) ([]string, error) {
	parsed, err := parse(doc)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(parsed.Operations))
	for _, op := range parsed.Operations {
		names = append(names, op.Name)
	}
	return names, nil
}

func parse(doc string) (*ast.QueryDocument, error) {
	parsed, err := parser.ParseQuery(&ast.Source{Input: doc})
	if err != nil {
		return nil, err
	}
	return parsed, nil
}
