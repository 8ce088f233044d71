// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		for _, doc := range []string{
			"{hello}",
			"query{test}",
			compressed,
			"query Q($id: ID!) { node(id: $id) { ...F } } fragment F on Node { id }",
		} {
			assert.NoError(t, Check(doc), doc)
		}
	})
	t.Run("invalid", func(t *testing.T) {
		for _, doc := range []string{
			"query {",
			"query Q($id) { a }",
			"{ a(b: ) }",
			"type Query { a: Int }",
		} {
			assert.Error(t, Check(doc), doc)
		}
	})
	t.Run("minified documents stay valid", func(t *testing.T) {
		doc := `query  Test   ($id :   ID!)
{
      hello     (id  : $id  )
      world
    }`
		require.NoError(t, Check(doc))
		assert.NoError(t, Check(Minify(doc)))
	})
}

func TestOperationNames(t *testing.T) {
	names, err := OperationNames(compressed)
	require.NoError(t, err)
	assert.Equal(t, []string{"Test", "TestMutate"}, names)

	names, err = OperationNames("{ a } fragment F on Q { b }")
	require.NoError(t, err)
	assert.Equal(t, []string{""}, names)

	names, err = OperationNames("query {")
	assert.Error(t, err)
	assert.Nil(t, names)
}
