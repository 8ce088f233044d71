// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package gqlhttp

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/graphqland/gqlhttp/request"

	"github.com/stretchr/testify/assert"

	"github.com/stretchr/testify/require"

	"github.com/stretchr/testify/mock"
)

type ctxKey struct{}

func TestFetchWith(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		expected := &Result{}
		ctx := context.WithValue(context.Background(), ctxKey{}, "foo")
		m := newMockDoer(t)
		m.On("Do", mock.MatchedBy(func(r *request.Request) bool {
			return r.Method == "POST" && r.URL.String() == "http://localhost:8000/graphql" &&
				string(r.Body) == `{"query":"{a}"}` &&
				r.Header.Get("X-Foo") == "bar" &&
				r.Context() == ctx
		})).Return(expected, nil).Once()
		result, err := FetchWith(ctx, m, "http://localhost:8000/graphql", "{a}", &request.Options{
			Header: http.Header{"X-Foo": {"bar"}},
		})
		assert.Same(t, expected, result)
		assert.NoError(t, err)
		m.AssertExpectations(t)
	})
	t.Run("nil context keeps options context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), ctxKey{}, "bar")
		m := newMockDoer(t)
		m.On("Do", mock.MatchedBy(func(r *request.Request) bool {
			return r.Context() == ctx
		})).Return(&Result{}, nil).Once()
		//lint:ignore SA1012 nil context means use opts.Context
		_, err := FetchWith(nil, m, "http://localhost:8000", "{a}", &request.Options{Context: ctx})
		assert.NoError(t, err)
		m.AssertExpectations(t)
	})
	t.Run("error invalid URL", func(t *testing.T) {
		m := newMockDoer(t)
		result, err := FetchWith(context.Background(), m, ":::", "{a}", nil)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, request.ErrInvalidArgument))
		m.AssertNotCalled(t, "Do", mock.Anything)
	})
	t.Run("doer error", func(t *testing.T) {
		doErr := errors.New("boom")
		m := newMockDoer(t)
		m.On("Do", mock.Anything).Return(nil, doErr).Once()
		result, err := FetchWith(context.Background(), m, "http://localhost:8000", "{a}", nil)
		assert.Nil(t, result)
		assert.Same(t, doErr, err)
	})
}

func TestQuery(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		expected := &Result{}
		m := newMockDoer(t)
		m.On("Do", mock.MatchedBy(func(r *request.Request) bool {
			return r.Method == "GET" &&
				r.URL.String() == "http://localhost:8000/?query=%7Bhero%7D&variables=%7B%22id%22%3A1%7D" &&
				r.Body == nil
		})).Return(expected, nil).Once()
		result, err := Query(context.Background(), m, "http://localhost:8000", "{hero}", map[string]any{"id": 1})
		assert.Same(t, expected, result)
		assert.NoError(t, err)
		m.AssertExpectations(t)
	})
	t.Run("nil variables", func(t *testing.T) {
		m := newMockDoer(t)
		m.On("Do", mock.MatchedBy(func(r *request.Request) bool {
			return r.URL.RawQuery == "query=%7Bhero%7D"
		})).Return(&Result{}, nil).Once()
		_, err := Query(context.Background(), m, "http://localhost:8000", "{hero}", nil)
		assert.NoError(t, err)
		m.AssertExpectations(t)
	})
	t.Run("error invalid URL", func(t *testing.T) {
		m := newMockDoer(t)
		result, err := Query(context.Background(), m, "", "{hero}", nil)
		assert.Nil(t, result)
		assert.Error(t, err)
		m.AssertNotCalled(t, "Do", mock.Anything)
	})
}

func TestMutate(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		expected := &Result{}
		m := newMockDoer(t)
		m.On("Do", mock.MatchedBy(func(r *request.Request) bool {
			return r.Method == "POST" && r.URL.String() == "http://localhost:8000/" &&
				string(r.Body) == `{"query":"mutation{a}","variables":{"x":null}}` &&
				r.Header.Get("Content-Type") == request.ContentType
		})).Return(expected, nil).Once()
		result, err := Mutate(context.Background(), m, "http://localhost:8000", "mutation{a}", map[string]any{"x": nil})
		assert.Same(t, expected, result)
		assert.NoError(t, err)
		m.AssertExpectations(t)
	})
	t.Run("nil variables", func(t *testing.T) {
		m := newMockDoer(t)
		m.On("Do", mock.MatchedBy(func(r *request.Request) bool {
			return string(r.Body) == `{"query":"mutation{a}"}`
		})).Return(&Result{}, nil).Once()
		_, err := Mutate(context.Background(), m, "http://localhost:8000", "mutation{a}", nil)
		assert.NoError(t, err)
		m.AssertExpectations(t)
	})
}

func TestInflate(t *testing.T) {
	t.Run("Inflate", func(t *testing.T) {
		t.Run("nil doer", func(t *testing.T) {
			assert.PanicsWithValue(t, "gqlhttp: nil doer", func() {
				Inflate(nil)
			})
		})
		t.Run("already an Executor", func(t *testing.T) {
			cl := &Client{}
			x := Inflate(cl)
			assert.Same(t, cl, x)
		})
		t.Run("not yet an Executor", func(t *testing.T) {
			m := newMockDoer(t)
			x := Inflate(m)
			assert.NotSame(t, m, x)
		})
	})
	expected := &Result{}
	t.Run("Do", func(t *testing.T) {
		r, err := request.Build("http://www.randomcollections.com/graphql", "{widgets{id}}", &request.Options{Method: "PUT"})
		require.NotNil(t, r)
		require.NoError(t, err)
		m := newMockDoer(t)
		m.On("Do", r).Return(expected, nil).Once()
		x := Inflate(m)
		result, err := x.Do(r)
		assert.Same(t, expected, result)
		assert.NoError(t, err)
		m.AssertExpectations(t)
	})
	t.Run("Fetch", func(t *testing.T) {
		m := newMockDoer(t)
		m.On("Do", mock.MatchedBy(func(r *request.Request) bool {
			return r.Method == "GET" && r.URL.String() == "http://bar/?query=%7Bb%7D"
		})).Return(expected, nil).Once()
		x := Inflate(m)
		result, err := x.Fetch(context.Background(), "http://bar", "{b}", &request.Options{Method: "GET"})
		assert.Same(t, expected, result)
		assert.NoError(t, err)
		m.AssertExpectations(t)
	})
	t.Run("Query", func(t *testing.T) {
		m := newMockDoer(t)
		m.On("Do", mock.MatchedBy(func(r *request.Request) bool {
			return r.Method == "GET" && r.URL.String() == "http://baz/?query=%7Bc%7D"
		})).Return(expected, nil).Once()
		x := Inflate(m)
		result, err := x.Query(context.Background(), "http://baz", "{c}", nil)
		assert.Same(t, expected, result)
		assert.NoError(t, err)
		m.AssertExpectations(t)
	})
	t.Run("Mutate", func(t *testing.T) {
		m := newMockDoer(t)
		m.On("Do", mock.MatchedBy(func(r *request.Request) bool {
			return r.Method == "POST" && r.URL.String() == "http://ham/" &&
				string(r.Body) == `{"query":"mutation{eggs}"}`
		})).Return(expected, nil).Once()
		x := Inflate(m)
		result, err := x.Mutate(context.Background(), "http://ham", "mutation{eggs}", nil)
		assert.Same(t, expected, result)
		assert.NoError(t, err)
		m.AssertExpectations(t)
	})
	t.Run("CloseIdleConnections", func(t *testing.T) {
		t.Run("Doer does not implement IdleCloser", func(t *testing.T) {
			m := newMockDoer(t)
			x := Inflate(m)
			x.CloseIdleConnections()
			m.AssertNotCalled(t, "CloseIdleConnections")
		})
		t.Run("Doer implements IdleCloser", func(t *testing.T) {
			m := newMockDoerWithCloseIdleConnections(t)
			m.On("CloseIdleConnections").Once()
			x := Inflate(m)
			x.CloseIdleConnections()
			m.AssertExpectations(t)
		})
	})
}

type mockDoer struct {
	mock.Mock
}

func newMockDoer(t *testing.T) *mockDoer {
	m := &mockDoer{}
	m.Test(t)
	return m
}

func (m *mockDoer) Do(r *request.Request) (*Result, error) {
	args := m.Called(r)
	result := args.Get(0)
	err := args.Error(1)
	if result == nil {
		return nil, err
	}
	return result.(*Result), err
}

type mockDoerWithCloseIdleConnections struct {
	mockDoer
}

func newMockDoerWithCloseIdleConnections(t *testing.T) *mockDoerWithCloseIdleConnections {
	m := &mockDoerWithCloseIdleConnections{}
	m.Test(t)
	return m
}

func (m *mockDoerWithCloseIdleConnections) CloseIdleConnections() {
	m.Called()
}
