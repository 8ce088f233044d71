// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package gqlhttp

import (
	"fmt"

	"github.com/graphqland/gqlhttp/request"
)

// A HandlerGroup holds one handler chain per Event. Install it in a
// Client through the Handlers field.
//
// For every call, Client fires BeforeSend once the HTTP request is
// ready, AfterReceive when the HTTPDoer returned a response, and
// AfterExecutionEnd last, whether the call succeeded or not. Within a
// chain, handlers run in the order they were pushed, on the goroutine
// making the call.
//
// A HandlerGroup must not be changed while a Client using it may be
// executing a request. Build the group completely before installing
// it. Once installed, it may be shared by Clients used concurrently.
type HandlerGroup struct {
	handlers [][]Handler
}

// PushBack appends h to the chain for evt. It panics if h is nil or evt
// is not one of the values returned by Events.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("gqlhttp: nil handler")
	}
	if evt < 0 || evt >= eventSentinel {
		panic(fmt.Sprintf("gqlhttp: unknown event %d", int(evt)))
	}

	if g.handlers == nil {
		g.handlers = make([][]Handler, numEvents)
	}

	g.handlers[evt] = append(g.handlers[evt], h)
}

func (g *HandlerGroup) run(evt Event, e *request.Execution) {
	i := int(evt)
	if i < len(g.handlers) {
		run(g.handlers[i], evt, e)
	}
}

func run(chain []Handler, evt Event, e *request.Execution) {
	for _, h := range chain {
		h.Handle(evt, e)
	}
}

// A Handler reacts to one event of a Client call. The Execution it
// receives is the state of that call; a BeforeSend handler may change
// e.HTTPRequest, and handlers of later events should treat the
// execution as read-only.
type Handler interface {
	Handle(Event, *request.Execution)
}

// The HandlerFunc type is an adapter to allow the use of ordinary
// functions as event handlers. If f is a function with appropriate
// signature, then HandlerFunc(f) is a Handler that calls f.
type HandlerFunc func(Event, *request.Execution)

// Handle calls f(evt, e).
func (f HandlerFunc) Handle(evt Event, e *request.Execution) {
	f(evt, e)
}
