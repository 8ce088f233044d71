// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package gqlhttp

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Client to extend it with custom
// functionality.
type Event int

const (
	// BeforeSend identifies the event that occurs before the HTTP
	// request is handed to the HTTPDoer.
	//
	// When Client fires BeforeSend, the execution's HTTPRequest field
	// is set to the HTTP request that WILL BE sent after all BeforeSend
	// handlers have finished. Handlers may replace it or change its
	// fields, for example to sign the request. Its URL and Header are
	// copies, so changing them does not alter the request.Request.
	BeforeSend Event = iota
	// AfterReceive identifies the event that occurs after the HTTPDoer
	// returned an HTTP response (as opposed to an error) but before the
	// response is validated and its body read.
	//
	// AfterReceive fires regardless of the status code and Content-Type
	// of the response. Handlers must not read the response body.
	AfterReceive
	// AfterExecutionEnd identifies the event that occurs after the
	// execution ends, whether it succeeded or not.
	//
	// When Client fires AfterExecutionEnd, the execution's end time is
	// set and its error field holds the error, if any, that will be
	// returned to the caller.
	AfterExecutionEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeSend",
	"AfterReceive",
	"AfterExecutionEnd",
}

// Events returns a slice containing all events which can occur while
// Client executes a request, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeSend,
		AfterReceive,
		AfterExecutionEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
