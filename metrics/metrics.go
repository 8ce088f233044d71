// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package metrics

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/graphqland/gqlhttp"
	"github.com/graphqland/gqlhttp/request"
	"github.com/graphqland/gqlhttp/response"
	"github.com/graphqland/gqlhttp/transient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels that are not the name of a response.Kind or of a
// transient.Category.
const (
	OutcomeOK        = "OK"
	OutcomeMalformed = "Malformed"
	OutcomeOther     = "Other"
)

// A Collector records Prometheus metrics for the executions of the
// client it is installed into:
//
//   - <namespace>_requests_total, a counter labelled by method, code
//     and outcome;
//   - <namespace>_requests_inflight, a gauge of executions between
//     BeforeSend and AfterExecutionEnd;
//   - <namespace>_request_duration_seconds, a summary labelled by
//     method.
//
// The code label is the response status code, or "0" if no response
// was received. The outcome label is given by Outcome.
type Collector struct {
	requests *prometheus.CounterVec
	inflight prometheus.Gauge
	duration *prometheus.SummaryVec
}

// New creates a Collector whose metrics are registered with reg. If reg
// is nil, the metrics are created but not registered.
//
// New panics if the metrics cannot be registered, for example because
// another Collector with the same namespace is registered with reg.
func New(reg prometheus.Registerer, namespace string) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of GraphQL requests executed",
		}, []string{"method", "code", "outcome"}),
		inflight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "requests_inflight",
			Help:      "The number of GraphQL requests currently inflight",
		}),
		duration: factory.NewSummaryVec(prometheus.SummaryOpts{
			Namespace:  namespace,
			Name:       "request_duration_seconds",
			Help:       "Summarizes the time to execute a GraphQL request (in seconds)",
			Objectives: summaryObjectives(),
		}, []string{"method"}),
	}
}

func summaryObjectives() map[float64]float64 {
	return map[float64]float64{
		0.5:  0.010,
		0.9:  0.010,
		0.99: 0.001,
	}
}

// Install adds c to the BeforeSend and AfterExecutionEnd handler chains
// of g.
func (c *Collector) Install(g *gqlhttp.HandlerGroup) {
	g.PushBack(gqlhttp.BeforeSend, c)
	g.PushBack(gqlhttp.AfterExecutionEnd, c)
}

// Handle implements gqlhttp.Handler.
func (c *Collector) Handle(evt gqlhttp.Event, e *request.Execution) {
	switch evt {
	case gqlhttp.BeforeSend:
		c.inflight.Inc()
	case gqlhttp.AfterExecutionEnd:
		c.inflight.Dec()
		method := e.Request.Method
		code := strconv.Itoa(e.StatusCode())
		c.requests.WithLabelValues(method, code, Outcome(e.Err)).Inc()
		c.duration.WithLabelValues(method).Observe(e.Duration().Seconds())
	}
}

// Outcome names the result of an execution that ended with err:
//
//   - OutcomeOK if err is nil;
//   - the Kind name of a *response.ClientError;
//   - OutcomeMalformed if the response body was not valid JSON;
//   - the transient.Category name of a transient transport error;
//   - OutcomeOther otherwise.
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	if ce := response.AsClientError(err); ce != nil {
		return ce.Kind.String()
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return OutcomeMalformed
	}
	if cat := transient.Categorize(err); cat != transient.Not {
		return cat.String()
	}
	return OutcomeOther
}
