// Copyright 2022 The gqlhttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
	"github.com/graphqland/gqlhttp"
	"github.com/graphqland/gqlhttp/document"
	"github.com/graphqland/gqlhttp/optional"
	"github.com/graphqland/gqlhttp/request"
	"github.com/graphqland/gqlhttp/timeout"
	"github.com/spf13/cobra"
)

type options struct {
	query         string
	file          string
	method        string
	variables     string
	operationName string
	extensions    string
	headers       []string
	timeout       time.Duration
	minify        bool
	check         bool
	requestID     bool
	verbose       bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "gqlfetch [flags] ENDPOINT",
		Short:         "Send a GraphQL request and print the execution result",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := &log.Logger{
				Handler: text.New(cmd.ErrOrStderr()),
				Level:   log.InfoLevel,
			}
			if opts.verbose {
				logger.Level = log.DebugLevel
			}
			err := run(cmd.Context(), cmd, args[0], opts, logger)
			if err != nil {
				logger.WithError(err).Error("gqlfetch: request failed")
			}
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.query, "query", "q", "", "GraphQL document")
	flags.StringVarP(&opts.file, "file", "f", "", "read the GraphQL document from `path`")
	flags.StringVarP(&opts.method, "method", "X", http.MethodPost, "HTTP method (GET or POST)")
	flags.StringVarP(&opts.variables, "variables", "v", "", "variables as a JSON object")
	flags.StringVarP(&opts.operationName, "operation-name", "o", "", "name of the operation to execute")
	flags.StringVar(&opts.extensions, "extensions", "", "extensions as a JSON object")
	flags.StringArrayVarP(&opts.headers, "header", "H", nil, "extra header as `\"Name: value\"` (repeatable)")
	flags.DurationVarP(&opts.timeout, "timeout", "t", 0, "round trip timeout (0 means none)")
	flags.BoolVar(&opts.minify, "minify", false, "minify the document before sending it")
	flags.BoolVar(&opts.check, "check", false, "reject a document with a syntax error without sending it")
	flags.BoolVar(&opts.requestID, "request-id", false, "tag the request with a random X-Request-Id header")
	flags.BoolVar(&opts.verbose, "verbose", false, "log each round trip")
	cmd.MarkFlagsMutuallyExclusive("query", "file")
	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, endpoint string, opts *options, logger log.Interface) error {
	query, err := readDocument(cmd, opts)
	if err != nil {
		return err
	}
	if opts.minify {
		query = document.Minify(query)
	}

	ro := &request.Options{Method: opts.method}
	if ro.Variables, err = jsonObjectFlag("variables", opts.variables); err != nil {
		return err
	}
	if ro.Extensions, err = jsonObjectFlag("extensions", opts.extensions); err != nil {
		return err
	}
	if opts.operationName != "" {
		ro.OperationName = optional.Some(opts.operationName)
	}
	if ro.Header, err = parseHeaders(opts.headers); err != nil {
		return err
	}

	handlers := &gqlhttp.HandlerGroup{}
	if opts.requestID {
		handlers.PushBack(gqlhttp.BeforeSend, gqlhttp.RequestID(""))
	}
	client := &gqlhttp.Client{
		TimeoutPolicy: timeout.Fixed(opts.timeout),
		Handlers:      handlers,
		Logger:        logger,
		CheckDocument: opts.check,
	}
	defer client.CloseIdleConnections()

	result, err := client.Fetch(ctx, endpoint, query, ro)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func readDocument(cmd *cobra.Command, opts *options) (string, error) {
	if opts.query != "" {
		return opts.query, nil
	}
	var b []byte
	var err error
	if opts.file != "" {
		b, err = os.ReadFile(opts.file)
	} else {
		b, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(string(b)) == "" {
		return "", fmt.Errorf("gqlfetch: empty GraphQL document")
	}
	return string(b), nil
}

func jsonObjectFlag(name, value string) (optional.Value[map[string]any], error) {
	if value == "" {
		return optional.None[map[string]any](), nil
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(value), &m); err != nil {
		return optional.None[map[string]any](), fmt.Errorf("gqlfetch: --%s: %w", name, err)
	}
	return optional.Some(m), nil
}

func parseHeaders(values []string) (http.Header, error) {
	if len(values) == 0 {
		return nil, nil
	}
	h := make(http.Header, len(values))
	for _, v := range values {
		name, value, ok := strings.Cut(v, ":")
		if !ok {
			return nil, fmt.Errorf("gqlfetch: --header %q: missing colon", v)
		}
		h.Add(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	return h, nil
}
