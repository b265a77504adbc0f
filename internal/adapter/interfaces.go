// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the community
// API server.
//
// The primary abstraction is [Dispatcher], the single request-dispatch
// capability shared by every service. The package ships an HTTP/REST
// implementation ([NewHTTPDispatcher]) configured once with the API base URL
// and the standard headers.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// statusError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/dispatcher_mock.go -package=mock

// Dispatcher issues one request against the API server per call and returns
// the decoded response envelope. Implementations are responsible for the base
// URL, standard headers, authentication header management, and mapping
// transport-level errors to the sentinel values defined in this package.
//
// path is used verbatim: it is neither escaped nor validated.
type Dispatcher interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests. An empty token disables the Authorization header.
	SetToken(token string)

	// Token returns the bearer token currently stored in the dispatcher, or
	// an empty string if no token has been set.
	Token() string

	// Get sends GET path.
	Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error)

	// Post sends POST path with body encoded as JSON. A nil body sends no
	// payload.
	Post(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error)

	// Put sends PUT path with body encoded as JSON. A nil body sends no
	// payload.
	Put(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error)

	// Delete sends DELETE path.
	Delete(ctx context.Context, path string, opts ...RequestOption) (*Response, error)
}
