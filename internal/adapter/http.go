package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-community-client/internal/config"
	"github.com/MKhiriev/go-community-client/internal/logger"
	"github.com/MKhiriev/go-community-client/internal/utils"
)

const (
	requestIDHeader = "X-Request-ID"
	contentTypeJSON = "application/json"
)

type httpDispatcher struct {
	client     *utils.HTTPClient
	requestIDs *utils.UUIDGenerator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPDispatcher constructs an HTTP/REST implementation of [Dispatcher].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL, request
// timeout and Accept header, and stores adapterCfg.Token as the initial
// bearer token.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPDispatcher(adapterCfg config.ClientAdapter, logger *logger.Logger) (Dispatcher, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", contentTypeJSON)

	d := &httpDispatcher{
		client:     client,
		requestIDs: utils.NewUUIDGenerator(),
		logger:     logger,
	}
	d.SetToken(adapterCfg.Token)

	return d, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [Dispatcher]. It stores token for the Authorization
// header of all subsequent requests. A raw token and a full "Bearer <token>"
// value are both accepted.
func (h *httpDispatcher) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = utils.NormalizeToken(token)
}

// Token implements [Dispatcher].
func (h *httpDispatcher) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Get implements [Dispatcher].
func (h *httpDispatcher) Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return h.do(ctx, http.MethodGet, path, nil, opts)
}

// Post implements [Dispatcher].
func (h *httpDispatcher) Post(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return h.do(ctx, http.MethodPost, path, body, opts)
}

// Put implements [Dispatcher].
func (h *httpDispatcher) Put(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return h.do(ctx, http.MethodPut, path, body, opts)
}

// Delete implements [Dispatcher].
func (h *httpDispatcher) Delete(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return h.do(ctx, http.MethodDelete, path, nil, opts)
}

// do sends a single request. Every request carries a fresh X-Request-ID;
// Content-Type is only set when there is a body to send. Transport failures
// and non-2xx statuses are wrapped with the action label.
func (h *httpDispatcher) do(ctx context.Context, method, path string, body any, opts []RequestOption) (*Response, error) {
	o := NewRequestOptions(opts...)
	action := o.label(method, path)
	requestID := h.requestIDs.Generate()

	req := h.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID)
	switch {
	case body != nil:
		req.SetHeader("Content-Type", contentTypeJSON).SetBody(body)
	case method != http.MethodGet:
		// an empty POST/PUT/DELETE goes out as Content-Length: 0, not chunked
		req.SetContentLength(true)
	}
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	log := logger.FromContext(ctx, h.logger).With().
		Str("action", action).
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Logger()

	resp, err := req.Execute(method, path)
	if err != nil {
		log.Error().Err(err).Msg("request failed")
		return nil, fmt.Errorf("%s request: %w", action, err)
	}
	if err = statusError(resp.StatusCode(), resp.Body()); err != nil {
		log.Error().Err(err).Int("status", resp.StatusCode()).Msg("request rejected by server")
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	log.Debug().
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("request completed")

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Data:       json.RawMessage(resp.Body()),
	}, nil
}
