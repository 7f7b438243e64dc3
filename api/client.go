// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// apiPrefix is prepended to every resource path. The backend versions
// its whole surface under this prefix.
const apiPrefix = "/api/v1"

// tokenHeader is the credential header the backend expects. The token
// travels as an opaque string; the client never inspects it.
const tokenHeader = "X-API-TOKEN"

// maxResponseSize bounds how much of a response body the client reads.
// The backend's payloads are small (profiles, course lists); anything
// near this limit indicates a misbehaving server.
const maxResponseSize = 4 << 20

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the backend origin (e.g., "http://localhost:5000").
	// The /api/v1 prefix is appended by the client; do not include it.
	BaseURL string
	// HTTPClient is used for all requests. If nil, http.DefaultClient
	// is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Client talks to the SkillShare Academy backend. It is stateless with
// respect to authentication: every operation that needs a credential
// takes the token as an argument, so a single Client can serve the
// session store, CLI commands, and the TUI concurrently.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new backend client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("api: BaseURL is required")
	}
	parsed, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("api: invalid BaseURL %q: %w", config.BaseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("api: BaseURL %q must use http or https", config.BaseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// CloseIdleConnections closes idle HTTP connections in the underlying
// transport's connection pool. Call this after a network disruption to
// force subsequent requests onto fresh TCP connections instead of a
// poisoned pooled one.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// doRequest performs an HTTP request against the backend and returns
// the response body. On 2xx, returns the body. On any other status,
// returns a *Error carrying the status code and the backend's message.
// token may be empty for unauthenticated endpoints (login, register).
func (c *Client) doRequest(ctx context.Context, method, path, token string, requestBody any) ([]byte, error) {
	requestURL := c.baseURL + apiPrefix + path

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("api: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("api: creating request: %w", err)
	}

	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set(tokenHeader, token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("api: request to %s %s failed: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("api: reading response body: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	return responseBody, newError(response.StatusCode, responseBody)
}

// decode unmarshals a response body into v with a consistent error
// message. Used by every typed operation.
func decode(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("api: parsing response: %w", err)
	}
	return nil
}
