// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

// Package capservice is the HTTP client for the capability service:
// a small REST API exposing the full capability snapshot and
// register/unregister mutations on a capability's consultant roster.
//
// Wire contract:
//
//	GET    /capabilities                                  → snapshot object
//	POST   /capabilities/{name}/register?email={email}    → {"message": ...}
//	DELETE /capabilities/{name}/unregister?email={email}  → {"message": ...}
//
// Mutation failures return a non-2xx status with {"detail": ...};
// those surface as [*ServiceError] so callers can show the server's
// detail text verbatim. Transport and decode failures surface as
// ordinary wrapped errors.
package capservice

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/roster-works/roster/lib/capability"
	"github.com/roster-works/roster/lib/httpx"
)

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the root URL of the capability service
	// (e.g., "http://localhost:8000").
	BaseURL string
	// HTTPClient is used for all requests. If nil, http.DefaultClient
	// is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Client talks to one capability service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a capability service client. The base URL is
// validated up front and stored with its trailing slash stripped;
// request URLs are built by concatenation.
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("capservice: BaseURL is required")
	}
	parsed, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("capservice: invalid BaseURL %q: %w", config.BaseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("capservice: BaseURL %q must be http or https", config.BaseURL)
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

// FetchCapabilities retrieves the full capability snapshot.
func (c *Client) FetchCapabilities(ctx context.Context) (capability.Snapshot, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/capabilities", nil)
	if err != nil {
		return capability.Snapshot{}, fmt.Errorf("capservice: fetching capabilities: %w", err)
	}

	snapshot, err := capability.DecodeSnapshot(body)
	if err != nil {
		return capability.Snapshot{}, fmt.Errorf("capservice: parsing capabilities response: %w", err)
	}
	return snapshot, nil
}

// RegisterConsultant registers an email against a capability. Returns
// the server's success message. A non-2xx response comes back as a
// *ServiceError carrying the server's detail text.
func (c *Client) RegisterConsultant(ctx context.Context, name, email string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("capservice: capability name is required")
	}
	if email == "" {
		return "", fmt.Errorf("capservice: email is required")
	}

	path := "/capabilities/" + url.PathEscape(name) + "/register"
	body, err := c.doRequest(ctx, http.MethodPost, path, url.Values{"email": {email}})
	if err != nil {
		return "", fmt.Errorf("capservice: registering %s for %q: %w", email, name, err)
	}
	return parseMutationMessage(body)
}

// UnregisterConsultant removes an email from a capability's roster.
// Same shape as RegisterConsultant with a delete-style request.
func (c *Client) UnregisterConsultant(ctx context.Context, name, email string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("capservice: capability name is required")
	}
	if email == "" {
		return "", fmt.Errorf("capservice: email is required")
	}

	path := "/capabilities/" + url.PathEscape(name) + "/unregister"
	body, err := c.doRequest(ctx, http.MethodDelete, path, url.Values{"email": {email}})
	if err != nil {
		return "", fmt.Errorf("capservice: unregistering %s from %q: %w", email, name, err)
	}
	return parseMutationMessage(body)
}

// parseMutationMessage extracts the "message" field of a successful
// mutation response. A 2xx body that is not valid JSON is a malformed
// response and errors like a transport failure would.
func parseMutationMessage(body []byte) (string, error) {
	var response struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("capservice: parsing mutation response: %w", err)
	}
	return response.Message, nil
}

// doRequest issues one HTTP request and returns the response body.
// 2xx responses return the body. Non-2xx responses return a
// *ServiceError with the decoded detail (empty when the error body is
// not the documented JSON shape) and the HTTP status.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values) ([]byte, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("request to %s %s failed: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := httpx.ReadBody(response.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	serviceErr := &ServiceError{StatusCode: response.StatusCode}
	if jsonErr := json.Unmarshal(responseBody, serviceErr); jsonErr != nil {
		// Not the documented error shape. Keep the status, log the
		// body for diagnosis, and leave Detail empty so the UI falls
		// back to its generic text.
		c.logger.Debug("undecodable error response",
			"method", method,
			"path", path,
			"status", response.StatusCode,
			"body", strings.TrimSpace(string(responseBody)),
		)
		serviceErr.Detail = ""
	}
	return nil, serviceErr
}
