// Package api is the HTTP client for the report board backend.
// Every endpoint is a method on Client; the session travels in a cookie jar.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"
)

// RequestIDHeader carries a per-request id so client and server logs can be correlated.
const RequestIDHeader = "X-Request-ID"

const maxBodyBytes = 1 << 20

// Client talks to one backend. It is safe for concurrent use.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient creates a client with its own cookie jar, so a login on this client
// authenticates the later calls made through it.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
	}, nil
}

type response struct {
	status int
	body   []byte
}

// do sends one request. Transport failures are wrapped with ErrNetwork; any HTTP
// status is returned to the caller as-is.
func (c *Client) do(ctx context.Context, method, path string, payload any) (*response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Printf("ERROR: %s %s failed after %s (request %s): %v", method, path, time.Since(start), reqID, err)
		return nil, fmt.Errorf("%w: %s %s: %w", ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Printf("ERROR: reading %s %s response (request %s): %v", method, path, reqID, err)
		return nil, fmt.Errorf("%w: read %s %s: %w", ErrNetwork, method, path, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		log.Printf("WARN: %s %s returned %d (request %s)", method, path, resp.StatusCode, reqID)
	}
	return &response{status: resp.StatusCode, body: data}, nil
}

// decode unmarshals a success body into v.
func (r *response) decode(path string, v any) error {
	if err := json.Unmarshal(r.body, v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnexpectedResponse, path, err)
	}
	return nil
}

// expect returns nil when the response has the wanted status and an *Error otherwise.
func (r *response) expect(want int) error {
	if r.status == want {
		return nil
	}
	return newError(r.status, r.body)
}
