// Package rest implements the remote entity gateways over the backend
// HTTP API. It owns no state and enforces no business rules: every
// function is a typed request/response wrapper, and failures come back
// as transport errors carrying the server-supplied message when the
// backend provided one.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"rentdesk/internal/domain"
)

// Credentials persists the client-side session between runs. The rest
// adapter reads the token for the Authorization header and writes it
// back on login/logout.
type Credentials interface {
	Token() (string, error)
	SaveSession(token string, user *domain.User) error
	SavedUser() (*domain.User, error)
	ClearSession() error
}

// Client is the shared HTTP plumbing behind the per-entity gateways.
type Client struct {
	base  string
	http  *http.Client
	creds Credentials
}

// NewClient creates a Client for the API rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration, creds Credentials) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		base:  strings.TrimRight(baseURL, "/"),
		http:  &http.Client{Timeout: timeout},
		creds: creds,
	}
}

// do performs one JSON round trip. A non-2xx response is decoded from
// the backend's `{"error": message}` envelope into a transport error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd *bytes.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return domain.Transport("could not encode request", err)
		}
		rd = bytes.NewReader(buf)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return domain.Transport("", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.creds != nil {
		if token, err := c.creds.Token(); err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Transport("", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		var envelope struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		msg := envelope.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return domain.Transport(msg, nil)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return domain.Transport("could not decode response", err)
		}
	}
	return nil
}
