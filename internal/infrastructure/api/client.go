package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"locadora/internal/domain/identity"
)

// Client talks to the locadora backend. Every request goes through the
// authenticating transport, so callers never handle tokens themselves.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an API client rooted at baseURL. tokens supplies the
// current bearer token; the session store satisfies it.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: newAuthTransport(tokens, http.DefaultTransport),
		},
	}
}

// apiError is the backend's error body shape
type apiError struct {
	Message string `json:"message"`
}

// do executes one request. body and out may be nil; out is decoded from a
// successful response. Error responses are mapped onto the identity error
// taxonomy at this boundary and nowhere else.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", identity.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return statusError(resp, path)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: undecodable response body: %v", identity.ErrValidation, err)
	}
	return nil
}

func statusError(resp *http.Response, path string) error {
	var body apiError
	json.NewDecoder(resp.Body).Decode(&body)

	switch resp.StatusCode {
	case http.StatusBadRequest:
		msg := body.Message
		if msg == "" {
			msg = "invalid request"
		}
		return fmt.Errorf("%w: %s", identity.ErrValidation, msg)
	case http.StatusUnauthorized:
		// A rejected login is bad credentials, not a stale session.
		if path == "/auth/login" {
			return identity.ErrInvalidCredentials
		}
		return identity.ErrUnauthorized
	case http.StatusForbidden:
		return identity.ErrForbidden
	default:
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}
}
