// Package api is the REST client for the demo collection service. It speaks
// the service's fixed endpoint shapes and maps each operation's failure to
// one error kind; it never retries and never touches any cache.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the public demo service.
const DefaultBaseURL = "https://dummyjson.com"

// Client issues requests against the collection service.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the service base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient creates a Client with a 10s timeout against DefaultBaseURL.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List fetches the full collection for resource. The service wraps the
// records in an envelope keyed by the resource tag:
//
//	{"todos": [...], "total": 150, "skip": 0, "limit": 150}
func List[T any](ctx context.Context, c *Client, resource string) ([]T, error) {
	body, err := c.do(ctx, http.MethodGet, c.collectionURL(resource), nil)
	if err != nil {
		return nil, &RetrievalError{Resource: resource, Err: err}
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &RetrievalError{Resource: resource, Err: fmt.Errorf("decoding envelope: %w", err)}
	}
	raw, ok := envelope[resource]
	if !ok {
		return nil, &RetrievalError{Resource: resource, Err: fmt.Errorf("envelope missing %q key", resource)}
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &RetrievalError{Resource: resource, Err: fmt.Errorf("decoding records: %w", err)}
	}
	return items, nil
}

// Create posts a draft record and returns the created record with its
// server-assigned id.
func Create[T any](ctx context.Context, c *Client, resource string, draft T) (T, error) {
	var zero T
	payload, err := json.Marshal(draft)
	if err != nil {
		return zero, &CreationError{Resource: resource, Err: err}
	}

	body, err := c.do(ctx, http.MethodPost, c.collectionURL(resource)+"/add", payload)
	if err != nil {
		return zero, &CreationError{Resource: resource, Err: err}
	}

	var created T
	if err := json.Unmarshal(body, &created); err != nil {
		return zero, &CreationError{Resource: resource, Err: fmt.Errorf("decoding record: %w", err)}
	}
	return created, nil
}

// Update sends a partial modification for one record and returns the full
// updated record.
func Update[T any](ctx context.Context, c *Client, resource string, id int, fields map[string]any) (T, error) {
	var zero T
	payload, err := json.Marshal(fields)
	if err != nil {
		return zero, &UpdateError{Resource: resource, ID: id, Err: err}
	}

	body, err := c.do(ctx, http.MethodPut, c.recordURL(resource, id), payload)
	if err != nil {
		return zero, &UpdateError{Resource: resource, ID: id, Err: err}
	}

	var updated T
	if err := json.Unmarshal(body, &updated); err != nil {
		return zero, &UpdateError{Resource: resource, ID: id, Err: fmt.Errorf("decoding record: %w", err)}
	}
	return updated, nil
}

// Delete removes one record. The service acknowledges with a body we do not
// need; only the status matters.
func (c *Client) Delete(ctx context.Context, resource string, id int) error {
	if _, err := c.do(ctx, http.MethodDelete, c.recordURL(resource, id), nil); err != nil {
		return &DeletionError{Resource: resource, ID: id, Err: err}
	}
	return nil
}

func (c *Client) collectionURL(resource string) string {
	return c.baseURL + "/" + url.PathEscape(resource)
}

func (c *Client) recordURL(resource string, id int) string {
	return fmt.Sprintf("%s/%s/%d", c.baseURL, url.PathEscape(resource), id)
}

// do issues one request and returns the response body. Non-2xx statuses are
// errors; 404 maps to ErrNotFound so callers can branch on a vanished id.
func (c *Client) do(ctx context.Context, method, rawURL string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return body, nil
}
