// Package client provides a typed HTTP client for the dayfleet API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dayfleet/dayfleet/internal/types"
)

// Options configures the API client.
type Options struct {
	BaseURL string
	Timeout time.Duration
}

// DefaultOptions returns the default client options.
func DefaultOptions() Options {
	return Options{
		BaseURL: "http://localhost:8080",
		// Provisioning waits out the full address-polling budget server-side,
		// so the client timeout must exceed it.
		Timeout: 5 * time.Minute,
	}
}

// Client talks to the dayfleet API server.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new API client.
func NewClient(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultOptions().Timeout
	}
	return &Client{
		baseURL: opts.BaseURL,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// ListCatalog returns the current boot image catalog.
func (c *Client) ListCatalog(ctx context.Context) ([]types.BootImage, error) {
	var images []types.BootImage
	if err := c.do(ctx, http.MethodGet, "/api/v1/catalog", nil, &images); err != nil {
		return nil, err
	}
	return images, nil
}

// ListFleet returns all managed instances.
func (c *Client) ListFleet(ctx context.Context) ([]types.ManagedInstance, error) {
	var instances []types.ManagedInstance
	if err := c.do(ctx, http.MethodGet, "/api/v1/fleet", nil, &instances); err != nil {
		return nil, err
	}
	return instances, nil
}

// ListOrphans returns live instances with no gateway connection.
func (c *Client) ListOrphans(ctx context.Context) ([]types.ManagedInstance, error) {
	var instances []types.ManagedInstance
	if err := c.do(ctx, http.MethodGet, "/api/v1/fleet/orphans", nil, &instances); err != nil {
		return nil, err
	}
	return instances, nil
}

// Provision provisions a new machine and registers its gateway connection.
func (c *Client) Provision(ctx context.Context, req types.ProvisionRequest) (*types.ProvisionResult, error) {
	var result types.ProvisionResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/fleet", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Teardown terminates a machine and removes its gateway connection.
func (c *Client) Teardown(ctx context.Context, req types.TeardownRequest) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/fleet", req, nil)
}

// Start starts a stopped instance.
func (c *Client) Start(ctx context.Context, instanceID string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/fleet/start", types.LifecycleRequest{InstanceID: instanceID}, nil)
}

// Stop stops a running instance.
func (c *Client) Stop(ctx context.Context, instanceID string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/fleet/stop", types.LifecycleRequest{InstanceID: instanceID}, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr types.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
