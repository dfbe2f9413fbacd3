// Package postgrest talks to a PostgREST endpoint such as the Supabase REST
// gateway.
package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-newsroom/internal/logging"
	"github.com/goliatone/go-newsroom/internal/sources"
	"github.com/goliatone/go-newsroom/pkg/interfaces"
)

// Name identifies this tier in logs and status reports.
const Name = "postgrest"

const maxResponseBytes = 10 << 20

// Config carries the gateway location and key.
type Config struct {
	URL    string
	APIKey string
}

// Client issues raw table requests. Adapter and the comment store share it.
type Client struct {
	cfg    Config
	http   *http.Client
	logger interfaces.Logger
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds a client. Missing settings leave it unconfigured.
func NewClient(cfg Config, opts ...Option) *Client {
	cfg.URL = strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	c := &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: 10 * time.Second},
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Configured reports whether both the URL and key are present.
func (c *Client) Configured() bool {
	return c != nil && c.cfg.URL != "" && c.cfg.APIKey != ""
}

// Select runs GET /rest/v1/{table} with the given query parameters and
// decodes the JSON array response.
func (c *Client) Select(ctx context.Context, table string, params url.Values) ([]map[string]any, error) {
	endpoint := c.endpoint(table)
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	return c.do(req, table)
}

// Insert posts payload to the table and returns the stored representation.
func (c *Client) Insert(ctx context.Context, table string, payload any) ([]map[string]any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(table), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")
	return c.do(req, table)
}

func (c *Client) endpoint(table string) string {
	return c.cfg.URL + "/rest/v1/" + url.PathEscape(table)
}

func (c *Client) do(req *http.Request, table string) ([]map[string]any, error) {
	req.Header.Set("apikey", c.cfg.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.WithContext(req.Context()).Debug("postgrest.request",
		"method", req.Method,
		"table", table,
		"status", resp.StatusCode,
		"duration", time.Since(started),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &sources.StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	var rows []map[string]any
	if err := decoder.Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode %s rows: %w", table, err)
	}
	return rows, nil
}
