// Package upstream is the typed client for the external scheduling backend.
// It is the only place the REST contract is spelled out; everything above it
// works with model types. List responses are decoded tolerantly: a body that
// is not a JSON array (error object, null) becomes an empty slice so list
// views degrade instead of propagating a shape error.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	perrors "github.com/careconnect/portal-api/pkg/errors"
)

const (
	defaultTimeout  = 15 * time.Second
	defaultCacheTTL = 30 * time.Second

	patientsCacheKey = "directory:patients"
	doctorsCacheKey  = "directory:doctors"
)

// Config holds client configuration. BaseURL is required.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Client talks to the scheduling backend. The patient and doctor
// directories change rarely and back every screen's selector, so they are
// cached for a short TTL and invalidated by the corresponding create call.
type Client struct {
	baseURL  string
	http     *http.Client
	cache    *cache.Cache
	cacheTTL time.Duration
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		cache:    cache.New(ttl, 2*ttl),
		cacheTTL: ttl,
	}
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}, endpoint string) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, perrors.NewInternal(fmt.Errorf("encoding %s payload: %w", endpoint, err))
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, perrors.NewInternal(fmt.Errorf("building %s request: %w", endpoint, err))
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		observe(endpoint, "error", start)
		return nil, perrors.NewUpstream(endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		observe(endpoint, "error", start)
		return nil, perrors.NewUpstream(endpoint, err)
	}

	observe(endpoint, fmt.Sprintf("%d", resp.StatusCode), start)

	if resp.StatusCode >= http.StatusBadRequest {
		return data, perrors.NewUpstream(endpoint, fmt.Errorf("status %d: %s", resp.StatusCode, truncate(data)))
	}
	return data, nil
}

// getList fetches path and decodes the body into out, which must be a
// pointer to a slice. Non-array bodies leave out untouched and return nil:
// the caller sees an empty list, per the boundary contract.
func (c *Client) getList(ctx context.Context, path, endpoint string, out interface{}) error {
	data, err := c.do(ctx, http.MethodGet, path, nil, endpoint)
	if err != nil {
		return err
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '[' {
		log.Warn().
			Str("endpoint", endpoint).
			Str("body", truncate(data)).
			Msg("upstream returned non-array list response, treating as empty")
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		log.Warn().
			Str("endpoint", endpoint).
			Err(err).
			Msg("upstream list response failed to decode, treating as empty")
		return nil
	}
	return nil
}

func truncate(data []byte) string {
	const max = 256
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
