// internal/adapters/publicdata/client.go
package publicdata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"youth_housing/internal/adapters/observability"
	"youth_housing/internal/domain"
	"youth_housing/internal/shared"
)

// Client issues requests to one source. It keeps no per-call state and is safe for
// concurrent use.
type Client struct {
	name   domain.Source
	base   *url.URL
	hc     *http.Client
	policy Policy
	rl     *rate.Limiter
}

// NewClient binds a client to baseURL under the shared policy.
func NewClient(name domain.Source, baseURL string, p Policy) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("%s: base URL is required", name)
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid base URL: %w", name, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%s: base URL must be absolute http(s): %q", name, baseURL)
	}
	c := &Client{
		name:   name,
		base:   u,
		hc:     &http.Client{Timeout: p.Timeout, Transport: p.Transport},
		policy: p,
	}
	if p.RPS > 0 {
		c.rl = rate.NewLimiter(rate.Limit(p.RPS), p.RPS)
	}
	return c, nil
}

func (c *Client) Name() domain.Source { return c.name }

func (c *Client) BaseURL() string { return c.base.String() }

// Endpoint is the base URL without its query, which may carry a service key.
func (c *Client) Endpoint() string {
	u := *c.base
	u.RawQuery = ""
	return u.String()
}

// Get issues one GET to base+path with query merged over the base URL's own query.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post issues one POST with payload encoded as JSON.
func (c *Client) Post(ctx context.Context, path string, payload any) ([]byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: encode payload: %w", c.name, err)
	}
	return c.do(ctx, http.MethodPost, path, nil, b)
}

func (c *Client) resolve(path string, query url.Values) *url.URL {
	u := *c.base
	if path != "" {
		u = *u.JoinPath(path)
	}
	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			q[k] = append([]string(nil), vs...)
		}
		u.RawQuery = q.Encode()
	}
	return &u
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload []byte) ([]byte, error) {
	if c.rl != nil {
		if err := c.rl.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrTransport, c.name, err)
		}
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path, query).String(), body)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", c.name, err)
	}
	req.Header.Set("Accept", c.policy.Accept)
	if c.policy.UserAgent != "" {
		req.Header.Set("User-Agent", c.policy.UserAgent)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	endpoint := method + " " + path
	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(string(c.name), endpoint, 0, time.Since(start))
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrTransport, c.name, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal(string(c.name), endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%s: %w", c.name, &domain.StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))})
	}

	b, err := shared.ReadLimited(resp.Body, c.policy.MaxBodyBytes)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrTransport, c.name, ctx.Err())
		}
		if errors.Is(err, domain.ErrResponseTooLarge) {
			return nil, fmt.Errorf("%s: %w", c.name, err)
		}
		return nil, fmt.Errorf("%w: %s: read body: %w", domain.ErrTransport, c.name, err)
	}
	return b, nil
}
