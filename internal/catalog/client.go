// Package catalog talks to the remote product catalog that backs the
// popover's remote item-source policy.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultMaxBody = 4 * 1024 * 1024

// Product is the minimal catalog record the popover cares about.
type Product struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

// Client fetches products over HTTP. The bearer credential always comes
// from configuration; it is never embedded in source.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	// MaxBody caps the response size in bytes.
	MaxBody int64
}

// NewClient builds a client for the given endpoint and credential.
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL:    baseURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		MaxBody:    defaultMaxBody,
	}
}

type productsResponse struct {
	Products []Product `json:"products"`
}

// Products returns the catalog entries for a free-text query, in the order
// the service reports them.
func (c *Client) Products(ctx context.Context, query string) ([]Product, error) {
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog URL %q: %w", c.BaseURL, err)
	}
	endpoint := base.JoinPath("products")
	if query != "" {
		values := endpoint.Query()
		values.Set("search", query)
		endpoint.RawQuery = values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog request failed with status %d", resp.StatusCode)
	}

	limit := c.MaxBody
	if limit <= 0 {
		limit = defaultMaxBody
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("catalog response exceeds %d bytes", limit)
	}

	var parsed productsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	return parsed.Products, nil
}
