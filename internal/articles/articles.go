// Package articles is a thin client for the backend's article endpoints.
// The dashboard only passes article content through; it does not render or
// store articles itself.
package articles

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"nfl-stats-dashboard/internal/providers"
)

const defaultTimeout = 30 * time.Second

// Article is a blog post as stored by the backend.
type Article struct {
	ID            string   `json:"id,omitempty"`
	Title         string   `json:"title"`
	Excerpt       string   `json:"excerpt,omitempty"`
	Content       string   `json:"content"`
	Author        string   `json:"author,omitempty"`
	Published     bool     `json:"published"`
	CreatedAt     string   `json:"created_at,omitempty"`
	UpdatedAt     string   `json:"updated_at,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Category      string   `json:"category,omitempty"`
	FeaturedImage string   `json:"featured_image,omitempty"`
	Slug          string   `json:"slug,omitempty"`
}

// ListOptions filters a List call.
type ListOptions struct {
	PublishedOnly bool
	Limit         int
	Offset        int
}

// Client talks to the backend's /articles endpoints.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient constructs an article client against the given /v1 base URL.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, httpClient: httpClient}
}

type listEnvelope struct {
	Total int       `json:"total"`
	Data  []Article `json:"data"`
}

type itemEnvelope struct {
	Data Article `json:"data"`
}

// List returns articles, newest first.
func (c *Client) List(ctx context.Context, opts ListOptions) ([]Article, int, error) {
	params := url.Values{}
	params.Set("published_only", strconv.FormatBool(opts.PublishedOnly))
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		params.Set("offset", strconv.Itoa(opts.Offset))
	}

	var payload listEnvelope
	if err := c.do(ctx, http.MethodGet, "/articles?"+params.Encode(), nil, &payload); err != nil {
		return nil, 0, err
	}
	return payload.Data, payload.Total, nil
}

// Get returns a single article by ID.
func (c *Client) Get(ctx context.Context, id string) (Article, error) {
	var payload itemEnvelope
	if err := c.do(ctx, http.MethodGet, "/articles/"+url.PathEscape(id), nil, &payload); err != nil {
		return Article{}, err
	}
	return payload.Data, nil
}

// Create submits a new article and returns it with its server-assigned ID.
func (c *Client) Create(ctx context.Context, article Article) (Article, error) {
	var payload itemEnvelope
	if err := c.do(ctx, http.MethodPost, "/articles", article, &payload); err != nil {
		return Article{}, err
	}
	return payload.Data, nil
}

// Update replaces an article's fields and returns the updated record.
func (c *Client) Update(ctx context.Context, id string, article Article) (Article, error) {
	var payload itemEnvelope
	if err := c.do(ctx, http.MethodPut, "/articles/"+url.PathEscape(id), article, &payload); err != nil {
		return Article{}, err
	}
	return payload.Data, nil
}

// Delete removes an article by ID.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/articles/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode article body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", path, providers.ErrNotFound)
	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("backend %s %s returned %d: %s", method, path, resp.StatusCode, snippet)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
