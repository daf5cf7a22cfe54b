package firecrawl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MullaAhmed/claude-skill-generator/internal/core/ports/driven"
)

const (
	// DefaultAPIURL is the Firecrawl scrape endpoint.
	DefaultAPIURL = "https://api.firecrawl.dev/v1/scrape"

	// DefaultTimeout is the scrape request timeout. Rendering a page can
	// take much longer than a plain API call.
	DefaultTimeout = 60 * time.Second
)

// Firecrawl-specific errors.
var (
	// ErrUnauthorized indicates the API key was rejected.
	ErrUnauthorized = errors.New("firecrawl: invalid API key")

	// ErrQuotaExceeded indicates the account quota is exhausted.
	ErrQuotaExceeded = errors.New("firecrawl: quota exceeded")

	// ErrRateLimited indicates too many requests.
	ErrRateLimited = errors.New("firecrawl: rate limited")
)

// Ensure Client implements the interface.
var _ driven.Scraper = (*Client)(nil)

// Client calls the Firecrawl scrape API.
type Client struct {
	apiKey   string
	apiURL   string
	maxChars int
	http     *http.Client
}

// NewClient creates a Firecrawl client. An empty apiKey yields a client
// that reports itself unavailable; maxChars of zero disables truncation.
func NewClient(apiKey string, maxChars int) *Client {
	return &Client{
		apiKey:   apiKey,
		apiURL:   DefaultAPIURL,
		maxChars: maxChars,
		http:     &http.Client{Timeout: DefaultTimeout},
	}
}

// NewClientWithURL creates a client against a custom endpoint. Used in
// tests against a local test server.
func NewClientWithURL(apiKey, apiURL string) *Client {
	c := NewClient(apiKey, 0)
	c.apiURL = apiURL
	return c
}

// Available reports whether an API key is configured.
func (c *Client) Available() bool {
	return c.apiKey != ""
}

type scrapeRequest struct {
	URL             string   `json:"url"`
	Formats         []string `json:"formats"`
	OnlyMainContent bool     `json:"onlyMainContent"`
}

type scrapeResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Data    struct {
		Markdown string `json:"markdown"`
	} `json:"data"`
}

// Scrape fetches the page at url as markdown.
func (c *Client) Scrape(ctx context.Context, url string) (*driven.ScrapeResult, error) {
	if !c.Available() {
		return nil, ErrUnauthorized
	}

	payload, err := json.Marshal(scrapeRequest{
		URL:             url,
		Formats:         []string{"markdown"},
		OnlyMainContent: true,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scrape %s: %w", url, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusPaymentRequired:
		return nil, ErrQuotaExceeded
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var decoded scrapeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if !decoded.Success {
		if decoded.Error == "" {
			decoded.Error = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("firecrawl: %s", decoded.Error)
	}

	result := &driven.ScrapeResult{Markdown: decoded.Data.Markdown}
	if c.maxChars > 0 && len(result.Markdown) > c.maxChars {
		result.Markdown = result.Markdown[:c.maxChars]
		result.Truncated = true
	}
	return result, nil
}
