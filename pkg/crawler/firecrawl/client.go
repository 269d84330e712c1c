// Package firecrawl provides a crawler.Client implementation backed by the
// Firecrawl scrape API.
package firecrawl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gemflush/pkg/crawler"
	"gemflush/pkg/domain"
	"gemflush/pkg/serrors"
)

// DefaultBaseURL is the public Firecrawl API endpoint.
const DefaultBaseURL = "https://api.firecrawl.dev"

// Client talks to the Firecrawl REST API and fulfills the crawler.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to Firecrawl
	baseURL    string       // baseURL is the API root, without trailing slash
	token      string       // token is the Firecrawl API key
}

// ParseRateLimit extracts Firecrawl rate-limit information from the HTTP
// response headers. Missing or unparsable headers produce a zero status so
// callers can tell "no information" apart from an exhausted budget.
func ParseRateLimit(h http.Header) crawler.RateLimitStatus {
	atoi := func(s string) int {
		if s == "" {
			return 0
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}

		return 0
	}

	limit := atoi(h.Get("X-RateLimit-Limit"))
	remaining := atoi(h.Get("X-RateLimit-Remaining"))

	var resetAt time.Time
	if resetStr := h.Get("X-RateLimit-Reset"); resetStr != "" {
		if secs, err := strconv.ParseInt(resetStr, 10, 64); err == nil {
			resetAt = time.Unix(secs, 0)
		} else if t, err := time.Parse(time.RFC3339, resetStr); err == nil {
			resetAt = t
		}
	}

	return crawler.RateLimitStatus{Limit: limit, Remaining: remaining, ResetAt: resetAt}
}

// Scrape submits the URL to the Firecrawl scrape endpoint and returns the
// extracted markdown content plus page metadata. The page HTML is requested as
// well so title/description gaps can be filled locally.
func (c *Client) Scrape(ctx context.Context, URL string) (*domain.CrawlResult, crawler.RateLimitStatus, error) {
	// https://docs.firecrawl.dev/api-reference/endpoint/scrape
	type scrapeReq struct {
		URL     string   `json:"url"`
		Formats []string `json:"formats"`
	}
	bodyBytes, err := json.Marshal(scrapeReq{URL: URL, Formats: []string{"markdown", "html"}})
	if err != nil {
		return nil, crawler.RateLimitStatus{}, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.baseURL+"/v1/scrape",
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return nil, crawler.RateLimitStatus{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, crawler.RateLimitStatus{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rl := ParseRateLimit(resp.Header)
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, rl, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, rl, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode == http.StatusPaymentRequired {
		return nil, rl, serrors.With(serrors.ErrPaymentRequired, "crawl quota exhausted")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, rl, fmt.Errorf("scrape failed: %s", strings.TrimSpace(string(b)))
	}

	// successful
	var scrapeResp struct {
		Success bool `json:"success"`
		Data    struct {
			Markdown string `json:"markdown"`
			HTML     string `json:"html"`
			Metadata struct {
				Title       string `json:"title"`
				Description string `json:"description"`
				Language    string `json:"language"`
				SourceURL   string `json:"sourceURL"`
				StatusCode  int    `json:"statusCode"`
			} `json:"metadata"`
		} `json:"data"`
	}
	if err := json.Unmarshal(b, &scrapeResp); err != nil {
		return nil, rl, fmt.Errorf("could not decode response: %w", err)
	}
	if !scrapeResp.Success {
		return nil, rl, fmt.Errorf("scrape failed: %s", strings.TrimSpace(string(b)))
	}

	data := scrapeResp.Data
	title := data.Metadata.Title
	description := data.Metadata.Description
	if (title == "" || description == "") && data.HTML != "" {
		meta := crawler.ExtractMeta(data.HTML)
		if title == "" {
			title = meta.Title
		}
		if description == "" {
			description = meta.Description
		}
	}

	metadata := map[string]string{}
	if data.Metadata.Language != "" {
		metadata["language"] = data.Metadata.Language
	}
	if data.Metadata.SourceURL != "" {
		metadata["sourceURL"] = data.Metadata.SourceURL
	}
	if data.Metadata.StatusCode != 0 {
		metadata["statusCode"] = strconv.Itoa(data.Metadata.StatusCode)
	}

	return &domain.CrawlResult{
		URL:         URL,
		Title:       title,
		Description: description,
		Content:     data.Markdown,
		Metadata:    metadata,
		FetchedAt:   time.Now().UTC(),
	}, rl, nil
}

// Ensure Client conforms to the crawler.Client interface at compile time.
var _ crawler.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client and API token to
// interact with the Firecrawl API. An empty baseURL falls back to the public
// endpoint.
func New(httpClient *http.Client, baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}
