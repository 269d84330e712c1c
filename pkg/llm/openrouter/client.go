// Package openrouter provides an llm.Client implementation backed by the
// OpenRouter chat-completions API. OpenRouter fronts many model providers
// behind a single OpenAI-compatible endpoint, which is what lets the
// fingerprint stage query heterogeneous models with one client.
package openrouter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gemflush/pkg/llm"
	"gemflush/pkg/serrors"
)

// DefaultBaseURL is the public OpenRouter API endpoint.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

const defaultMaxTokens = 1024

// Client talks to the OpenRouter REST API and fulfills the llm.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	// referer and title are forwarded as the optional OpenRouter attribution
	// headers (HTTP-Referer / X-Title).
	referer string
	title   string
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionReq struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat json.RawMessage `json:"response_format,omitempty"`
}

// Complete sends a single chat completion to OpenRouter and returns the
// completion text of the first choice.
func (c *Client) Complete(ctx context.Context, req llm.Request) (string, error) {
	msgs := make([]message, 0, 2)
	if req.System != "" {
		msgs = append(msgs, message{Role: "system", Content: req.System})
	}
	msgs = append(msgs, message{Role: "user", Content: req.Prompt})

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	body := completionReq{
		Model:       req.Model,
		Messages:    msgs,
		MaxTokens:   maxTokens,
		Temperature: req.Temperature,
	}
	if req.JSONOnly {
		body.ResponseFormat = json.RawMessage(`{"type":"json_object"}`)
	}

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.baseURL+"/chat/completions",
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	if c.referer != "" {
		httpReq.Header.Set("HTTP-Referer", c.referer)
	}
	if c.title != "" {
		httpReq.Header.Set("X-Title", c.title)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return "", serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("completion failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	// successful
	var completionResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(b, &completionResp); err != nil {
		return "", fmt.Errorf("could not decode response: %w", err)
	}
	// OpenRouter reports some upstream provider failures inside a 200 body.
	if completionResp.Error != nil {
		return "", fmt.Errorf("completion failed: %s", completionResp.Error.Message)
	}
	if len(completionResp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	return completionResp.Choices[0].Message.Content, nil
}

// Ensure Client conforms to the llm.Client interface at compile time.
var _ llm.Client = (*Client)(nil)

// Options configure the OpenRouter client.
type Options struct {
	// BaseURL overrides the API endpoint; empty uses the public one.
	BaseURL string
	// Token is the OpenRouter API key.
	Token string
	// Referer and Title are forwarded as OpenRouter attribution headers.
	Referer string
	Title   string
}

// New constructs a Client that uses the provided http.Client to talk to
// OpenRouter.
func New(httpClient *http.Client, opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      opts.Token,
		referer:    opts.Referer,
		title:      opts.Title,
	}
}
