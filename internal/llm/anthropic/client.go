// Package anthropic provides a minimal client for the Anthropic messages API.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.anthropic.com"
	DefaultModel   = "claude-3-5-sonnet-20240620"
	DefaultTimeout = 60 * time.Second

	// anthropicVersion is the required API version header
	anthropicVersion = "2023-06-01"
)

// ErrNotConfigured is returned when no API key is set. No network call is
// attempted in that case.
var ErrNotConfigured = errors.New("anthropic: API key not configured")

// ErrUnavailable is returned when the endpoint cannot be reached.
var ErrUnavailable = errors.New("anthropic: endpoint unreachable")

// UpstreamError is returned for non-2xx responses from the API
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("anthropic: upstream error %d: %s", e.StatusCode, e.Body)
}

// Config holds configuration for the Anthropic client
type Config struct {
	APIKey    string
	BaseURL   string        // default: https://api.anthropic.com
	Model     string        // default: claude-3-5-sonnet-20240620
	MaxTokens int           // default: 256
	Timeout   time.Duration // default: 60s
}

// Client calls the Anthropic /v1/messages endpoint
type Client struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	model     string
	maxTokens int
}

// messagesRequest is the Anthropic /v1/messages request format
type messagesRequest struct {
	Model       string            `json:"model"`
	MaxTokens   int               `json:"max_tokens"`
	Temperature float64           `json:"temperature"`
	Messages    []messagesMessage `json:"messages"`
}

type messagesMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesResponse is the Anthropic /v1/messages response format
type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// NewClient creates a new Anthropic client. A missing API key is not an
// error here: the client stays constructible so the rest of the service can
// run with summarization disabled, and Complete reports ErrNotConfigured.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 256
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client:    &http.Client{Timeout: cfg.Timeout},
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
}

// Configured reports whether an API key is set
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Complete sends a single-turn user prompt and returns the text of the first
// content block. Temperature is pinned to 0.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	reqBody := messagesRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: 0,
		Messages: []messagesMessage{
			{Role: "user", Content: prompt},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/messages", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var msgResp messagesResponse
	if err := json.Unmarshal(body, &msgResp); err != nil {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: "malformed response body"}
	}
	if len(msgResp.Content) == 0 || msgResp.Content[0].Text == "" {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: "empty completion"}
	}

	return msgResp.Content[0].Text, nil
}
