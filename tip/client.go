// Package tip fetches short gameplay advice from an OpenAI-style chat-completion endpoint.
// Every failure is recoverable: callers fall back to a static local tip.
package tip

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is the tip collaborator consumed by the game loop
type Client interface {
	GetTip(ctx context.Context, prompt string) (string, error)
}

var (
	// ErrNoAPIKey is returned before any request when no key is configured
	ErrNoAPIKey = errors.New("tip: no API key configured")

	// ErrEmptyResponse is returned when the reply carries no choices or blank content
	ErrEmptyResponse = errors.New("tip: empty response")
)

// StatusError reports a non-2xx HTTP status
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("tip: unexpected status %d", e.Code)
	}
	return fmt.Sprintf("tip: unexpected status %d: %s", e.Code, e.Body)
}

// Message is a single chat entry
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the chat-completion request body
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

// ChatResponse is the subset of the chat-completion reply that is read
type ChatResponse struct {
	Choices []Choice `json:"choices"`
}

type Choice struct {
	Message Message `json:"message"`
}

// maxErrorBody caps how much of an error body is kept in StatusError
const maxErrorBody = 256

// HTTPClient posts prompts to a chat-completion endpoint
type HTTPClient struct {
	endpoint string
	apiKey   string
	model    string
	http     *http.Client
}

// NewHTTPClient creates a client; timeout bounds each request on top of the caller's context
func NewHTTPClient(endpoint, apiKey, model string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		http:     &http.Client{Timeout: timeout},
	}
}

// GetTip sends prompt as a single user message and returns the first choice
func (c *HTTPClient) GetTip(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	body, err := json.Marshal(ChatRequest{
		Model:    c.model,
		Messages: []Message{{Role: "user", Content: prompt}},
		Stream:   false,
	})
	if err != nil {
		return "", fmt.Errorf("tip: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("tip: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("tip: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	var chat ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return "", fmt.Errorf("tip: decode response: %w", err)
	}

	if len(chat.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	content := strings.TrimSpace(chat.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}
