package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultOpenRouterURL   = "https://openrouter.ai/api/v1"
	defaultOpenRouterModel = "anthropic/claude-3.5-haiku"
	defaultMaxTokens       = 500
)

// shared HTTP client for OpenRouter API calls
// reuses connection pool and timeout configuration
var openRouterHTTPClient = &http.Client{
	Timeout: 120 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for OpenRouter API calls (10 requests/second with burst capacity of 5)
var openRouterRateLimiter = rate.NewLimiter(10, 5)

// TokenUsage reports tokens consumed by a completion.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Completion is the text of a chat completion plus its usage accounting.
type Completion struct {
	Content string
	Usage   TokenUsage
}

// CompletionRequest describes a single chat completion call.
type CompletionRequest struct {
	Prompt       string
	SystemPrompt string
	Temperature  float32
	MaxTokens    int
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage TokenUsage `json:"usage"`
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string // e.g., "anthropic/claude-3.5-haiku"
	BaseURL string
	Timeout time.Duration // per-request override, zero means the shared client default
}

// OpenRouterClient calls the OpenRouter chat completions API.
type OpenRouterClient struct {
	config     OpenRouterConfig
	httpClient *http.Client
}

func NewOpenRouterClient(config OpenRouterConfig) *OpenRouterClient {
	if config.Model == "" {
		config.Model = defaultOpenRouterModel
	}

	if config.BaseURL == "" {
		config.BaseURL = defaultOpenRouterURL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	client := openRouterHTTPClient
	if config.Timeout > 0 {
		// benchmark runs give slow models their own deadline
		client = &http.Client{
			Timeout:   config.Timeout,
			Transport: openRouterHTTPClient.Transport,
		}
	}

	return &OpenRouterClient{
		config:     config,
		httpClient: client,
	}
}

func (c *OpenRouterClient) Model() string {
	return c.config.Model
}

// generates a chat completion and returns content plus token usage
func (c *OpenRouterClient) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	if req.MaxTokens == 0 {
		req.MaxTokens = defaultMaxTokens
	}

	messages := make([]chatMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})

	reqBody := chatRequest{
		Model:       c.config.Model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))

	// rate limiting
	if err := openRouterRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return nil, fmt.Errorf("OpenRouter API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in OpenRouter response")
	}

	content := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if content == "" {
		return nil, fmt.Errorf("empty content in OpenRouter response")
	}

	return &Completion{Content: content, Usage: chatResp.Usage}, nil
}
