package benchmark

import (
	"strings"
	"time"
)

// ModelConfig describes one OpenRouter model under benchmark.
type ModelConfig struct {
	Name                  string
	DisplayName           string
	Timeout               time.Duration // finder requests
	TimeoutSegmentation   time.Duration // segmentation requests need far longer
	MaxTokens             int
	MaxTokensSegmentation int
}

// cases running at once against a single model
const MaxConcurrent = 5

// each case gets one retry on transport or model failure
const maxAttempts = 2

// Models is the default benchmark roster.
var Models = []ModelConfig{
	{
		Name:                  "anthropic/claude-3.5-haiku",
		DisplayName:           "Claude 3.5 Haiku",
		Timeout:               15 * time.Second,
		TimeoutSegmentation:   60 * time.Second,
		MaxTokens:             100,
		MaxTokensSegmentation: 8000,
	},
	{
		Name:                  "deepseek/deepseek-v3.2",
		DisplayName:           "DeepSeek v3.2",
		Timeout:               15 * time.Second,
		TimeoutSegmentation:   60 * time.Second,
		MaxTokens:             100,
		MaxTokensSegmentation: 6000,
	},
	{
		Name:                  "google/gemini-2.5-flash",
		DisplayName:           "Gemini 2.5 Flash",
		Timeout:               15 * time.Second,
		TimeoutSegmentation:   60 * time.Second,
		MaxTokens:             100,
		MaxTokensSegmentation: 8000,
	},
	{
		Name:                  "openai/gpt-4o-mini",
		DisplayName:           "OpenAI GPT 4o-mini",
		Timeout:               15 * time.Second,
		TimeoutSegmentation:   60 * time.Second,
		MaxTokens:             100,
		MaxTokensSegmentation: 6000,
	},
	{
		Name:                  "qwen/qwen-2.5-72b-instruct",
		DisplayName:           "Qwen 2.5 72B Instruct",
		Timeout:               15 * time.Second,
		TimeoutSegmentation:   60 * time.Second,
		MaxTokens:             100,
		MaxTokensSegmentation: 6000,
	},
	{
		Name:                  "meta-llama/llama-3.1-8b-instruct",
		DisplayName:           "Meta: Llama 3.1 8B Instruct",
		Timeout:               20 * time.Second,
		TimeoutSegmentation:   60 * time.Second,
		MaxTokens:             100,
		MaxTokensSegmentation: 4000,
	},
}

// FilterModels keeps models whose name contains the given substring.
func FilterModels(models []ModelConfig, substr string) []ModelConfig {
	if substr == "" {
		return models
	}

	var filtered []ModelConfig
	for _, m := range models {
		if strings.Contains(m.Name, substr) {
			filtered = append(filtered, m)
		}
	}

	return filtered
}
